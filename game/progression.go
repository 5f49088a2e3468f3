package game

import (
	"fmt"
	"math"
)

var lifeLossColor = explodeColor

// LoseLife takes one life from the player and ends the game at zero.
// It does nothing once the lives are gone.
func (s *Session) LoseLife() {
	if s.player.Lives <= 0 {
		return
	}
	s.player.Lives--
	if s.player.Lives <= 0 {
		s.gameOver()
		return
	}
	s.spawnParticles(s.player.X, s.player.Y, lifeLossColor, 18)
}

func (s *Session) gameOver() {
	if s.state.Phase == PhaseGameOver {
		return
	}
	s.state.Phase = PhaseGameOver
	s.scheduler.Invalidate()
	s.audio.StopMusic()
	s.play(CueGameOver)

	message := fmt.Sprintf("Score: %d\nHigh Score: %d\nPress Enter to try again.", s.state.Score, s.state.HighScore)
	if s.state.Score > s.startHighScore {
		message = fmt.Sprintf("New High Score: %d!\nPress Enter to try again.", s.state.Score)
	}
	s.state.Banner = Banner{Visible: true, Title: "Game Over", Message: message}

	s.logger.Info("game over", "score", s.state.Score, "level", s.state.Level, "high_score", s.state.HighScore)
}

// advanceLevel moves to the next level, or ends the game in victory after the last one
func (s *Session) advanceLevel() {
	if s.state.Level >= s.config.MaxLevel {
		s.victory()
		return
	}

	s.state.Level++
	s.state.EnemiesKilled = 0
	s.state.BossSpawned = false
	s.state.Banner = Banner{
		Visible: true,
		Title:   fmt.Sprintf("Level %d!", s.state.Level),
		Message: "Prepare for battle! Boss incoming...",
	}
	s.logger.Info("level advanced", "level", s.state.Level, "score", s.state.Score)

	level := s.state.Level
	s.scheduler.After(s.state.Elapsed, s.config.BannerDuration, func() {
		if s.state.Running() && s.state.Level == level {
			s.state.Banner = Banner{}
		}
	})
}

func (s *Session) victory() {
	s.state.Phase = PhaseVictory
	s.scheduler.Invalidate()
	s.audio.StopMusic()
	s.state.Banner = Banner{
		Visible: true,
		Title:   "Victory!",
		Message: fmt.Sprintf("You've completed all %d levels! Final Score: %d. Press Enter to play again.", s.config.MaxLevel, s.state.Score),
	}
	s.logger.Info("victory", "score", s.state.Score)
}

// recordScore raises and persists the high score when the score beats it
func (s *Session) recordScore() {
	if s.state.Score <= s.state.HighScore {
		return
	}
	s.state.HighScore = s.state.Score
	s.saveHighScore(s.state.HighScore)
}

// updateWave keeps the wave in step with the score and tightens the spawn interval on every change
func (s *Session) updateWave() {
	wave := WaveForScore(s.state.Score, s.config.PointsPerWave)
	if wave == s.state.Wave {
		return
	}
	s.state.Wave = wave
	s.state.SpawnInterval = math.Max(minSpawnInterval, s.state.SpawnInterval-0.06)
}
