package game

import (
	"testing"
)

func TestWaveForScore(t *testing.T) {
	tests := []struct {
		score, want int
	}{
		{0, 1},
		{79, 1},
		{80, 2},
		{239, 3},
		{240, 4},
	}
	for _, tt := range tests {
		if got := WaveForScore(tt.score, 80); got != tt.want {
			t.Errorf("WaveForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestWaveChangeTightensSpawnInterval(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.Score = 80
	s.updateWave()
	if s.state.Wave != 2 {
		t.Fatalf("Wave = %d, want 2", s.state.Wave)
	}
	if !approxEqual(s.state.SpawnInterval, 1.29) {
		t.Errorf("SpawnInterval = %v, want 1.29", s.state.SpawnInterval)
	}

	s.updateWave()
	if !approxEqual(s.state.SpawnInterval, 1.29) {
		t.Errorf("interval changed without a wave change")
	}

	for score := 160; score < 80*40; score += 80 {
		s.state.Score = score
		s.updateWave()
	}
	if s.state.SpawnInterval != minSpawnInterval {
		t.Errorf("SpawnInterval = %v, want floor %v", s.state.SpawnInterval, minSpawnInterval)
	}
}

func TestLosingAllLivesEndsGameOnce(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	for i := 0; i < 3; i++ {
		s.LoseLife()
	}
	if s.player.Lives != 0 {
		t.Errorf("Lives = %d, want 0", s.player.Lives)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, want game over", s.Phase())
	}
	if rig.audio.count(CueGameOver) != 1 {
		t.Errorf("game over cues = %d, want 1", rig.audio.count(CueGameOver))
	}
	if !s.state.Banner.Visible || s.state.Banner.Title != "Game Over" {
		t.Errorf("banner = %+v", s.state.Banner)
	}

	s.LoseLife()
	if s.player.Lives != 0 {
		t.Errorf("Lives went negative: %d", s.player.Lives)
	}
	if rig.audio.count(CueGameOver) != 1 {
		t.Errorf("game over fired again")
	}

	elapsed := s.state.Elapsed
	s.Update(0.02)
	if s.state.Elapsed != elapsed {
		t.Errorf("Update ran after game over")
	}
}

func TestBossGating(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.EnemiesKilled = 14
	s.updateEnemies(0.001)
	if s.state.BossSpawned {
		t.Fatalf("boss spawned below the kill threshold")
	}

	s.state.EnemiesKilled = 15
	s.enemies = []*Enemy{regularEnemy(100, 50, EnemyFighter)}
	s.updateEnemies(0.001)
	if s.state.BossSpawned {
		t.Fatalf("boss spawned while regular enemies remain")
	}

	s.enemies = nil
	s.updateEnemies(0.001)
	if !s.state.BossSpawned || len(s.enemies) != 1 || !s.enemies[0].IsBoss() {
		t.Fatalf("boss not spawned: spawned=%v enemies=%d", s.state.BossSpawned, len(s.enemies))
	}

	boss := s.enemies[0]
	if boss.W != 90 || boss.HP != 15 || boss.Points != 100 {
		t.Errorf("boss w=%v hp=%d points=%d, want 90/15/100", boss.W, boss.HP, boss.Points)
	}
	if boss.Y > s.config.ArenaHeight*0.6 || boss.Y < boss.H/2 {
		t.Errorf("boss Y = %v outside its band", boss.Y)
	}

	s.state.SpawnTimer = 0
	s.updateEnemies(0.001)
	if len(s.enemies) != 1 {
		t.Errorf("level 1 spawned escorts: %d enemies", len(s.enemies))
	}
	s.spawnBoss()
	if len(s.enemies) != 1 {
		t.Errorf("second boss spawned in the same level")
	}
}

func TestBossEscortsFromLevelFour(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.Level = 4
	s.state.BossSpawned = true
	s.enemies = []*Enemy{bossEnemy(450, 150, 30, 400)}
	s.state.SpawnTimer = 0
	s.updateEnemies(0.001)

	if len(s.enemies) != 2 {
		t.Errorf("enemies = %d, want boss plus one escort", len(s.enemies))
	}
}

func TestBossFiresAndBombs(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.BossSpawned = true
	s.spawnBoss()
	if len(s.enemies) != 0 {
		t.Fatalf("spawnBoss ignored BossSpawned")
	}

	s.state.BossSpawned = false
	s.spawnBoss()
	s.updateEnemies(0.01)

	if len(s.enemyBullets) != 1 || len(s.bombs) != 1 {
		t.Fatalf("bullets=%d bombs=%d, want 1/1", len(s.enemyBullets), len(s.bombs))
	}
	b := s.enemyBullets[0]
	if speed := distance(0, 0, b.VX, b.VY); !approxEqual(speed, 220) {
		t.Errorf("boss bullet speed = %v, want 220", speed)
	}
	if rig.audio.count(CueBossShoot) != 1 || rig.audio.count(CueBossBomb) != 1 {
		t.Errorf("boss cues missing")
	}
	if boss := s.enemies[0]; !approxEqual(boss.Boss.ShootCooldown, 1.4) || !approxEqual(boss.Boss.BombCooldown, 2.8) {
		t.Errorf("cooldowns = %v/%v, want 1.4/2.8", boss.Boss.ShootCooldown, boss.Boss.BombCooldown)
	}
}

func TestRegularEnemyLeavesBelowArena(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	e := regularEnemy(100, 0, EnemyFighter)
	e.Y = s.config.ArenaHeight + 20 + e.H + 1
	s.enemies = []*Enemy{e}
	s.updateEnemies(0.001)

	if len(s.enemies) != 0 {
		t.Errorf("enemy not removed below the arena")
	}
}

func TestSpawnerUsesLevelComposition(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.Level = 10
	for i := 0; i < 20; i++ {
		s.spawnEnemy()
	}
	for _, e := range s.enemies {
		if e.Kind != EnemyDefender {
			t.Fatalf("level 10 spawned %v", e.Kind)
		}
		if e.X < 60 || e.X > s.config.ArenaWidth-60 {
			t.Errorf("spawn x = %v outside [60, W-60]", e.X)
		}
		if e.Y != -e.H {
			t.Errorf("spawn y = %v, want %v", e.Y, -e.H)
		}
	}
}

func killBoss(t *testing.T, s *Session) {
	t.Helper()
	s.state.BossSpawned = true
	s.enemies = []*Enemy{bossEnemy(450, 150, 1, 100*s.state.Level)}
	s.bullets = []*Bullet{bulletAt(450, 150, 1)}
	s.checkCollisions()
	if len(s.enemies) != 0 {
		t.Fatalf("boss survived")
	}
}

func TestBossDefeatAdvancesLevelAfterDelay(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.EnemiesKilled = 15
	killBoss(t, s)
	if rig.audio.count(CueBossDefeat) != 1 {
		t.Errorf("boss defeat cue not played")
	}
	if s.scheduler.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.scheduler.Pending())
	}

	s.scheduler.Drain(s.state.Elapsed + 0.5)
	if s.state.Level != 1 {
		t.Fatalf("level advanced early")
	}

	s.state.Elapsed += s.config.LevelAdvanceDelay
	s.scheduler.Drain(s.state.Elapsed)
	if s.state.Level != 2 || s.state.EnemiesKilled != 0 || s.state.BossSpawned {
		t.Fatalf("level=%d kills=%d bossSpawned=%v", s.state.Level, s.state.EnemiesKilled, s.state.BossSpawned)
	}
	if s.state.Banner.Title != "Level 2!" {
		t.Errorf("banner = %q, want Level 2!", s.state.Banner.Title)
	}
	if s.player.Lives != 3 || s.state.Score != 100 {
		t.Errorf("lives=%d score=%d should carry over", s.player.Lives, s.state.Score)
	}

	s.state.Elapsed += s.config.BannerDuration
	s.scheduler.Drain(s.state.Elapsed)
	if s.state.Banner.Visible {
		t.Errorf("banner still visible after %v s", s.config.BannerDuration)
	}
}

func TestLevelAdvanceDroppedAfterGameOver(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	killBoss(t, s)
	for i := 0; i < 3; i++ {
		s.LoseLife()
	}
	s.state.Elapsed += 5
	s.scheduler.Drain(s.state.Elapsed)

	if s.state.Level != 1 {
		t.Errorf("level advanced after game over")
	}
}

func TestResetDropsPendingEvents(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	killBoss(t, s)
	s.Reset()
	if s.scheduler.Pending() != 0 {
		t.Errorf("Pending() = %d after reset", s.scheduler.Pending())
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.state.Elapsed = 10
	s.scheduler.Drain(s.state.Elapsed)
	if s.state.Level != 1 {
		t.Errorf("stale level advance fired")
	}
}

func TestVictoryHaltsUpdate(t *testing.T) {
	rig := newRig(t, nil)
	s := rig.startClean(t)

	s.state.Level = s.config.MaxLevel
	killBoss(t, s)
	s.state.Elapsed += s.config.LevelAdvanceDelay
	s.scheduler.Drain(s.state.Elapsed)

	if s.Phase() != PhaseVictory {
		t.Fatalf("Phase() = %v, want victory", s.Phase())
	}
	if s.state.Banner.Title != "Victory!" {
		t.Errorf("banner = %q", s.state.Banner.Title)
	}

	elapsed := s.state.Elapsed
	s.Update(0.03)
	s.Tick(rig.clock.Advance(50_000_000))
	if s.state.Elapsed != elapsed {
		t.Errorf("Update ran after victory")
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.state.Level != 1 || s.Phase() != PhaseRunning {
		t.Errorf("level=%d phase=%v after restart", s.state.Level, s.Phase())
	}
}
