package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"stardefender/game"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// sample returns the wave value at a phase in [0, 1)
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Voice is one oscillator gliding from one frequency to another
type Voice struct {
	Wave     Wave
	From, To float64
}

// Patch describes a one-shot sound: voices sharing a single decaying gain
type Patch struct {
	Voices   []Voice
	Gain     float64
	Duration time.Duration
}

// decayFloor is where the exponential gain ramp ends
const decayFloor = 0.01

var patches = map[game.Cue]Patch{
	game.CueShoot: {
		Voices:   []Voice{{WaveSaw, 400, 150}},
		Gain:     0.25,
		Duration: 100 * time.Millisecond,
	},
	game.CueExplosion: {
		Voices:   []Voice{{WaveSaw, 80, 30}, {WaveSquare, 100, 40}, {WaveTriangle, 60, 25}},
		Gain:     0.4,
		Duration: 400 * time.Millisecond,
	},
	game.CueHit: {
		Voices:   []Voice{{WaveSquare, 150, 60}},
		Gain:     0.2,
		Duration: 80 * time.Millisecond,
	},
	game.CuePlayerHit: {
		Voices:   []Voice{{WaveSaw, 120, 40}, {WaveSquare, 90, 35}},
		Gain:     0.3,
		Duration: 300 * time.Millisecond,
	},
	game.CueGameOver: {
		Voices:   []Voice{{WaveSaw, 100, 30}, {WaveSquare, 80, 25}},
		Gain:     0.3,
		Duration: 800 * time.Millisecond,
	},
	game.CueBossDefeat: {
		Voices:   []Voice{{WaveSaw, 60, 200}, {WaveSquare, 50, 150}, {WaveTriangle, 40, 120}},
		Gain:     0.35,
		Duration: 600 * time.Millisecond,
	},
	game.CueBossShoot: {
		Voices:   []Voice{{WaveSaw, 120, 80}, {WaveSquare, 90, 60}},
		Gain:     0.3,
		Duration: 120 * time.Millisecond,
	},
	game.CueBossBomb: {
		Voices:   []Voice{{WaveSaw, 100, 40}},
		Gain:     0.25,
		Duration: 200 * time.Millisecond,
	},
	game.CueShieldActivate: {
		Voices:   []Voice{{WaveSine, 200, 400}, {WaveTriangle, 300, 500}},
		Gain:     0.2,
		Duration: 300 * time.Millisecond,
	},
	game.CueShieldDeactivate: {
		Voices:   []Voice{{WaveSine, 300, 150}},
		Gain:     0.15,
		Duration: 200 * time.Millisecond,
	},
	game.CueShieldBlock: {
		Voices:   []Voice{{WaveSine, 600, 400}, {WaveTriangle, 800, 500}},
		Gain:     0.2,
		Duration: 100 * time.Millisecond,
	},
}

// sweep is an oscillator with an exponential frequency glide and an exponential gain decay
type sweep struct {
	voice    Voice
	gain     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(v Voice, gain float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{voice: v, gain: gain, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := s.voice.From * math.Pow(s.voice.To/s.voice.From, progress)
		gain := s.gain * math.Pow(decayFloor/s.gain, progress)

		val := gain * s.voice.Wave.sample(s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// cueStreamer renders a patch; unknown cues yield nil
func cueStreamer(cue game.Cue, rate beep.SampleRate) beep.Streamer {
	p, ok := patches[cue]
	if !ok {
		return nil
	}
	voices := make([]beep.Streamer, len(p.Voices))
	for i, v := range p.Voices {
		voices[i] = newSweep(v, p.Gain, p.Duration, rate)
	}
	return beep.Mix(voices...)
}

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
