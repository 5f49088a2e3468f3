package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type note struct {
	freq float64
	dur  time.Duration
}

// Ominous minor-key theme, one note every noteSpacing
var melody = []note{
	{196, 400 * time.Millisecond},
	{220, 400 * time.Millisecond},
	{247, 400 * time.Millisecond},
	{262, 500 * time.Millisecond},
	{247, 400 * time.Millisecond},
	{220, 400 * time.Millisecond},
	{196, 600 * time.Millisecond},
	{165, 400 * time.Millisecond},
	{175, 400 * time.Millisecond},
	{196, 500 * time.Millisecond},
	{147, 500 * time.Millisecond},
	{165, 400 * time.Millisecond},
}

const (
	noteSpacing = 350 * time.Millisecond
	notePeak    = 0.08
	noteAttack  = 10 * time.Millisecond
)

// melodyNote is a sawtooth with a short attack, an exponential fall to the
// decay floor at 80% of its length and a linear fade to silence after that
type melodyNote struct {
	freq     float64
	phase    float64
	position int
	attack   int
	decayEnd int
	total    int
	rate     beep.SampleRate
}

func newMelodyNote(n note, rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.dur)
	return &melodyNote{
		freq:     n.freq,
		attack:   rate.N(noteAttack),
		decayEnd: int(float64(total) * 0.8),
		total:    total,
		rate:     rate,
	}
}

func (m *melodyNote) gain() float64 {
	switch {
	case m.position < m.attack:
		return notePeak * float64(m.position) / float64(m.attack)
	case m.position < m.decayEnd:
		progress := float64(m.position-m.attack) / float64(m.decayEnd-m.attack)
		return notePeak * math.Pow(decayFloor/notePeak, progress)
	default:
		remaining := float64(m.total-m.position) / float64(m.total-m.decayEnd)
		return decayFloor * remaining
	}
}

func (m *melodyNote) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.position >= m.total {
			return i, i > 0
		}
		val := m.gain() * WaveSaw.sample(m.phase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += m.freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *melodyNote) Err() error { return nil }

// renderMelody synthesizes one pass of the theme into a buffer
func renderMelody(rate beep.SampleRate) *beep.Buffer {
	voices := make([]beep.Streamer, len(melody))
	for i, n := range melody {
		offset := rate.N(time.Duration(i) * noteSpacing)
		voices[i] = beep.Seq(beep.Silence(offset), newMelodyNote(n, rate))
	}

	period := rate.N(time.Duration(len(melody)) * noteSpacing)
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(period, beep.Mix(voices...)))
	return buf
}

// loop replays a buffer forever
type loop struct {
	buf     *beep.Buffer
	current beep.StreamSeeker
}

func newLoop(buf *beep.Buffer) *loop {
	return &loop{buf: buf, current: buf.Streamer(0, buf.Len())}
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	if l.buf.Len() == 0 {
		return 0, false
	}
	for n < len(samples) {
		sn, sok := l.current.Stream(samples[n:])
		n += sn
		if !sok || sn == 0 {
			l.current = l.buf.Streamer(0, l.buf.Len())
		}
	}
	return n, true
}

func (l *loop) Err() error { return nil }
