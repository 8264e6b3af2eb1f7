package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/geo-buffer-swarm/internal/logger"
)

// ping is a short decaying sine tone implementing beep.Streamer. A fresh
// value is handed to the speaker per cue; it is never touched afterwards
// from the UI goroutine.
type ping struct {
	freq   float64
	sr     beep.SampleRate
	pos    int
	length int
}

func (p *ping) Stream(samples [][2]float64) (int, bool) {
	if p.pos >= p.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if p.pos >= p.length {
			break
		}
		t := float64(p.pos) / float64(p.sr)
		env := 1 - float64(p.pos)/float64(p.length)
		v := math.Sin(2*math.Pi*p.freq*t) * 0.2 * env
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
		n++
	}
	return n, true
}

func (p *ping) Err() error { return nil }

// soundCue owns speaker initialization and plays short feedback tones on
// user actions. A failed speaker init downgrades to silence.
type soundCue struct {
	enabled bool
	sr      beep.SampleRate
}

func newSoundCue(enabled bool) *soundCue {
	s := &soundCue{enabled: enabled, sr: beep.SampleRate(44100)}
	if !enabled {
		return s
	}
	if err := speaker.Init(s.sr, s.sr.N(time.Second/20)); err != nil {
		logger.L().Warn("speaker_init_failed", "err", err)
		s.enabled = false
	}
	return s
}

func (s *soundCue) play(freq float64) {
	if !s.enabled {
		return
	}
	speaker.Play(&ping{freq: freq, sr: s.sr, length: s.sr.N(80 * time.Millisecond)})
}
