package audio

import (
	"math"
	"testing"
)

func TestSpectrum(t *testing.T) {
	const sampleRate = 8000
	s := NewSpectrum(512)
	Init(s, Params{sampleRate})
	if !math.IsInf(s.Level(0, sampleRate/2), -1) {
		t.Error("empty spectrum has a level")
	}

	osc := NewLFO(ModSine, 0)
	Init(osc, Params{sampleRate})
	for i := 0; i < sampleRate; i++ {
		s.Add(.5 * osc.Sing(1000))
	}
	if s.Frames() != sampleRate/512 {
		t.Errorf("%d frames", s.Frames())
	}
	levels := s.Octaves([]float64{250, 1000})
	if want := AToDB(.5); math.Abs(levels[1]-want) > 1 {
		t.Errorf("1kHz band: %.1f dB, want %.1f", levels[1], want)
	}
	if levels[0] > -40 {
		t.Errorf("250Hz band: %.1f dB, want < -40", levels[0])
	}
}
