package radio

import (
	"math"

	"github.com/gordonklaus/pastorale/audio"
)

// octaves are the centre frequencies of the summary's spectrum bands.
var octaves = []float64{31.25, 62.5, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}

// tap pulls frames from a voice, applies the output gain and limiter and
// measures what goes out.
type tap struct {
	Voice    audio.StereoVoice
	Limiter  *audio.Limiter
	Spectrum *audio.Spectrum
	gain     float64
	meter    audio.Meter
	frames   int
}

func newTap(v audio.StereoVoice, c *Config) *tap {
	t := &tap{Voice: v, Spectrum: audio.NewSpectrum(4096), gain: c.Gain}
	if c.Limit < 0 {
		t.Limiter = audio.NewLimiter(audio.DBToA(c.Limit), .01, .5)
	}
	return t
}

// Sing returns the next frame, clipped to full scale.  Clipping is counted
// before it is applied.
func (t *tap) Sing() (l, r float64) {
	l, r = t.Voice.Sing()
	l, r = l*t.gain, r*t.gain
	if t.Limiter != nil {
		l, r = t.Limiter.Limit(l, r)
	}
	t.meter.Add(l)
	t.meter.Add(r)
	t.Spectrum.Add((l + r) / 2)
	t.frames++
	return clip(l), clip(r)
}

func clip(x float64) float64 { return math.Max(-1, math.Min(1, x)) }

// Stats summarises a run.
type Stats struct {
	Frames     int
	Seconds    float64
	Peak, RMS  float64 // dBFS
	Clipped    int
	BandLevels []float64 // dB, per octave band
}

func (t *tap) stats(sampleRate float64) Stats {
	return Stats{
		Frames:     t.frames,
		Seconds:    float64(t.frames) / sampleRate,
		Peak:       audio.AToDB(t.meter.Peak()),
		RMS:        audio.AToDB(t.meter.RMS()),
		Clipped:    t.meter.Clipped(),
		BandLevels: t.Spectrum.Octaves(octaves),
	}
}
