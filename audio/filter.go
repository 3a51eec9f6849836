package audio

import "math"

// Tone is a one-pole low-pass filter whose cutoff may change every sample.
type Tone struct {
	Params Params
	freq   float64
	c      float64
	y      float64
}

func (f *Tone) Filter(x, freq float64) float64 {
	if freq != f.freq {
		f.freq = freq
		freq = clamp(freq, 1e-3, f.Params.SampleRate/2)
		b := 2 - math.Cos(2*math.Pi*freq/f.Params.SampleRate)
		f.c = b - math.Sqrt(b*b-1)
	}
	f.y = x + (f.y-x)*f.c
	return f.y
}

// EQ is a peaking equaliser stage: boost dB at Freq with bandwidth set by Q.
// Freq is clamped below Nyquist.
type EQ struct {
	Freq, Q, Boost float64

	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func NewEQ(freq, q, boost float64) *EQ {
	return &EQ{Freq: freq, Q: q, Boost: boost}
}

func (f *EQ) InitAudio(p Params) {
	freq := math.Min(f.Freq, .45*p.SampleRate)
	a := math.Pow(10, f.Boost/40)
	w := 2 * math.Pi * freq / p.SampleRate
	alpha := math.Sin(w) / (2 * f.Q)
	cos := math.Cos(w)
	a0 := 1 + alpha/a
	f.b0 = (1 + alpha*a) / a0
	f.b1 = -2 * cos / a0
	f.b2 = (1 - alpha*a) / a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha/a) / a0
	f.x1, f.x2, f.y1, f.y2 = 0, 0, 0, 0
}

func (f *EQ) Filter(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
