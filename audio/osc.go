package audio

import "math"

// Shape is an LFO waveform.  ModSine with zero sharpness is a pure sine.
type Shape int

const (
	SawUp Shape = iota
	SawDown
	Square
	Triangle
	Pulse
	BipolarPulse
	ModSine
)

// LFO is a naive (not band-limited) multi-shape oscillator.  Sharp, in
// [0, 1], narrows the pulse shapes and deepens the self-modulation of
// ModSine; other shapes ignore it.
type LFO struct {
	Params Params
	Shape  Shape
	Sharp  float64
	phase  float64
}

func NewLFO(shape Shape, sharp float64) *LFO {
	return &LFO{Shape: shape, Sharp: sharp}
}

func (o *LFO) Sing(freq float64) float64 {
	o.phase = wrap(o.phase + freq/o.Params.SampleRate)
	return o.Shape.At(o.phase, o.Sharp)
}

// At returns the waveform value at phase p in [0, 1).
func (s Shape) At(p, sharp float64) float64 {
	switch s {
	case SawUp:
		return 2*p - 1
	case SawDown:
		return 1 - 2*p
	case Square:
		if p < .5 {
			return 1
		}
		return -1
	case Triangle:
		if p < .5 {
			return 4*p - 1
		}
		return 3 - 4*p
	case Pulse:
		if p < pulseWidth(sharp) {
			return 1
		}
		return 0
	case BipolarPulse:
		w := pulseWidth(sharp)
		switch {
		case p < w:
			return 1
		case p >= .5 && p < .5+w:
			return -1
		}
		return 0
	case ModSine:
		x := 2 * math.Pi * p
		return math.Sin(x + clamp(sharp, 0, 1)*math.Sin(x))
	}
	panic("audio: unknown LFO shape")
}

func pulseWidth(sharp float64) float64 {
	return .5 - .45*clamp(sharp, 0, 1)
}

func wrap(phase float64) float64 {
	_, phase = math.Modf(phase)
	if phase < 0 {
		phase++
	}
	return phase
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
