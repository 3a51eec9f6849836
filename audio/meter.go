package audio

import "math"

// Meter accumulates the peak and RMS level of a signal and counts samples
// beyond full scale.
type Meter struct {
	peak, sum  float64
	n, clipped int
}

func (m *Meter) Add(x float64) {
	a := math.Abs(x)
	m.peak = math.Max(m.peak, a)
	m.sum += x * x
	m.n++
	if a > 1 {
		m.clipped++
	}
}

func (m *Meter) Peak() float64 { return m.peak }
func (m *Meter) Clipped() int   { return m.clipped }
func (m *Meter) Samples() int   { return m.n }

func (m *Meter) RMS() float64 {
	if m.n == 0 {
		return 0
	}
	return math.Sqrt(m.sum / float64(m.n))
}

// AToDB converts an amplitude to decibels.
func AToDB(a float64) float64 { return 20 * math.Log10(a) }
