package audio

import "math"

// Delay is a feedback delay line.  It returns only the delayed signal.
type Delay struct {
	delay, feedback float64
	buf             []float64
	i               int
}

func NewDelay(delay, feedback float64) *Delay {
	return &Delay{delay: delay, feedback: feedback}
}

func (d *Delay) InitAudio(p Params) {
	d.buf = make([]float64, max(1, int(math.Round(d.delay*p.SampleRate))))
	d.i = 0
}

func (d *Delay) Delay(x float64) float64 {
	y := d.buf[d.i]
	d.buf[d.i] = x + d.feedback*y
	d.i = (d.i + 1) % len(d.buf)
	return y
}
