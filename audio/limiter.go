package audio

import "math"

// Limiter is a stereo-linked soft limiter.  The RMS level of the output,
// averaged over the attack time, approaches the limit; peaks may still exceed
// it.  The input is delayed by the attack time so the gain leads the signal.
type Limiter struct {
	limit         float64
	attack, decay float64
	down, up      float64
	gain          float64 // log2
	power         []float64
	sum           float64
	delay         [2][]float64
	i             int
}

func NewLimiter(limit, attack, decay float64) *Limiter {
	return &Limiter{limit: limit, attack: attack, decay: decay}
}

func (c *Limiter) InitAudio(p Params) {
	n := max(1, int(c.attack*p.SampleRate))
	c.down = -1 / float64(n)
	c.up = 1 / math.Max(1, c.decay*p.SampleRate)
	c.power = make([]float64, n)
	c.delay = [2][]float64{make([]float64, n), make([]float64, n)}
	c.sum, c.gain, c.i = 0, 0, 0
}

func (c *Limiter) Limit(l, r float64) (float64, float64) {
	g := math.Exp2(c.gain)

	p := (l*l + r*r) / 2
	c.sum += p - c.power[c.i]
	c.power[c.i] = p
	rms := math.Sqrt(math.Max(0, c.sum/float64(len(c.power))))
	if y := rms / c.limit; y > 0 && math.Tanh(y)/y < g {
		c.gain += c.down
	} else {
		c.gain = math.Min(0, c.gain+c.up)
	}

	dl, dr := c.delay[0][c.i], c.delay[1][c.i]
	c.delay[0][c.i], c.delay[1][c.i] = l, r
	c.i = (c.i + 1) % len(c.power)
	return g * dl, g * dr
}
