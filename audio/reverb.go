package audio

import "math"

// Freeverb is a stereo Schroeder-Moorer reverb: eight damped feedback combs
// in parallel, then four allpasses in series, per channel.  Size and Damp are
// in [0, 1]; Bal is the wet proportion of the output.
type Freeverb struct {
	Size, Damp, Bal float64

	combs     [2][len(combTuning)]comb
	allpasses [2][len(allpassTuning)]allpass
}

// Delay lengths in samples at 44.1kHz.
var (
	combTuning    = [...]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allpassTuning = [...]int{556, 441, 341, 225}
)

const (
	stereoSpread = 23
	reverbInGain = .015
	reverbWet    = 3
)

func NewFreeverb(size, damp, bal float64) *Freeverb {
	return &Freeverb{Size: size, Damp: damp, Bal: bal}
}

func (r *Freeverb) InitAudio(p Params) {
	scale := p.SampleRate / 44100
	length := func(n, ch int) int {
		return max(1, int(math.Round(float64(n+ch*stereoSpread)*scale)))
	}
	feedback := clamp(r.Size, 0, 1)*.28 + .7
	damp := clamp(r.Damp, 0, 1) * .4
	for ch := range r.combs {
		for i, n := range combTuning {
			r.combs[ch][i] = comb{buf: make([]float64, length(n, ch)), feedback: feedback, damp: damp}
		}
		for i, n := range allpassTuning {
			r.allpasses[ch][i] = allpass{buf: make([]float64, length(n, ch))}
		}
	}
}

func (r *Freeverb) Reverb(l, rt float64) (float64, float64) {
	bal := clamp(r.Bal, 0, 1)
	return (1-bal)*l + bal*r.wet(0, l), (1-bal)*rt + bal*r.wet(1, rt)
}

func (r *Freeverb) wet(ch int, x float64) float64 {
	x *= reverbInGain
	y := 0.0
	for i := range r.combs[ch] {
		y += r.combs[ch][i].process(x)
	}
	for i := range r.allpasses[ch] {
		y = r.allpasses[ch][i].process(y)
	}
	return reverbWet * y
}

type comb struct {
	buf            []float64
	i              int
	store          float64
	feedback, damp float64
}

func (c *comb) process(x float64) float64 {
	y := c.buf[c.i]
	c.store = y*(1-c.damp) + c.store*c.damp
	c.buf[c.i] = x + c.store*c.feedback
	c.i = (c.i + 1) % len(c.buf)
	return y
}

type allpass struct {
	buf []float64
	i   int
}

func (a *allpass) process(x float64) float64 {
	b := a.buf[a.i]
	a.buf[a.i] = x + b*.5
	a.i = (a.i + 1) % len(a.buf)
	return b - x
}
