package audio

import "math"

// Pan places a mono signal in the stereo field at equal power.  Position 0 is
// hard left, .5 centre, 1 hard right.
type Pan struct {
	l, r float64
}

func NewPan(pos float64) *Pan {
	a := clamp(pos, 0, 1) * math.Pi / 2
	return &Pan{math.Cos(a), math.Sin(a)}
}

func (p *Pan) Pan(x float64) (l, r float64) {
	return p.l * x, p.r * x
}
