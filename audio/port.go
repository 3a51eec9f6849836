package audio

import "math"

// A Source is a control input, read once per sample.
type Source func() float64

// Sig returns a constant Source.
func Sig(x float64) Source { return func() float64 { return x } }

func DBToA(db float64) float64 { return math.Pow(10, db/20) }

// Port smooths its input exponentially, with separate rise and fall times.
// Each time is how long it takes to cover 99% of a step.
type Port struct {
	riseTime, fallTime float64
	up, down           float64
	in                 Source
	y                  float64
}

func NewPort(in Source, riseTime, fallTime float64) *Port {
	return &Port{in: in, riseTime: riseTime, fallTime: fallTime}
}

func (p *Port) InitAudio(params Params) {
	p.up = coef(p.riseTime, params)
	p.down = coef(p.fallTime, params)
}

func coef(t float64, p Params) float64 {
	return math.Pow(.01, 1/math.Max(1, p.SampleRate*t))
}

// SetInput replaces the Port's input; the output glides to the new input.
func (p *Port) SetInput(in Source) { p.in = in }
func (p *Port) Input() Source      { return p.in }

func (p *Port) Sing() float64 {
	x := p.in()
	if x > p.y {
		p.y = x - (x-p.y)*p.up
	} else {
		p.y = x - (x-p.y)*p.down
	}
	return p.y
}

func (p *Port) Value() float64 { return p.y }
