package audio

import "fmt"

// Control is a piecewise-linear automation curve.  It starts at zero at time
// zero and ramps to each point in turn, holding the last value when done.
type Control struct {
	params  Params
	points  []ControlPoint
	periods []controlPeriod
	x       float64
}

type ControlPoint struct {
	Time, Value float64
}

func NewControl(points ...ControlPoint) *Control {
	c := &Control{}
	if err := c.SetPoints(points); err != nil {
		panic(err)
	}
	return c
}

// NewFader returns a Control that fades in to gain over fadeIn seconds, holds,
// and fades out to zero over the last fadeOut seconds of dur.
func NewFader(fadeIn, fadeOut, dur, gain float64) *Control {
	if fadeIn+fadeOut > dur {
		s := dur / (fadeIn + fadeOut)
		fadeIn, fadeOut = fadeIn*s, fadeOut*s
	}
	return NewControl(
		ControlPoint{fadeIn, gain},
		ControlPoint{dur - fadeOut, gain},
		ControlPoint{dur, 0},
	)
}

func (c *Control) InitAudio(params Params) {
	c.params = params
	c.SetTime(0)
}

func (c *Control) SetPoints(points []ControlPoint) error {
	for i := range points {
		if points[i].Time < 0 || i > 0 && points[i].Time < points[i-1].Time {
			return fmt.Errorf("control points out of order: %v", points)
		}
	}
	c.points = points
	if c.params.SampleRate > 0 {
		c.SetTime(0)
	}
	return nil
}

// SetTime positions the curve at t seconds.
func (c *Control) SetTime(t float64) {
	c.periods = make([]controlPeriod, len(c.points))
	prev := ControlPoint{}
	for i, p := range c.points {
		dn := (p.Time - prev.Time) * c.params.SampleRate
		dx := 0.0
		if dn >= 1 {
			dx = (p.Value - prev.Value) / dn
		}
		c.periods[i] = controlPeriod{int(dn), dx, p.Value}
		prev = p
	}

	c.x = 0
	n := int(t * c.params.SampleRate)
	for len(c.periods) > 0 {
		p := &c.periods[0]
		if p.n > n {
			p.n -= n
			c.x += float64(n) * p.dx
			break
		}
		n -= p.n
		c.x = p.value
		c.periods = c.periods[1:]
	}
}

func (c *Control) Sing() float64 {
	for len(c.periods) > 0 {
		p := &c.periods[0]
		if p.n > 0 {
			p.n--
			c.x += p.dx
			break
		}
		c.x = p.value // zero-length periods mark discontinuities
		c.periods = c.periods[1:]
	}
	return c.x
}

func (c *Control) Done() bool {
	return len(c.periods) == 0
}

type controlPeriod struct {
	n     int
	dx    float64
	value float64
}
