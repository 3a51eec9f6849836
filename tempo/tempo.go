// Package tempo implements a tempo-feedback controller: one voice's events
// steer the playback speed of every voice.
package tempo

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/pastorale/audio"
	"github.com/gordonklaus/pastorale/score"
)

var ErrIndexOutOfRange = errors.New("tempo: controller index out of range")

// A Rate plays at an adjustable speed.
type Rate interface {
	SetSpeed(speed float64)
}

// A Fader follows an input signal.
type Fader interface {
	SetInput(in audio.Source)
}

// Controller is advanced once per event of the driving performance.  A
// tagged event multiplies the running speed by its tag and an untagged one
// resets it to 1; either way the speed is written to every rate.  On the
// final event the faders are sent to silence.
type Controller struct {
	events score.Performance
	rates  []Rate
	faders []Fader
	index  int
	speed  float64
}

func NewController(events score.Performance, rates []Rate, faders []Fader) *Controller {
	return &Controller{events: events, rates: rates, faders: faders, speed: 1}
}

func (c *Controller) Next() error {
	if c.index >= len(c.events) {
		return fmt.Errorf("%w: index %d, %d events", ErrIndexOutOfRange, c.index, len(c.events))
	}
	e := c.events[c.index]
	if e.HasSpeed() {
		c.speed *= e.Speed
	} else {
		c.speed = 1
	}
	for _, r := range c.rates {
		r.SetSpeed(c.speed)
	}
	if c.index == len(c.events)-1 {
		for _, f := range c.faders {
			f.SetInput(audio.Sig(0))
		}
	}
	c.index++
	return nil
}

// MustNext is Next for use as a trigger callback; an overrun is a score
// authoring bug and panics.
func (c *Controller) MustNext() {
	if err := c.Next(); err != nil {
		panic(err)
	}
}

func (c *Controller) Speed() float64 { return c.speed }
func (c *Controller) Index() int      { return c.index }
func (c *Controller) Done() bool      { return c.index == len(c.events) }
