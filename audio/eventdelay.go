package audio

import (
	"math"
	"sort"
)

// EventDelay runs functions after a delay, counted in samples by Step.
// Functions due at the same sample run in the order they were scheduled.
type EventDelay struct {
	Params Params
	now    int
	events []delayEvent
}

type delayEvent struct {
	at int
	f  func()
}

func (d *EventDelay) Delay(t float64, f func()) {
	if d.Params.SampleRate == 0 {
		panic("EventDelay.Delay called before InitAudio")
	}
	at := d.now + int(math.Round(t*d.Params.SampleRate))
	i := sort.Search(len(d.events), func(i int) bool { return d.events[i].at > at })
	d.events = append(d.events, delayEvent{})
	copy(d.events[i+1:], d.events[i:])
	d.events[i] = delayEvent{at, f}
}

func (d *EventDelay) Step() {
	d.now++
	for len(d.events) > 0 && d.events[0].at <= d.now {
		e := d.events[0]
		d.events = d.events[1:]
		e.f()
	}
}

// Pending returns the number of scheduled functions that have not yet run.
func (d *EventDelay) Pending() int { return len(d.events) }
