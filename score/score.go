// Package score models a performance as an ordered list of timed events.
package score

import (
	"errors"
	"fmt"
)

// Event is one note or rest of a voice.
type Event struct {
	Ticks  int     // duration in base ticks
	Pitch  string  // pitch name
	Volume float64 // in [0, 1]; zero is a rest
	Speed  float64 // tempo multiplier taking effect at this event; zero if untagged
}

func (e Event) HasSpeed() bool { return e.Speed != 0 }
func (e Event) Rest() bool     { return e.Volume == 0 }

// Section is a named passage of a voice.
type Section struct {
	Name   string
	Events []Event
}

// Performance is the full event list of one voice.
type Performance []Event

// Concat joins sections in order.
func Concat(sections ...Section) Performance {
	n := 0
	for _, s := range sections {
		n += len(s.Events)
	}
	p := make(Performance, 0, n)
	for _, s := range sections {
		p = append(p, s.Events...)
	}
	return p
}

// Pitches resolves pitch names to frequencies.
type Pitches interface {
	Freq(name string) (float64, error)
}

// Arrays holds a performance split into parallel lists, as consumed by a
// sequencer and its value iterators.
type Arrays struct {
	Times []int
	Notes []float64
	Vols  []float64
}

func (p Performance) Arrays(pitches Pitches) (Arrays, error) {
	a := Arrays{
		Times: make([]int, len(p)),
		Notes: make([]float64, len(p)),
		Vols:  make([]float64, len(p)),
	}
	for i, e := range p {
		f, err := pitches.Freq(e.Pitch)
		if err != nil {
			return Arrays{}, fmt.Errorf("event %d: %w", i, err)
		}
		a.Times[i], a.Notes[i], a.Vols[i] = e.Ticks, f, e.Volume
	}
	return a, nil
}

// Validate reports every malformed event.
func (p Performance) Validate(pitches Pitches) error {
	var errs []error
	for i, e := range p {
		if _, err := pitches.Freq(e.Pitch); err != nil {
			errs = append(errs, fmt.Errorf("event %d: %w", i, err))
		}
		if e.Ticks <= 0 {
			errs = append(errs, fmt.Errorf("event %d: duration %d", i, e.Ticks))
		}
		if e.Volume < 0 || e.Volume > 1 {
			errs = append(errs, fmt.Errorf("event %d: volume %v out of [0, 1]", i, e.Volume))
		}
		if e.Speed < 0 {
			errs = append(errs, fmt.Errorf("event %d: speed %v", i, e.Speed))
		}
	}
	if len(p) == 0 {
		errs = append(errs, errors.New("empty performance"))
	}
	return errors.Join(errs...)
}

// Ticks returns the nominal length of the performance.
func (p Performance) Ticks() int {
	n := 0
	for _, e := range p {
		n += e.Ticks
	}
	return n
}

// Speeds returns the speed in force during each event when the performance
// drives the tempo: a tagged event multiplies the running speed by its tag,
// an untagged event resets it to 1.
func (p Performance) Speeds() []float64 {
	speeds := make([]float64, len(p))
	s := 1.0
	for i, e := range p {
		if e.HasSpeed() {
			s *= e.Speed
		} else {
			s = 1
		}
		speeds[i] = s
	}
	return speeds
}

// Seconds returns the real duration of the performance when it drives the
// tempo, given the length of a tick at speed 1.
func (p Performance) Seconds(tick float64) float64 {
	t := 0.0
	for i, s := range p.Speeds() {
		t += float64(p[i].Ticks) * tick / s
	}
	return t
}

// TempoMap lists the speed changes of a tempo-driving performance starting
// offset ticks in.
func (p Performance) TempoMap(offset int) []TempoChange {
	var m []TempoChange
	at, prev := offset, 1.0
	for i, s := range p.Speeds() {
		if s != prev {
			m = append(m, TempoChange{Tick: at, Speed: s})
			prev = s
		}
		at += p[i].Ticks
	}
	return m
}
