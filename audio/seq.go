package audio

import "fmt"

// Seq steps once through a list of durations, firing Next at the start of
// each.  A duration of n lasts n ticks at speed 1; speed scales the rate at
// which time passes.  Seq does not loop.
type Seq struct {
	Params Params
	Next   Trigger

	tick  float64
	times []int
	i     int
	left  float64 // samples left in the current event, at speed 1
	speed float64

	playing bool
}

func NewSeq(tick float64, times []int) *Seq {
	if tick <= 0 {
		panic(fmt.Sprintf("audio.NewSeq: tick must be positive, got %v", tick))
	}
	for i, n := range times {
		if n <= 0 {
			panic(fmt.Sprintf("audio.NewSeq: duration %d is %d", i, n))
		}
	}
	return &Seq{tick: tick, times: times, i: -1, speed: 1}
}

// Play starts the sequence; the first event fires on the next Step.
func (s *Seq) Play() { s.playing = true }

func (s *Seq) SetSpeed(speed float64) {
	if speed <= 0 {
		panic(fmt.Sprintf("audio.Seq: speed must be positive, got %v", speed))
	}
	s.speed = speed
}

func (s *Seq) Speed() float64 { return s.speed }

// Index returns the current event, -1 before the first.
func (s *Seq) Index() int { return s.i }

func (s *Seq) Done() bool { return s.i == len(s.times) }

func (s *Seq) Step() {
	if !s.playing || s.Done() {
		return
	}
	if s.i >= 0 {
		s.left -= s.speed
		if s.left > 1e-9 {
			return
		}
	}
	s.i++
	if s.Done() {
		return
	}
	s.left += float64(s.times[s.i]) * s.tick * s.Params.SampleRate
	s.Next.Fire()
}

// Iter outputs the next of its values each time Next is called.
type Iter struct {
	values []float64
	i      int
	x      float64
}

func NewIter(values []float64) *Iter { return &Iter{values: values} }

func (it *Iter) Next() {
	if it.i >= len(it.values) {
		panic(fmt.Sprintf("audio.Iter: advanced past its %d values", len(it.values)))
	}
	it.x = it.values[it.i]
	it.i++
}

func (it *Iter) Value() float64 { return it.x }
