package tempo

import (
	"errors"
	"math"
	"testing"

	"github.com/gordonklaus/pastorale/audio"
	"github.com/gordonklaus/pastorale/score"
)

type rate struct{ speeds []float64 }

func (r *rate) SetSpeed(s float64) { r.speeds = append(r.speeds, s) }

type fader struct{ in audio.Source }

func (f *fader) SetInput(in audio.Source) { f.in = in }

func ev(speed float64) score.Event { return score.Event{Ticks: 4, Pitch: "c", Volume: .5, Speed: speed} }

func TestController(t *testing.T) {
	for _, c := range []struct {
		name   string
		events score.Performance
		speeds []float64
	}{
		{"compound", score.Performance{ev(.5), ev(.5)}, []float64{.5, .25}},
		{"reset", score.Performance{ev(.5), ev(.5), ev(0)}, []float64{.5, .25, 1}},
		{"untagged", score.Performance{ev(0), ev(0)}, []float64{1, 1}},
		{"recover", score.Performance{ev(.9), ev(0), ev(1.1), ev(1.1)}, []float64{.9, 1, 1.1, 1.21}},
	} {
		r1, r2 := &rate{}, &rate{}
		c2 := NewController(c.events, []Rate{r1, r2}, nil)
		for range c.events {
			if err := c2.Next(); err != nil {
				t.Fatalf("%s: %v", c.name, err)
			}
		}
		for i, want := range c.speeds {
			if math.Abs(r1.speeds[i]-want) > 1e-12 || r2.speeds[i] != r1.speeds[i] {
				t.Errorf("%s: event %d: speeds %v, %v, want %v", c.name, i, r1.speeds[i], r2.speeds[i], want)
			}
		}
		if !c2.Done() || c2.Index() != len(c.events) {
			t.Errorf("%s: index %d, want %d", c.name, c2.Index(), len(c.events))
		}
		if s := c2.Speed(); math.Abs(s-c.speeds[len(c.speeds)-1]) > 1e-12 {
			t.Errorf("%s: speed %v", c.name, s)
		}
	}
}

func TestControllerMatchesScore(t *testing.T) {
	p := score.Performance{ev(0), ev(.9), ev(.95), ev(0), ev(1.02), ev(.8), ev(0)}
	r := &rate{}
	c := NewController(p, []Rate{r}, nil)
	for range p {
		c.MustNext()
	}
	for i, s := range p.Speeds() {
		if math.Abs(r.speeds[i]-s) > 1e-12 {
			t.Errorf("event %d: controller %v, score %v", i, r.speeds[i], s)
		}
	}
}

func TestControllerFade(t *testing.T) {
	on := audio.Sig(.7)
	f1, f2 := &fader{in: on}, &fader{in: on}
	c := NewController(score.Performance{ev(0), ev(0), ev(0)}, nil, []Fader{f1, f2})
	c.MustNext()
	c.MustNext()
	if f1.in() != .7 || f2.in() != .7 {
		t.Fatal("faded before the last event")
	}
	c.MustNext()
	if f1.in() != 0 || f2.in() != 0 {
		t.Errorf("fader inputs %v, %v after the last event, want 0", f1.in(), f2.in())
	}
}

func TestControllerOverrun(t *testing.T) {
	c := NewController(score.Performance{ev(0)}, nil, nil)
	if err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if err := c.Next(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got %v, want ErrIndexOutOfRange", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustNext did not panic")
		}
	}()
	c.MustNext()
}

// The controller is subscribed after the bass iterators, so a speed change
// made at an event boundary governs that event's own duration.
func TestControllerDrivesSeqs(t *testing.T) {
	bass := score.Performance{
		{Ticks: 2, Pitch: "c", Volume: .5},
		{Ticks: 2, Pitch: "c", Volume: .5, Speed: .5},
		{Ticks: 2, Pitch: "c", Volume: .5},
	}
	arr, err := bass.Arrays(fakePitches{})
	if err != nil {
		t.Fatal(err)
	}
	p := audio.Params{SampleRate: 10}
	s := audio.NewSeq(.1, arr.Times)
	lead := audio.NewSeq(.1, []int{100})
	audio.Init(s, p)
	audio.Init(lead, p)
	c := NewController(bass, []Rate{s, lead}, nil)
	vols := audio.NewIter(arr.Vols)
	s.Next.Connect(vols.Next)
	s.Next.Connect(c.MustNext)

	s.Play()
	steps := 0
	for !s.Done() {
		s.Step()
		steps++
	}
	// 2 + 4 + 2 samples, plus the step that observes the end.
	if steps != 9 {
		t.Errorf("bass took %d steps, want 9", steps)
	}
	if !c.Done() {
		t.Error("controller not done")
	}
	if lead.Speed() != 1 {
		t.Errorf("lead speed %v, want 1", lead.Speed())
	}
}

type fakePitches struct{}

func (fakePitches) Freq(string) (float64, error) { return 100, nil }
