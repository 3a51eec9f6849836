package audio

import (
	"math"
	"testing"
)

func TestFader(t *testing.T) {
	f := NewFader(1, 2, 10, .5)
	Init(f, Params{SampleRate: 100})

	at := func(sec float64) float64 {
		f.SetTime(sec)
		return f.Sing()
	}
	for _, c := range []struct{ t, want float64 }{
		{0, 0.005},
		{.5, .25},
		{1, .5},
		{5, .5},
		{8, .5},
		{9, .25},
	} {
		if got := at(c.t); math.Abs(got-c.want) > .006 {
			t.Errorf("t=%v: got %v, want %v", c.t, got, c.want)
		}
	}

	f.SetTime(0)
	for i := 0; i < 10*100; i++ {
		f.Sing()
	}
	if x := f.Sing(); x != 0 || !f.Done() {
		t.Errorf("after fade: x=%v done=%v", x, f.Done())
	}
}

func TestFaderShortDuration(t *testing.T) {
	f := NewFader(1, 3, 2, 1)
	if got := f.points[1].Time; got != .5 {
		t.Errorf("scaled fade-out start: got %v, want .5", got)
	}
}

func TestControlOutOfOrder(t *testing.T) {
	var c Control
	if err := c.SetPoints([]ControlPoint{{1, 0}, {.5, 1}}); err == nil {
		t.Error("expected error")
	}
}

func BenchmarkControl(b *testing.B) {
	c := NewFader(.01, 2, 234, .49)
	Init(c, Params{44100})
	for i := 0; i < b.N; i++ {
		if c.Done() {
			c.SetTime(0)
		}
		c.Sing()
	}
}
