package audio

import (
	"math"
	"testing"
)

func TestLFOFreq(t *testing.T) {
	const sampleRate = 48000

	o := NewLFO(Triangle, .5)
	Init(o, Params{sampleRate})
	cycles := 0
	prev := o.phase
	for i := 0; i < sampleRate; i++ {
		o.Sing(220)
		if o.phase < prev {
			cycles++
		}
		prev = o.phase
	}
	if cycles < 219 || cycles > 220 {
		t.Errorf("%d cycles, want 220", cycles)
	}
}

func TestShapeAt(t *testing.T) {
	for _, c := range []struct {
		shape        Shape
		phase, sharp float64
		want         float64
	}{
		{SawUp, .25, 0, -.5},
		{SawDown, .25, 0, .5},
		{Square, .75, 0, -1},
		{Triangle, 0, 0, -1},
		{Triangle, .25, 0, 0},
		{Triangle, .5, 0, 1},
		{Pulse, .1, .7, 1},
		{Pulse, .3, .7, 0},
		{BipolarPulse, .1, .7, 1},
		{BipolarPulse, .3, .7, 0},
		{BipolarPulse, .6, .7, -1},
		{BipolarPulse, .9, .7, 0},
		{ModSine, .25, 0, 1},
		{ModSine, .5, .5, 0},
	} {
		if got := c.shape.At(c.phase, c.sharp); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("shape %d at %v (sharp %v): got %v, want %v", c.shape, c.phase, c.sharp, got, c.want)
		}
	}
}

func TestLFORange(t *testing.T) {
	for shape := SawUp; shape <= ModSine; shape++ {
		sum := 0.0
		const n = 1000
		for i := 0; i < n; i++ {
			x := shape.At(float64(i)/n, .7)
			if x < -1 || x > 1 {
				t.Fatalf("shape %d: value %v at phase %v", shape, x, float64(i)/n)
			}
			sum += x
		}
		if shape == Pulse {
			continue
		}
		if mean := sum / n; math.Abs(mean) > .01 {
			t.Errorf("shape %d: mean %v, want 0", shape, mean)
		}
	}
}

func TestLFONegativeFreq(t *testing.T) {
	o := NewLFO(SawUp, 0)
	Init(o, Params{100})
	for i := 0; i < 1000; i++ {
		o.Sing(-7)
		if o.phase < 0 || o.phase >= 1 {
			t.Fatalf("phase %v out of range", o.phase)
		}
	}
}

func BenchmarkLFO(b *testing.B) {
	o := NewLFO(ModSine, .5)
	Init(o, Params{44100})
	for i := 0; i < b.N; i++ {
		o.Sing(1234)
	}
}
