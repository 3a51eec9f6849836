package audio

import "testing"

func TestLimiter(t *testing.T) {
	for _, c := range []struct {
		amp, lo, hi float64
	}{
		{4, .45, .52},
		{.01, .0069, .0072},
	} {
		l := NewLimiter(.5, .01, .1)
		osc := NewLFO(ModSine, 0)
		p := Params{SampleRate: 8000}
		Init(l, p)
		Init(osc, p)
		var m Meter
		for i := 0; i < 16000; i++ {
			x := c.amp * osc.Sing(440)
			y, z := l.Limit(x, x)
			if y != z {
				t.Fatalf("channels differ: %v, %v", y, z)
			}
			if i >= 8000 {
				m.Add(y)
			}
		}
		if rms := m.RMS(); rms < c.lo || rms > c.hi {
			t.Errorf("amplitude %v: output rms %v, want in [%v, %v]", c.amp, rms, c.lo, c.hi)
		}
	}
}

func TestLimiterDelay(t *testing.T) {
	l := NewLimiter(1, .001, .1)
	Init(l, Params{SampleRate: 8000})
	for i := 0; i < 8; i++ {
		if y, _ := l.Limit(.001, 0); y != 0 {
			t.Fatalf("output %v at sample %d, before the attack time", y, i)
		}
	}
	if y, _ := l.Limit(.001, 0); y == 0 {
		t.Error("no output after the attack time")
	}
}

func BenchmarkLimiter(b *testing.B) {
	l := NewLimiter(.5, .01, .1)
	Init(l, Params{SampleRate: 44100})
	for i := 0; i < b.N; i++ {
		l.Limit(.7, -.7)
	}
}
