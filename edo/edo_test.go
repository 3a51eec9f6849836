package edo

import (
	"errors"
	"math"
	"testing"
)

func TestDefault(t *testing.T) {
	for _, c := range []struct {
		name string
		freq float64
	}{
		{"c", 256},
		{"c'", 512},
		{"c,", 128},
		{"c,,", 64},
		{"g", 256 * math.Exp2(18./31)},
		{"_b,,", 256 * math.Exp2(-36./31)},
	} {
		f, err := Default.Freq(c.name)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(f-c.freq) > 1e-9 {
			t.Errorf("%s: got %v, want %v", c.name, f, c.freq)
		}
	}
}

func TestMonotonic(t *testing.T) {
	degrees := Default.Degrees()
	if len(degrees) != len(Names) {
		t.Fatalf("%d degrees, want %d", len(degrees), len(Names))
	}
	prev := 0.0
	for _, d := range degrees {
		f := Default.MustFreq(d.Name)
		if f <= prev {
			t.Errorf("%s (%d): %v not above %v", d.Name, d.Degree, f, prev)
		}
		prev = f
	}
}

func TestUnknownPitch(t *testing.T) {
	for _, name := range []string{"h", "C", "c,,,", "", "b"} {
		if _, err := Default.Freq(name); !errors.Is(err, ErrUnknownPitch) {
			t.Errorf("%q: got %v, want ErrUnknownPitch", name, err)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("MustFreq did not panic")
		}
	}()
	Default.MustFreq("h")
}

func TestNewTable(t *testing.T) {
	if _, err := NewTable(Tuning{256, 31}, []Degree{{"c", 0}, {"c", 1}}); err == nil {
		t.Error("duplicate name accepted")
	}
	if _, err := NewTable(Tuning{0, 31}, nil); err == nil {
		t.Error("zero base accepted")
	}
	if _, err := NewTable(Tuning{256, 0}, nil); err == nil {
		t.Error("zero divisions accepted")
	}
}

func TestMIDI(t *testing.T) {
	key, bend := MIDI(440)
	if key != 69 || bend != 0 {
		t.Errorf("440Hz: got %d%+v", key, bend)
	}
	// c = 256Hz sits about 37.6 cents below middle C
	key, bend = MIDI(256)
	if key != 60 || math.Abs(bend+.376) > .001 {
		t.Errorf("256Hz: got %d%+v", key, bend)
	}
}
