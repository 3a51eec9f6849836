package audio

import (
	"math"
	"testing"
)

func TestDelay(t *testing.T) {
	d := NewDelay(.5, .4)
	Init(d, Params{SampleRate: 10})
	want := map[int]float64{5: 1, 10: .4, 15: .4 * .4}
	for i := 0; i < 20; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		y := d.Delay(x)
		if math.Abs(y-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}
