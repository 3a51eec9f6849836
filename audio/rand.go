package audio

import "math/rand"

// BrownNoise is random noise with a -6dB/octave spectrum, scaled by Mul.
type BrownNoise struct {
	Mul  float64
	rand *rand.Rand
	y    float64
}

func NewBrownNoise(seed int64, mul float64) *BrownNoise {
	return &BrownNoise{Mul: mul, rand: rand.New(rand.NewSource(seed))}
}

func (n *BrownNoise) Sing() float64 {
	n.y = (n.y + .02*(2*n.rand.Float64()-1)) / 1.02
	return 3.5 * n.y * n.Mul
}
