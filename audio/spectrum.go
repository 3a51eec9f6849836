package audio

import (
	"math"

	"github.com/ktye/fft"
)

// Spectrum averages the power spectrum of a signal over consecutive
// Hann-windowed frames.
type Spectrum struct {
	Params Params
	fft    fft.FFT
	env    []float64
	frame  []complex128
	i      int
	power  []float64
	frames int
}

// NewSpectrum returns a Spectrum with the given frame size, a power of two.
func NewSpectrum(size int) *Spectrum {
	f, err := fft.New(size)
	if err != nil {
		panic(err)
	}
	env := make([]float64, size)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Spectrum{
		fft:   f,
		env:   env,
		frame: make([]complex128, size),
		power: make([]float64, size/2+1),
	}
}

func (s *Spectrum) Add(x float64) {
	s.frame[s.i] = complex(x*s.env[s.i], 0)
	s.i++
	if s.i < len(s.frame) {
		return
	}
	s.i = 0
	for i, x := range s.fft.Transform(s.frame)[:len(s.power)] {
		s.power[i] += real(x)*real(x) + imag(x)*imag(x)
	}
	s.frames++
}

// Frames returns the number of complete frames analysed.
func (s *Spectrum) Frames() int { return s.frames }

// Level returns the mean power in [lo, hi) Hz in dB, scaled so that a
// full-scale sine reads 0 dB.
func (s *Spectrum) Level(lo, hi float64) float64 {
	if s.frames == 0 {
		return math.Inf(-1)
	}
	n := len(s.frame)
	binWidth := s.Params.SampleRate / float64(n)
	sum := 0.0
	for i, p := range s.power {
		if f := float64(i) * binWidth; f >= lo && f < hi {
			sum += p
		}
	}
	norm := 0.0
	for _, w := range s.env {
		norm += w * w
	}
	norm *= float64(n) / 4
	return 10 * math.Log10(sum/float64(s.frames)/norm)
}

// Octaves returns the Level of the octave band around each centre frequency.
func (s *Spectrum) Octaves(centers []float64) []float64 {
	levels := make([]float64, len(centers))
	for i, c := range centers {
		levels[i] = s.Level(c/math.Sqrt2, c*math.Sqrt2)
	}
	return levels
}
