package audio

// A StereoVoice produces one stereo frame per call to Sing.
type StereoVoice interface {
	Sing() (left, right float64)
	Done() bool
}
