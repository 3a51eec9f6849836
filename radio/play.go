package radio

import (
	"context"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/gordonklaus/pastorale/audio"
)

// Play plays v through the default output device until c.Duration has
// elapsed or ctx is done.  The graph is touched only from the stream
// callback.
func Play(ctx context.Context, c *Config, v audio.StereoVoice) (Stats, error) {
	if err := portaudio.Initialize(); err != nil {
		return Stats{}, err
	}
	defer portaudio.Terminate()

	t := newTap(v, c)
	audio.Init(t, audio.Params{SampleRate: c.SampleRate})

	total := c.Frames()
	finished := make(chan struct{})
	var once sync.Once
	stream, err := portaudio.OpenDefaultStream(0, 2, c.SampleRate, 1024, func(out [][]float32) {
		for i := range out[0] {
			if t.frames >= total {
				out[0][i], out[1][i] = 0, 0
				continue
			}
			l, r := t.Sing()
			out[0][i], out[1][i] = float32(l), float32(r)
		}
		if t.frames >= total {
			once.Do(func() { close(finished) })
		}
	})
	if err != nil {
		return Stats{}, err
	}
	defer stream.Close()
	if err := stream.Start(); err != nil {
		return Stats{}, err
	}
	select {
	case <-finished:
	case <-ctx.Done():
	}
	if err := stream.Stop(); err != nil {
		return Stats{}, err
	}
	return t.stats(c.SampleRate), nil
}
