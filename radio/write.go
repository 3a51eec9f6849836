package radio

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/gordonklaus/pastorale/audio"
)

const blockFrames = 4096

// Write renders c.Frames() frames of v to c.Output as 16-bit stereo PCM WAV
// carrying the piece's INFO metadata.  If progress is not nil it is called
// after every block.  On error the partial file is left in place.
func Write(ctx context.Context, c *Config, v audio.StereoVoice, progress func(done, total int)) (Stats, error) {
	f, err := os.Create(c.Output)
	if err != nil {
		return Stats{}, err
	}
	stats, err := encode(ctx, f, c, v, progress)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("writing %s: %w", c.Output, cerr)
	}
	return stats, err
}

// encode writes the WAV stream to w, leaving w open.
func encode(ctx context.Context, w io.WriteSeeker, c *Config, v audio.StereoVoice, progress func(done, total int)) (Stats, error) {
	t := newTap(v, c)
	audio.Init(t, audio.Params{SampleRate: c.SampleRate})

	enc := wav.NewEncoder(w, int(c.SampleRate), 16, 2, 1)
	enc.Metadata = &wav.Metadata{
		Title:        c.Title,
		Artist:       c.Artist,
		Genre:        c.Genre,
		CreationDate: strconv.Itoa(c.Year),
		Software:     "pastorale",
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: int(c.SampleRate)},
		Data:           make([]int, 2*blockFrames),
		SourceBitDepth: 16,
	}
	total := c.Frames()
	for done := 0; done < total; {
		if err := ctx.Err(); err != nil {
			return t.stats(c.SampleRate), err
		}
		n := min(blockFrames, total-done)
		buf.Data = buf.Data[:2*n]
		for i := 0; i < n; i++ {
			l, r := t.Sing()
			buf.Data[2*i], buf.Data[2*i+1] = pcm16(l), pcm16(r)
		}
		if err := enc.Write(buf); err != nil {
			return t.stats(c.SampleRate), fmt.Errorf("writing %s: %w", c.Output, err)
		}
		done += n
		if progress != nil {
			progress(done, total)
		}
	}
	if err := enc.Close(); err != nil {
		return t.stats(c.SampleRate), fmt.Errorf("writing %s: %w", c.Output, err)
	}
	return t.stats(c.SampleRate), nil
}

func pcm16(x float64) int { return int(math.Round(x * math.MaxInt16)) }
