// Package radio runs a piece: it renders it to a WAV file or plays it live,
// depending on whether the piece is ready for broadcast.
package radio

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Info describes a piece.
type Info struct {
	Title    string
	Artist   string
	Genre    string
	Year     int
	Duration float64 // seconds
}

// Config is a run of a piece.
type Config struct {
	Info

	Ready      bool   // render to Output; otherwise play live
	Output     string // WAV path
	SampleRate float64
	Gain       float64
	Limit      float64 // output RMS ceiling in dBFS; 0 disables the limiter
	Seed       int64
	MIDI       string // if set, also export the score here
	Progress   bool
	Verbose    bool
}

var ErrNoOutput = errors.New("radio: no output path")

// ParseFlags parses args (without the program name).  The first positional
// argument is the output path.
func ParseFlags(name string, args []string, info Info, stderr io.Writer) (*Config, error) {
	c := &Config{Info: info}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] output.wav\n", name)
		fs.PrintDefaults()
	}
	fs.BoolVar(&c.Ready, "ready", true, "render to the output file; -ready=false plays live")
	fs.Float64Var(&c.SampleRate, "rate", 44100, "sample rate in Hz")
	fs.Float64Var(&c.Gain, "gain", 1.2, "output gain")
	fs.Float64Var(&c.Limit, "limit", 0, "soft-limit the output RMS to this many dBFS (0: off)")
	fs.Int64Var(&c.Seed, "seed", 1, "seed for the noise sources")
	fs.Float64Var(&c.Duration, "duration", info.Duration, "length in seconds")
	fs.StringVar(&c.MIDI, "midi", "", "also write the score as a MIDI file")
	fs.BoolVar(&c.Progress, "progress", false, "show render progress")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		c.Output = fs.Arg(0)
	default:
		return nil, fmt.Errorf("radio: unexpected arguments %q", fs.Args()[1:])
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Ready && c.Output == "" {
		return ErrNoOutput
	}
	if c.Duration <= 0 {
		return fmt.Errorf("radio: duration %v must be positive", c.Duration)
	}
	if c.Limit > 0 {
		return fmt.Errorf("radio: limit %v dBFS must not be positive", c.Limit)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("radio: sample rate %v must be positive", c.SampleRate)
	}
	return nil
}

// Frames returns the length of the run in stereo frames.
func (c *Config) Frames() int {
	return int(c.Duration * c.SampleRate)
}
