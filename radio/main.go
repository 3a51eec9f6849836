package radio

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gordonklaus/pastorale/audio"
)

// A Piece is a song radio can run.
type Piece interface {
	// Build returns the signal graph for a run.  The caller initialises it.
	Build(c *Config) (audio.StereoVoice, error)
	WriteMIDI(w io.Writer) error
}

// Main runs p with the command line and exits non-zero on failure.
func Main(info Info, p Piece) {
	err := Run(context.Background(), os.Args[0], os.Args[1:], info, p, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	default:
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Run is Main without the exit.  Diagnostics and the summary go to stderr.
func Run(ctx context.Context, name string, args []string, info Info, p Piece, stderr io.Writer) error {
	name = filepath.Base(name)
	c, err := ParseFlags(name, args, info, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := c.Validate(); err != nil {
		return err
	}
	if c.MIDI != "" {
		if err := writeMIDI(c.MIDI, p); err != nil {
			return err
		}
		log.Info("wrote score", "path", c.MIDI)
	}
	v, err := p.Build(c)
	if err != nil {
		return err
	}
	log.Debug("built graph", "seed", c.Seed, "gain", c.Gain)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stats Stats
	if c.Ready {
		log.Info("rendering", "title", c.Title, "output", c.Output, "seconds", c.Duration, "rate", c.SampleRate)
		var progress func(done, total int)
		var view *progressView
		if c.Progress {
			view = startProgress(c.Title, stderr)
			progress = view.Update
		}
		stats, err = Write(ctx, c, v, progress)
		if view != nil {
			view.Finish(err)
		}
	} else {
		log.Info("playing", "title", c.Title, "seconds", c.Duration, "rate", c.SampleRate)
		stats, err = Play(ctx, c, v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stderr, Summary(c.Info, stats))
	if stats.Clipped > 0 {
		log.Warn("output clipped", "samples", stats.Clipped)
	}
	return nil
}

func writeMIDI(path string, p Piece) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.WriteMIDI(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
