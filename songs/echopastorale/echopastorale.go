// Echo Pastorale: two voices in strict canon over an obbligato bass, in
// 31-tone equal temperament.  The bass carries the tempo: its tagged notes
// slow or hurry all three voices.
//
//	echopastorale [flags] out.wav
package main

import (
	"io"

	"github.com/gordonklaus/pastorale/audio"
	"github.com/gordonklaus/pastorale/edo"
	"github.com/gordonklaus/pastorale/radio"
	"github.com/gordonklaus/pastorale/score"
)

var info = radio.Info{
	Title:    "Echo Pastorale",
	Artist:   "Aaron Krister Johnson",
	Genre:    "Electronic Neo-Baroque",
	Year:     2017,
	Duration: 234,
}

const (
	tick         = 1.08 / 24 // seconds; a 6/8 bar is 24 ticks
	ticksPerBeat = 8

	// start offsets, in ticks
	leadStart = 3
	echoStart = 27
	bassStart = 3
)

var (
	lead = score.Concat(leadA11, leadA21, leadB1, leadA12, leadA22, leadB2, leadA13, leadA23, leadCoda)
	bass = score.Concat(bassA11, bassA21, bassB1, bassA12, bassA22, bassB2, bassA13, bassA23, bassCoda)
)

func main() {
	radio.Main(info, piece{})
}

type piece struct{}

func (piece) Build(c *radio.Config) (audio.StereoVoice, error) {
	b, err := newBand(c.Seed, c.Duration)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (piece) WriteMIDI(w io.Writer) error {
	return score.WriteMIDI(w, score.MIDIOptions{
		Tick:         tick,
		TicksPerBeat: ticksPerBeat,
		Meter:        [2]uint8{6, 8},
		Pitches:      edo.Default,
		Tempo:        bass.TempoMap(bassStart),
	},
		score.Track{Name: "lead", Events: lead, Offset: leadStart, Program: 81},
		score.Track{Name: "echo", Events: lead, Offset: echoStart, Program: 80},
		score.Track{Name: "bass", Events: bass, Offset: bassStart, Program: 38},
	)
}
