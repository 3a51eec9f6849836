package score

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/gordonklaus/pastorale/edo"
)

// Track is one voice of a MIDI export.
type Track struct {
	Name    string
	Events  Performance
	Offset  int // start, in ticks
	Program uint8
}

// TempoChange sets the speed multiplier from Tick on.
type TempoChange struct {
	Tick  int
	Speed float64
}

type MIDIOptions struct {
	Tick         float64 // seconds per tick at speed 1
	TicksPerBeat int     // ticks per quarter note
	Meter        [2]uint8
	Pitches      Pitches
	Tempo        []TempoChange
}

// midiTicks is the MIDI resolution per score tick.
const midiTicks = 120

// WriteMIDI writes a format 1 Standard MIDI File: a conductor track with the
// meter and tempo map, then one track per voice on its own channel.  Pitches
// off the 12-tone grid are sounded with pitch bend (default range of two
// semitones), which is why each voice needs a channel of its own.
func WriteMIDI(w io.Writer, opts MIDIOptions, tracks ...Track) error {
	if len(tracks) > 15 {
		return fmt.Errorf("%d tracks: at most 15 voices fit the MIDI channels", len(tracks))
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerBeat * midiTicks)

	bpm := 60 / (opts.Tick * float64(opts.TicksPerBeat))
	var conductor smf.Track
	conductor.Add(0, smf.MetaMeter(opts.Meter[0], opts.Meter[1]))
	conductor.Add(0, smf.MetaTempo(bpm))
	prev := 0
	for _, c := range opts.Tempo {
		if c.Tick < prev {
			return fmt.Errorf("tempo change at tick %d precedes tick %d", c.Tick, prev)
		}
		conductor.Add(uint32((c.Tick-prev)*midiTicks), smf.MetaTempo(bpm*c.Speed))
		prev = c.Tick
	}
	conductor.Close(0)
	if err := s.Add(conductor); err != nil {
		return err
	}

	for i, t := range tracks {
		ch := uint8(i)
		if ch >= 9 {
			ch++ // skip the percussion channel
		}
		tr, err := t.midi(ch, opts.Pitches)
		if err != nil {
			return fmt.Errorf("track %s: %w", t.Name, err)
		}
		if err := s.Add(tr); err != nil {
			return err
		}
	}
	_, err := s.WriteTo(w)
	return err
}

func (t Track) midi(ch uint8, pitches Pitches) (smf.Track, error) {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(t.Name))
	tr.Add(0, midi.ProgramChange(ch, t.Program))
	delta := uint32(t.Offset * midiTicks)
	for i, e := range t.Events {
		dur := uint32(e.Ticks * midiTicks)
		if e.Rest() {
			delta += dur
			continue
		}
		f, err := pitches.Freq(e.Pitch)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		key, bend := edo.MIDI(f)
		if key < 0 || key > 127 {
			return nil, fmt.Errorf("event %d: %s is outside the MIDI range", i, e.Pitch)
		}
		tr.Add(delta, midi.Pitchbend(ch, int16(math.Round(bend/2*8191))))
		tr.Add(0, midi.NoteOn(ch, uint8(key), velocity(e.Volume)))
		tr.Add(dur, midi.NoteOff(ch, uint8(key)))
		delta = 0
	}
	tr.Close(delta)
	return tr, nil
}

func velocity(vol float64) uint8 {
	return uint8(math.Max(1, math.Min(127, math.Round(vol*127))))
}
