package main

import (
	"fmt"

	"github.com/gordonklaus/pastorale/audio"
	"github.com/gordonklaus/pastorale/edo"
	"github.com/gordonklaus/pastorale/score"
	"github.com/gordonklaus/pastorale/tempo"
)

// mastering is the output EQ, applied in order.
var mastering = []struct{ freq, boost float64 }{
	{16000, 17},
	{8000, 15},
	{4000, 10},
	{2000, 3},
	{1000, 2.3},
	{500, 2.7},
	{250, 2.5},
	{125, -3},
	{62, 2},
	{31, 4},
}

type band struct {
	Cues  audio.EventDelay
	Lead  *leadVoice
	Echo  *leadVoice
	Bass  *bassVoice
	Tempo *tempo.Controller

	Reverb *audio.Freeverb
	Fade   *audio.Control
	EQ     [2][]*audio.EQ
	Delay  [2]*audio.Delay

	started bool
}

func newBand(seed int64, duration float64) (*band, error) {
	for _, p := range []score.Performance{lead, bass} {
		if err := p.Validate(edo.Default); err != nil {
			return nil, fmt.Errorf("invalid score: %w", err)
		}
	}
	l, err := lead.Arrays(edo.Default)
	if err != nil {
		return nil, err
	}
	bs, err := bass.Arrays(edo.Default)
	if err != nil {
		return nil, err
	}
	b := &band{
		Lead:   newLeadVoice(l, audio.SawDown, 0, .366, .15, .83),
		Echo:   newLeadVoice(l, audio.BipolarPulse, .7, .32, .85, 1),
		Bass:   newBassVoice(bs, seed),
		Reverb: audio.NewFreeverb(.84, .4, .4),
		Fade:   audio.NewFader(.01, 2, duration, .49),
	}
	for ch := range b.EQ {
		for _, s := range mastering {
			b.EQ[ch] = append(b.EQ[ch], audio.NewEQ(s.freq, 1, s.boost))
		}
		b.Delay[ch] = audio.NewDelay(.75, .4)
	}
	b.Tempo = tempo.NewController(bass,
		[]tempo.Rate{b.Bass.Seq, b.Lead.Seq, b.Echo.Seq},
		[]tempo.Fader{b.Lead.Amp, b.Echo.Amp})
	// after the bass iterators, so a tempo change governs its own note
	b.Bass.Seq.Next.Connect(b.Tempo.MustNext)
	return b, nil
}

func (b *band) cue() {
	b.Cues.Delay(leadStart*tick, b.Lead.Seq.Play)
	b.Cues.Delay(echoStart*tick, b.Echo.Seq.Play)
	b.Cues.Delay(bassStart*tick, b.Bass.Seq.Play)
}

func (b *band) Sing() (float64, float64) {
	if !b.started {
		b.started = true
		b.cue()
	}
	b.Cues.Step()
	// bass first: its controller sets every voice's speed
	b.Bass.Seq.Step()
	b.Lead.Seq.Step()
	b.Echo.Seq.Step()

	l1, r1 := b.Lead.Sing()
	l2, r2 := b.Echo.Sing()
	l3, r3 := b.Bass.Sing()
	l, r := b.Reverb.Reverb(l1+l2+l3, r1+r2+r3)
	g := b.Fade.Sing()
	out := [2]float64{l * g, r * g}
	for ch := range out {
		for _, eq := range b.EQ[ch] {
			out[ch] = eq.Filter(out[ch])
		}
		out[ch] += .15 * b.Delay[ch].Delay(out[ch])
	}
	return out[0], out[1]
}

func (b *band) Done() bool { return b.Fade.Done() }

// level maps a score volume in [0, 1] to amplitude, 0 landing at -119 dB.
func level(vols *audio.Iter) audio.Source {
	return func() float64 { return audio.DBToA(vols.Value()*118 - 119) }
}

// Voice is the note-following front end shared by all voices: a sequencer
// driving smoothed pitch and amplitude.  It is exported so audio.Init
// reaches it when embedded.
type Voice struct {
	Seq   *audio.Seq
	Notes *audio.Iter
	Vols  *audio.Iter
	Pitch *audio.Port
	Amp   *audio.Port
	level audio.Source
}

func newVoice(a score.Arrays, ampRise float64) Voice {
	v := Voice{
		Seq:   audio.NewSeq(tick, a.Times),
		Notes: audio.NewIter(a.Notes),
		Vols:  audio.NewIter(a.Vols),
	}
	v.Seq.Next.Connect(v.Notes.Next)
	v.Seq.Next.Connect(v.Vols.Next)
	v.level = level(v.Vols)
	v.Pitch = audio.NewPort(v.Notes.Value, .005, .005)
	v.Amp = audio.NewPort(v.level, ampRise, .005)
	return v
}

type leadVoice struct {
	Voice
	Osc  *audio.LFO
	Tone audio.Tone
	Pan  *audio.Pan

	mul, gain float64
}

func newLeadVoice(a score.Arrays, shape audio.Shape, sharp, mul, pan, gain float64) *leadVoice {
	return &leadVoice{
		Voice: newVoice(a, .005),
		Osc:   audio.NewLFO(shape, sharp),
		Pan:   audio.NewPan(pan),
		mul:   mul,
		gain:  gain,
	}
}

func (v *leadVoice) Sing() (float64, float64) {
	f := v.Pitch.Sing()
	a := v.Amp.Sing()
	x := v.Osc.Sing(f) * a * v.mul
	x = v.Tone.Filter(x, 5000+v.level()*8000)
	l, r := v.Pan.Pan(x)
	return l * v.gain, r * v.gain
}

// bassVoice stacks three partials: the fundamental, and the second and
// fourth harmonics detuned by brown noise.
type bassVoice struct {
	Voice
	Osc    [3]*audio.LFO
	Tone   [3]audio.Tone
	Pan    [3]*audio.Pan
	Jitter [2]*audio.BrownNoise
}

var bassPartials = [3]struct {
	mult, mul, pan float64
	shape          audio.Shape
	sharp          float64
}{
	{1, .41, .5, audio.ModSine, .5},
	{2, .21, .35, audio.Triangle, 0},
	{4, .06, .65, audio.ModSine, .5},
}

func newBassVoice(a score.Arrays, seed int64) *bassVoice {
	v := &bassVoice{Voice: newVoice(a, .007)}
	for i, p := range bassPartials {
		v.Osc[i] = audio.NewLFO(p.shape, p.sharp)
		v.Pan[i] = audio.NewPan(p.pan)
	}
	for i := range v.Jitter {
		v.Jitter[i] = audio.NewBrownNoise(seed+int64(i), 1.2)
	}
	return v
}

func (v *bassVoice) Sing() (l, r float64) {
	f := v.Pitch.Sing()
	a := v.Amp.Sing()
	cutoff := 7000 + v.level()*8000
	for i, p := range bassPartials {
		freq := p.mult * f
		if i > 0 {
			freq += v.Jitter[i-1].Sing()
		}
		x := v.Tone[i].Filter(v.Osc[i].Sing(freq)*a*p.mul, cutoff)
		pl, pr := v.Pan[i].Pan(x)
		l += pl
		r += pr
	}
	return 2.4 * l, 2.4 * r
}
