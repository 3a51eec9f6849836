package main

import (
	"bytes"
	"math"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/gordonklaus/pastorale/audio"
	"github.com/gordonklaus/pastorale/edo"
)

func TestScore(t *testing.T) {
	for _, c := range []struct {
		name          string
		n, ticks, tag int
	}{
		{"lead", 817, 4885, 5},
		{"bass", 269, 4920, 91},
	} {
		p := lead
		if c.name == "bass" {
			p = bass
		}
		if err := p.Validate(edo.Default); err != nil {
			t.Errorf("%s: %v", c.name, err)
		}
		tags := 0
		for _, e := range p {
			if e.HasSpeed() {
				tags++
			}
		}
		if len(p) != c.n || p.Ticks() != c.ticks || tags != c.tag {
			t.Errorf("%s: %d events, %d ticks, %d tags; want %d, %d, %d", c.name, len(p), p.Ticks(), tags, c.n, c.ticks, c.tag)
		}
	}
	if last := bass[len(bass)-1]; last.Pitch != "f,," || last.Volume != .01 || last.HasSpeed() {
		t.Errorf("last bass event %+v", last)
	}
}

func TestLength(t *testing.T) {
	end := bassStart*tick + bass.Seconds(tick)
	if math.Abs(end-230.817) > .01 {
		t.Errorf("bass ends at %.3f s", end)
	}
	if fadeOut := info.Duration - 2; end > fadeOut {
		t.Errorf("bass ends at %.2f s, after the fade-out begins at %.2f s", end, fadeOut)
	}
	if nominal := float64(bass.Ticks()) * tick; nominal > info.Duration {
		t.Errorf("nominal bass length %.2f s exceeds %v s", nominal, info.Duration)
	}
}

// render runs the band at a low sample rate for the given number of seconds.
func render(t *testing.T, seed int64, seconds, sampleRate float64, each func(b *band, l, r float64)) *band {
	t.Helper()
	b, err := newBand(seed, info.Duration)
	if err != nil {
		t.Fatal(err)
	}
	audio.Init(b, audio.Params{SampleRate: sampleRate})
	for i := 0; i < int(seconds*sampleRate); i++ {
		l, r := b.Sing()
		if each != nil {
			each(b, l, r)
		}
	}
	return b
}

func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("renders the whole piece")
	}
	const sr = 4000
	var meter audio.Meter
	faded := -1.0
	i := 0
	b := render(t, 1, info.Duration+.01, sr, func(b *band, l, r float64) {
		if math.IsNaN(l) || math.IsNaN(r) {
			t.Fatalf("NaN at sample %d", i)
		}
		meter.Add(l)
		meter.Add(r)
		if faded < 0 && b.Tempo.Done() {
			faded = float64(i) / sr
		}
		i++
	})
	if !b.Tempo.Done() || b.Tempo.Index() != len(bass) {
		t.Fatalf("controller at %d of %d", b.Tempo.Index(), len(bass))
	}
	if !b.Lead.Seq.Done() || !b.Echo.Seq.Done() || !b.Bass.Seq.Done() {
		t.Error("a voice did not finish")
	}
	if b.Tempo.Speed() != 1 {
		t.Errorf("final speed %v", b.Tempo.Speed())
	}
	// The last bass note starts 24 ticks before the end.
	if want := 230.817 - 24*tick; math.Abs(faded-want) > .01 {
		t.Errorf("leads faded at %.3f s, want %.3f s", faded, want)
	}
	if b.Lead.Amp.Input()() != 0 || b.Echo.Amp.Input()() != 0 {
		t.Error("lead volumes not faded to 0")
	}
	if a := b.Lead.Amp.Value(); a > 1e-6 {
		t.Errorf("lead amplitude %v after the fade", a)
	}
	if !b.Done() {
		t.Error("band not done after the full duration")
	}
	if meter.RMS() < 1e-3 {
		t.Errorf("rms %v: silent", meter.RMS())
	}
}

func TestReproducible(t *testing.T) {
	var a, b []float64
	render(t, 7, 1, 4000, func(_ *band, l, r float64) { a = append(a, l, r) })
	render(t, 7, 1, 4000, func(_ *band, l, r float64) { b = append(b, l, r) })
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v, %v", i, a[i], b[i])
		}
	}
}

func TestWriteMIDI(t *testing.T) {
	var buf bytes.Buffer
	if err := (piece{}).WriteMIDI(&buf); err != nil {
		t.Fatal(err)
	}
	s, err := smf.ReadFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Tracks) != 4 {
		t.Errorf("got %d tracks, want 4", len(s.Tracks))
	}
}

func BenchmarkBand(b *testing.B) {
	band, err := newBand(1, info.Duration)
	if err != nil {
		b.Fatal(err)
	}
	audio.Init(band, audio.Params{SampleRate: 44100})
	for i := 0; i < b.N; i++ {
		band.Sing()
	}
}

// A lead note starting on the same sample as a bass note plays at the speed
// that bass note sets.
func TestLeadsFollowTempo(t *testing.T) {
	if testing.Short() {
		t.Skip("renders the whole piece")
	}
	b, err := newBand(1, info.Duration)
	if err != nil {
		t.Fatal(err)
	}
	audio.Init(b, audio.Params{SampleRate: 2000})
	var leadFired, bassFired bool
	var seen float64
	for _, v := range []*leadVoice{b.Lead, b.Echo} {
		v.Seq.Next.Connect(func() {
			leadFired = true
			seen = v.Seq.Speed()
		})
	}
	b.Bass.Seq.Next.Connect(func() { bassFired = true })
	shared := 0
	for i := 0; !b.Bass.Seq.Done(); i++ {
		leadFired, bassFired = false, false
		b.Sing()
		if !leadFired || !bassFired {
			continue
		}
		shared++
		if seen != b.Tempo.Speed() {
			t.Fatalf("sample %d: lead note started at speed %v, bass set %v", i, seen, b.Tempo.Speed())
		}
	}
	if shared == 0 {
		t.Error("no lead note shared a sample with a bass note")
	}
}
