// Package edo maps pitch names to frequencies in an equal division of the
// octave.
package edo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownPitch = errors.New("unknown pitch")

// Tuning divides the octave into Divisions equal steps above Base Hz.
type Tuning struct {
	Base      float64
	Divisions float64
}

// Freq returns the frequency of the given scale degree.
func (t Tuning) Freq(degree int) float64 {
	return t.Base * math.Exp2(float64(degree)/t.Divisions)
}

// MIDI returns the nearest 12-tone equal-tempered MIDI key to freq and the
// remaining offset in semitones, in [-.5, .5].
func MIDI(freq float64) (key int, bend float64) {
	x := 69 + 12*math.Log2(freq/440)
	key = int(math.Round(x))
	return key, x - float64(key)
}

// A Degree names a scale degree.
type Degree struct {
	Name   string
	Degree int
}

// Table maps pitch names to frequencies.
type Table struct {
	degrees []Degree
	freqs   map[string]float64
}

func NewTable(t Tuning, degrees []Degree) (*Table, error) {
	if t.Base <= 0 || t.Divisions <= 0 {
		return nil, fmt.Errorf("invalid tuning %+v", t)
	}
	tab := &Table{freqs: make(map[string]float64, len(degrees))}
	for _, d := range degrees {
		if _, ok := tab.freqs[d.Name]; ok {
			return nil, fmt.Errorf("duplicate pitch %q", d.Name)
		}
		tab.freqs[d.Name] = t.Freq(d.Degree)
	}
	tab.degrees = append([]Degree(nil), degrees...)
	sort.SliceStable(tab.degrees, func(i, j int) bool { return tab.degrees[i].Degree < tab.degrees[j].Degree })
	return tab, nil
}

func (t *Table) Freq(name string) (float64, error) {
	f, ok := t.freqs[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownPitch, name)
	}
	return f, nil
}

// MustFreq is like Freq but panics on an unknown name.  It is meant for
// building scores at startup.
func (t *Table) MustFreq(name string) float64 {
	f, err := t.Freq(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Degrees returns the table's entries ordered by scale degree.
func (t *Table) Degrees() []Degree {
	return append([]Degree(nil), t.degrees...)
}

// ThirtyOne is 31-tone equal temperament on C = 256Hz.
var ThirtyOne = Tuning{Base: 256, Divisions: 31}

// Names spells 31-EDO pitches in the score's notation: a letter, an optional
// accidental prefix (_ flat, = natural), and octave marks (, down, ' up)
// relative to the octave above c = 256Hz.
var Names = []Degree{
	{"c,,", -62}, {"d,,", -57}, {"e,,", -52}, {"f,,", -49},
	{"g,,", -44}, {"a,,", -39}, {"_b,,", -36}, {"=b,,", -34},
	{"c,", -31}, {"d,", -26}, {"e,", -21}, {"f,", -18}, {"g,", -13},
	{"a,", -8}, {"_b,", -5}, {"c", 0}, {"e", 10}, {"f", 13},
	{"g", 18}, {"a", 23}, {"_b", 26}, {"=b", 28}, {"c'", 31},
	{"d'", 36}, {"e'", 41}, {"f'", 44}, {"g'", 49}, {"a'", 54},
}

// Default is the pitch table of Names in ThirtyOne.
var Default = mustTable(ThirtyOne, Names)

func mustTable(t Tuning, degrees []Degree) *Table {
	tab, err := NewTable(t, degrees)
	if err != nil {
		panic(err)
	}
	return tab
}
