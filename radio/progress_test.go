package radio

import (
	"errors"
	"strings"
	"testing"
)

func TestProgressModel(t *testing.T) {
	m := progressModel{title: "x"}
	next, cmd := m.Update(progressMsg{50, 200})
	if cmd != nil {
		t.Error("progress update returned a command")
	}
	m = next.(progressModel)
	if !strings.Contains(m.View(), "25%") {
		t.Errorf("view %q", m.View())
	}
	next, cmd = m.Update(finishedMsg{errors.New("disk full")})
	if cmd == nil {
		t.Error("no quit command when finished")
	}
	m = next.(progressModel)
	if !m.finished || !strings.Contains(m.View(), "disk full") {
		t.Errorf("view %q", m.View())
	}
}

func TestSummary(t *testing.T) {
	s := Summary(testInfo, Stats{Frames: 44100, Seconds: 1, Peak: -3, RMS: -12, Clipped: 2, BandLevels: make([]float64, len(octaves))})
	for _, want := range []string{"Test", "Nobody", "-3.0 dBFS", "2 samples", "16k", "31"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary lacks %q:\n%s", want, s)
		}
	}
}

func TestLevelBar(t *testing.T) {
	if n := strings.Count(levelBar(0), "▇"); n != 30 {
		t.Errorf("0 dB: %d cells", n)
	}
	if n := strings.Count(levelBar(-90), "▇"); n != 0 {
		t.Errorf("-90 dB: %d cells", n)
	}
	if n := strings.Count(levelBar(-30), "▇"); n != 15 {
		t.Errorf("-30 dB: %d cells", n)
	}
}
