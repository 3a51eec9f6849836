package radio

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Width(9)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f80"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444")).Padding(0, 1)
)

// Summary renders the stats of a run for the terminal.
func Summary(info Info, s Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("%s · %s (%d)", info.Title, info.Artist, info.Year)))
	row := func(label, value string) {
		fmt.Fprintf(&b, "%s%s\n", labelStyle.Render(label), value)
	}
	row("length", fmt.Sprintf("%.2f s, %d frames", s.Seconds, s.Frames))
	row("peak", fmt.Sprintf("%.1f dBFS", s.Peak))
	row("rms", fmt.Sprintf("%.1f dBFS", s.RMS))
	if s.Clipped > 0 {
		row("clipped", warnStyle.Render(fmt.Sprintf("%d samples", s.Clipped)))
	}
	for i, l := range s.BandLevels {
		row(bandName(octaves[i]), levelBar(l)+dimStyle.Render(fmt.Sprintf(" %.0f dB", l)))
	}
	return boxStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func bandName(f float64) string {
	if f >= 1000 {
		return fmt.Sprintf("%gk", f/1000)
	}
	return fmt.Sprintf("%g", math.Round(f))
}

// levelBar draws a level from -60 to 0 dB.
func levelBar(db float64) string {
	const width = 30
	n := int(math.Round((db + 60) / 60 * width))
	n = max(0, min(width, n))
	return barStyle.Render(strings.Repeat("▇", n)) + strings.Repeat(" ", width-n)
}
