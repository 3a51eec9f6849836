package radio

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8cf"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f55"))
)

const barWidth = 40

type progressMsg struct{ done, total int }
type finishedMsg struct{ err error }

type progressModel struct {
	title       string
	done, total int
	err         error
	finished    bool
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total = msg.done, msg.total
	case finishedMsg:
		m.finished, m.err = true, msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	n := int(frac * barWidth)
	bar := barStyle.Render(strings.Repeat("█", n)) + dimStyle.Render(strings.Repeat("░", barWidth-n))
	s := fmt.Sprintf("%s %s %3.0f%%", titleStyle.Render(m.title), bar, 100*frac)
	if m.err != nil {
		s += " " + errStyle.Render(m.err.Error())
	}
	return s + "\n"
}

// progressView shows a progress bar while a render runs.
type progressView struct {
	p    *tea.Program
	done chan struct{}
}

func startProgress(title string, out io.Writer) *progressView {
	v := &progressView{
		p:    tea.NewProgram(progressModel{title: title}, tea.WithOutput(out), tea.WithInput(nil)),
		done: make(chan struct{}),
	}
	go func() {
		defer close(v.done)
		if _, err := v.p.Run(); err != nil {
			slog.Warn("progress view", "err", err)
		}
	}()
	return v
}

func (v *progressView) Update(done, total int) { v.p.Send(progressMsg{done, total}) }

// Finish stops the view and waits for it to restore the terminal.
func (v *progressView) Finish(err error) {
	v.p.Send(finishedMsg{err})
	<-v.done
}
