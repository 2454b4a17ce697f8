package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const fadeFrameInterval = 40 * time.Millisecond

// fadeRamp is the foreground used for each frame while a panel fades in.
var fadeRamp = []string{"236", "239", "242", "245", "248", "251"}

// fade tracks the cross-fade of the active panel. Only the incoming panel is
// drawn; it brightens from the first ramp color to its normal styling.
type fade struct {
	seq   int
	frame int
}

func doneFade() fade {
	return fade{frame: len(fadeRamp)}
}

// Active reports whether a fade is still running.
func (f fade) Active() bool {
	return f.frame < len(fadeRamp)
}

// start begins a new fade and returns the first tick.
func (f *fade) start() tea.Cmd {
	f.seq++
	f.frame = 0
	return fadeTick(f.seq)
}

// advance moves one frame on a matching tick and returns the next tick, if any.
func (f *fade) advance(msg FadeTickMsg) tea.Cmd {
	if msg.Seq != f.seq || !f.Active() {
		return nil
	}
	f.frame++
	if !f.Active() {
		return nil
	}
	return fadeTick(f.seq)
}

// render applies the current frame's color to s.
func (f fade) render(s string) string {
	if !f.Active() {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fadeRamp[f.frame])).Render(s)
}

func fadeTick(seq int) tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(time.Time) tea.Msg {
		return FadeTickMsg{Seq: seq}
	})
}
