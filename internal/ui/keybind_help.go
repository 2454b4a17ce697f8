package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gtshell/internal/nav"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// Shows the next level of the pending sequence, filtered by the active screen.
func RenderKeybindHelp(keyHandler *KeyHandler, screen nav.Screen) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, screen).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	prefix := keyHandler.Sequence()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	return Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings)
}
