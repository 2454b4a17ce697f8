package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gtshell/internal/content"
)

// LabelView is a screen panel that shows one centered label.
type LabelView struct {
	Label  string
	width  int
	height int
}

// Ensure LabelView implements View.
var _ View = (*LabelView)(nil)

// NewSettingsView returns the Settings panel.
func NewSettingsView() *LabelView {
	return &LabelView{Label: content.SettingsLabel, width: defaultWidth, height: defaultHeight}
}

// NewProfileView returns the Profile panel.
func NewProfileView() *LabelView {
	return &LabelView{Label: content.ProfileLabel, width: defaultWidth, height: defaultHeight}
}

// Init implements View.
func (v *LabelView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *LabelView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = msg.Width
		v.height = msg.Height
	}
	return v, nil
}

// View implements View.
func (v *LabelView) View() string {
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, Styles.Label.Render(v.Label))
}
