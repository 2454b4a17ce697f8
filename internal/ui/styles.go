package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorBar       = "237" // Dark gray - top and bottom bar background
	ColorDrawer    = "236" // Drawer background
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	TopBar       lipgloss.Style // Title bar across the top
	TopBarTitle  lipgloss.Style
	BottomBar    lipgloss.Style // Tab bar across the bottom
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Drawer       lipgloss.Style // Side menu once settled
	DrawerMoving lipgloss.Style // Side menu while opening or closing
	DrawerTitle  lipgloss.Style
	Card         lipgloss.Style // Home screen card
	CardTitle    lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	Label        lipgloss.Style // Centered label of placeholder screens
	Selected     lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted        lipgloss.Style // Dimmed text (muted color)
	Hint         lipgloss.Style // Help/hint text (muted color)
}{
	TopBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color("255")),
	TopBarTitle: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color("255")).
		Bold(true),
	BottomBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)),
	Tab: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Drawer: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorDrawer)).
		Foreground(lipgloss.Color("255")).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	DrawerMoving: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorDrawer)).
		Foreground(lipgloss.Color(ColorMuted)).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorMuted)),
	DrawerTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Padding(1, 2),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorBar)).
		Padding(0, 2),
	ButtonFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 2),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected.PaddingLeft(2)
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted.PaddingLeft(2)
	d.Styles.NormalDesc = Styles.Muted
	return d
}
