package ui

import (
	"github.com/charmbracelet/lipgloss"

	"gtshell/internal/nav"
	"gtshell/internal/ui/textutil"
)

// RenderTopBar renders the title bar: menu icon and title on the left, the
// active screen on the right. The title is cut before the screen name is.
func RenderTopBar(title string, screen nav.Screen, width int) string {
	left, gap, right := textutil.Spread(" ☰  "+title, screen.String()+" ", width)
	return Styles.TopBarTitle.Render(left) + Styles.TopBar.Render(gap) + Styles.TopBar.Render(right)
}

// RenderBottomBar renders one tab per screen with the active one highlighted.
func RenderBottomBar(screen nav.Screen, width int) string {
	tabs := make([]string, 0, len(nav.Screens()))
	for _, s := range nav.Screens() {
		style := Styles.Tab
		if s == screen {
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return Styles.BottomBar.Width(width).Align(lipgloss.Center).Render(row)
}
