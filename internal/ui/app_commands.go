package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gtshell/internal/content"
	"gtshell/internal/nav"
)

// selectCmd returns a command that asks the shell to show screen.
func selectCmd(screen nav.Screen) tea.Cmd {
	return func() tea.Msg { return SelectScreenMsg{Screen: screen} }
}

func toggleDrawerCmd() tea.Msg { return ToggleDrawerMsg{} }

func socialCmd(link content.SocialLink) tea.Cmd {
	return func() tea.Msg { return SocialLinkMsg{Link: link} }
}

func cycleCmd(delta int) tea.Cmd {
	return func() tea.Msg { return CycleScreenMsg{Delta: delta} }
}

// registerKeybinds installs the shell's global bindings.
func registerKeybinds(reg *KeybindRegistry) {
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.BindWithDesc("m", toggleDrawerCmd, "Menu")
	reg.BindWithDesc("SPC m", toggleDrawerCmd, "Menu")

	reg.BindWithDesc("tab", cycleCmd(1), "Next screen")
	reg.BindWithDesc("shift+tab", cycleCmd(-1), "Previous screen")

	reg.BindWithDesc("SPC h", selectCmd(nav.Home), "Home")
	reg.BindWithDesc("SPC s", selectCmd(nav.Settings), "Settings")
	reg.BindWithDesc("SPC p", selectCmd(nav.Profile), "Profile")

	// Follow-us shortcuts, only meaningful on Home.
	for _, link := range content.SocialLinks() {
		seq := "SPC " + strings.ToLower(link.Name[:1])
		reg.BindOn(seq, socialCmd(link), link.Name, []nav.Screen{nav.Home})
	}
}
