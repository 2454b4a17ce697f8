package ui

import (
	"gtshell/internal/content"
	"gtshell/internal/nav"
)

// SelectScreenMsg asks the shell to make Screen active (drawer entry, SPC h/s/p).
type SelectScreenMsg struct {
	Screen nav.Screen
}

// CycleScreenMsg moves to the neighbouring screen (tab / shift+tab).
type CycleScreenMsg struct {
	Delta int // +1 next, -1 previous
}

// ToggleDrawerMsg opens the drawer when closed and closes it when open.
type ToggleDrawerMsg struct{}

// CloseDrawerMsg closes the drawer if it is open.
type CloseDrawerMsg struct{}

// DrawerSettledMsg marks the end of a drawer open/close transition.
// Seq ties it to the toggle that started it; stale ones are ignored.
type DrawerSettledMsg struct {
	Seq  int
	Open bool
}

// FadeTickMsg advances the screen cross-fade by one frame.
type FadeTickMsg struct {
	Seq int
}

// SocialLinkMsg is sent when a follow-us button is pressed.
type SocialLinkMsg struct {
	Link content.SocialLink
}
