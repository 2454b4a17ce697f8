// Package nav holds the shell's navigation state: the closed set of screens
// and an observable container for the one that is currently active.
package nav

// Screen identifies one of the shell's navigational destinations.
// The zero value is Home.
type Screen int

const (
	Home Screen = iota
	Settings
	Profile
)

// screens is the fixed drawer and tab order.
var screens = [...]Screen{Home, Settings, Profile}

// Screens returns every screen in display order.
func Screens() []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens[:])
	return out
}

func (s Screen) String() string {
	switch s {
	case Home:
		return "Home"
	case Settings:
		return "Settings"
	case Profile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// index returns the position of s in display order, or -1.
func (s Screen) index() int {
	for i, o := range screens {
		if o == s {
			return i
		}
	}
	return -1
}

// Next returns the screen after s in display order, wrapping at the end.
func (s Screen) Next() Screen {
	return s.step(1)
}

// Prev returns the screen before s, wrapping at the start.
func (s Screen) Prev() Screen {
	return s.step(-1)
}

func (s Screen) step(delta int) Screen {
	n := len(screens)
	idx := s.index()
	if idx < 0 {
		return Home
	}
	return screens[((idx+delta)%n+n)%n]
}
