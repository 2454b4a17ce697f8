package ui

// FocusManager tracks and rotates focus across the buttons of a panel.
type FocusManager struct {
	Current  string   // ID of the focused element
	Order    []string // Rotation order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first id in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next element, wrapping.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous element, wrapping.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		// Unknown focus: Next lands on the first, Prev on the last.
		idx = 0
		if delta > 0 {
			idx = n - 1
		}
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
