package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gtshell/internal/nav"
)

// DrawerView is the side menu listing every screen.
type DrawerView struct {
	list    list.Model
	width   int
	height  int
	Settled bool // false while the open/close transition is running
}

type drawerItem nav.Screen

func (d drawerItem) FilterValue() string { return nav.Screen(d).String() }
func (d drawerItem) Title() string       { return nav.Screen(d).String() }
func (d drawerItem) Description() string { return "" }

// Ensure DrawerView implements View.
var _ View = (*DrawerView)(nil)

// NewDrawerView creates a drawer of the given width.
func NewDrawerView(width int) *DrawerView {
	screens := nav.Screens()
	items := make([]list.Item, len(screens))
	for i, s := range screens {
		items[i] = drawerItem(s)
	}
	l := list.New(items, NewCompactListDelegate(), width-1, len(items))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &DrawerView{
		list:   l,
		width:  width,
		height: defaultHeight,
	}
}

// SetHeight sets the number of rows the drawer covers.
func (d *DrawerView) SetHeight(h int) {
	d.height = h
}

// Width returns the drawer width in columns, border included.
func (d *DrawerView) Width() int {
	return d.width
}

// Highlight moves the cursor to screen.
func (d *DrawerView) Highlight(screen nav.Screen) {
	for i, s := range nav.Screens() {
		if s == screen {
			d.list.Select(i)
			return
		}
	}
}

// Highlighted returns the screen under the cursor.
func (d *DrawerView) Highlighted() nav.Screen {
	if it, ok := d.list.SelectedItem().(drawerItem); ok {
		return nav.Screen(it)
	}
	return nav.Home
}

// Init implements View.
func (d *DrawerView) Init() tea.Cmd {
	return nil
}

// Update implements View. Enter selects the highlighted screen; dismissal
// keys are handled by the shell through the overlay.
func (d *DrawerView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		target := d.Highlighted()
		return d, func() tea.Msg { return SelectScreenMsg{Screen: target} }
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DrawerView) View() string {
	style := Styles.Drawer
	if !d.Settled {
		style = Styles.DrawerMoving
	}
	content := Styles.DrawerTitle.Render("Navigation") + "\n" + d.list.View()
	return style.Width(d.width - 1).Height(d.height).Render(content)
}
