package ui

import (
	"context"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gtshell/internal/config"
	"gtshell/internal/content"
	"gtshell/internal/nav"
	"gtshell/internal/trace"
)

// Size used until the first tea.WindowSizeMsg arrives (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 20
)

// drawerSlide is how long the drawer takes to open or close.
const drawerSlide = 150 * time.Millisecond

// AppModel is the navigation shell: top bar, drawer overlay and exactly one
// screen panel chosen by Nav.
type AppModel struct {
	Nav        *nav.State
	Panels     map[nav.Screen]View
	Drawer     *DrawerView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Tracer     *trace.Navigation
	Config     config.Config

	Width  int
	Height int

	fade      fade
	drawerSeq int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the shell positioned on Home with the drawer closed.
// A nil tracer records nothing.
func NewAppModel(cfg config.Config, tracer *trace.Navigation) *AppModel {
	a := &AppModel{
		Nav: nav.New(),
		Panels: map[nav.Screen]View{
			nav.Home:     NewHomeView(),
			nav.Settings: NewSettingsView(),
			nav.Profile:  NewProfileView(),
		},
		Drawer:     NewDrawerView(cfg.DrawerWidth),
		KeyHandler: NewKeyHandler(NewKeybindRegistry()),
		Tracer:     tracer,
		Config:     cfg,
		fade:       doneFade(),
	}
	registerKeybinds(a.KeyHandler.Registry)
	if home, ok := a.Panels[nav.Home].(*HomeView); ok {
		// Home is always entered at the top with the first button focused.
		a.Nav.OnExit(nav.Home, home.ResetFocus)
		a.Nav.OnEnter(nav.Home, home.ScrollTop)
	}
	a.Nav.Subscribe(func(from, to nav.Screen) {
		log.Printf("ui.navigate: %s -> %s", from, to)
		a.Tracer.Screen(context.Background(), from, to)
	})
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// CurrentScreen returns the active screen.
func (a *AppModel) CurrentScreen() nav.Screen {
	return a.Nav.Current()
}

// DrawerOpen reports whether the drawer overlay is showing.
func (a *AppModel) DrawerOpen() bool {
	return a.Overlays.Contains(a.Drawer)
}

// SelectScreen makes target the active screen and closes the drawer if it is open.
// Selecting the active screen changes nothing besides closing the drawer.
func (a *AppModel) SelectScreen(target nav.Screen) tea.Cmd {
	var cmds []tea.Cmd
	if a.DrawerOpen() {
		cmds = append(cmds, a.closeDrawer())
	}
	if a.Nav.Select(target) {
		if a.Config.Fade {
			cmds = append(cmds, a.fade.start())
		}
		if p, ok := a.Panels[target]; ok {
			cmds = append(cmds, p.Init())
		}
	}
	return tea.Batch(cmds...)
}

// ToggleDrawer opens the drawer when closed and closes it when open.
// The returned command settles the transition; it cannot fail.
func (a *AppModel) ToggleDrawer() tea.Cmd {
	if a.DrawerOpen() {
		return a.closeDrawer()
	}
	return a.openDrawer()
}

func (a *AppModel) openDrawer() tea.Cmd {
	a.Drawer.Highlight(a.Nav.Current())
	a.Overlays.Push(Overlay{View: a.Drawer, Dismiss: []string{"esc", "m"}})
	return a.drawerTransition(true)
}

func (a *AppModel) closeDrawer() tea.Cmd {
	a.Overlays.Remove(a.Drawer)
	return a.drawerTransition(false)
}

func (a *AppModel) drawerTransition(open bool) tea.Cmd {
	a.drawerSeq++
	a.Drawer.Settled = false
	a.Tracer.Drawer(context.Background(), open)
	seq := a.drawerSeq
	return tea.Tick(drawerSlide, func(time.Time) tea.Msg {
		return DrawerSettledMsg{Seq: seq, Open: open}
	})
}

// pressSocialLink is the follow-us button handler. The links have no
// destination, so this only logs.
func (a *AppModel) pressSocialLink(link content.SocialLink) tea.Cmd {
	log.Printf("ui.pressSocialLink: %s has no destination", link.Name)
	return nil
}

func (a *AppModel) currentPanel() View {
	return a.Panels[a.Nav.Current()]
}

// bodySize returns the space left for panels between the bars.
func (a *AppModel) bodySize() (int, int) {
	w, h := a.Width, a.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight + a.chromeHeight()
	}
	h -= a.chromeHeight()
	if h < 1 {
		h = 1
	}
	return w, h
}

// chromeHeight is the rows taken by top bar, status line and optional bottom bar.
func (a *AppModel) chromeHeight() int {
	n := 2
	if a.Config.BottomBar {
		n++
	}
	return n
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(a.Config.Title), a.currentPanel().Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.resize(msg)
	case SelectScreenMsg:
		return a, a.SelectScreen(msg.Screen)
	case CycleScreenMsg:
		target := a.Nav.Current().Next()
		if msg.Delta < 0 {
			target = a.Nav.Current().Prev()
		}
		return a, a.SelectScreen(target)
	case ToggleDrawerMsg:
		return a, a.ToggleDrawer()
	case CloseDrawerMsg:
		if a.DrawerOpen() {
			return a, a.closeDrawer()
		}
		return a, nil
	case DrawerSettledMsg:
		if msg.Seq == a.drawerSeq {
			a.Drawer.Settled = true
		}
		return a, nil
	case FadeTickMsg:
		return a, a.fade.advance(msg)
	case SocialLinkMsg:
		return a, a.pressSocialLink(msg.Link)
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			return a, a.handleOverlayKey(top, msg)
		}
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Nav.Current()); consumed {
			return a, cmd
		}
	}

	screen := a.Nav.Current()
	v, cmd := a.currentPanel().Update(msg)
	a.Panels[screen] = v
	return a, cmd
}

// handleOverlayKey routes keys while the drawer is open; it receives input first.
func (a *appModelAdapter) handleOverlayKey(top Overlay, msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	if top.IsDismissKey(s) {
		a.Overlays.Pop()
		if top.View == a.Drawer {
			return a.drawerTransition(false)
		}
		return nil
	}
	cmd, _ := a.Overlays.UpdateTop(msg)
	return cmd
}

func (a *appModelAdapter) resize(msg tea.WindowSizeMsg) tea.Cmd {
	a.Width = msg.Width
	a.Height = msg.Height
	w, h := a.bodySize()
	a.Drawer.SetHeight(h)
	body := tea.WindowSizeMsg{Width: w, Height: h}
	var cmds []tea.Cmd
	for s, p := range a.Panels {
		v, cmd := p.Update(body)
		a.Panels[s] = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	w, h := a.bodySize()
	screen := a.Nav.Current()

	body := a.fade.render(a.currentPanel().View())
	body = lipgloss.NewStyle().Width(w).Height(h).MaxWidth(w).MaxHeight(h).Render(body)
	if a.DrawerOpen() {
		body = overlayLeft(body, a.Drawer.View(), a.Drawer.Width(), w)
	}

	parts := []string{RenderTopBar(a.Config.Title, screen, w), body}
	if a.Config.BottomBar {
		parts = append(parts, RenderBottomBar(screen, w))
	}
	parts = append(parts, a.statusLine(screen, w))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *AppModel) statusLine(screen nav.Screen, width int) string {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return ansi.Truncate(RenderKeybindHelp(a.KeyHandler, screen), width, "…")
	}
	hint := "m: menu  tab: next screen  SPC: commands  q: quit"
	if a.DrawerOpen() {
		hint = "j/k: move  enter: open  esc: close"
	} else if screen == nav.Home {
		hint = "←/→: choose button  enter: press  " + hint
	}
	return Styles.Hint.Render(ansi.Truncate(hint, width, "…"))
}

// overlayLeft draws top, topWidth columns wide, over the left edge of base.
func overlayLeft(base, top string, topWidth, width int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i := range baseLines {
		if i >= len(topLines) {
			break
		}
		if topWidth >= width {
			baseLines[i] = ansi.Truncate(topLines[i], width, "")
			continue
		}
		baseLines[i] = topLines[i] + ansi.TruncateLeft(baseLines[i], topWidth, "")
	}
	return strings.Join(baseLines, "\n")
}
