package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gtshell/internal/nav"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ScreenFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindOn("SPC i", tea.Quit, "Instagram", []nav.Screen{nav.Home})

	if reg.LookupOn("SPC i", nav.Home) == nil {
		t.Error("expected SPC i on Home")
	}
	if reg.LookupOn("SPC i", nav.Settings) != nil {
		t.Error("expected SPC i to be inactive on Settings")
	}
	if reg.Lookup("SPC i") == nil {
		t.Error("Lookup ignores screen filters")
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	home := reg.LeaderHints("", nav.Home)
	if home["h"] != "Home" || home["s"] != "Settings" || home["p"] != "Profile" {
		t.Errorf("unexpected screen hints: %v", home)
	}
	if home["i"] != "Instagram" || home["f"] != "Facebook" {
		t.Errorf("expected social hints on Home: %v", home)
	}

	settings := reg.LeaderHints("", nav.Settings)
	if _, ok := settings["i"]; ok {
		t.Errorf("social hints should be hidden on Settings: %v", settings)
	}
}

func TestKeybindRegistry_LeaderHintsSubmenu(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("SPC g h", tea.Quit, "Go home")

	hints := reg.LeaderHints("", nav.Home)
	if hints["g"] != "g…" {
		t.Errorf("expected submenu marker for g, got %q", hints["g"])
	}
	next := reg.LeaderHints("SPC g", nav.Home)
	if next["h"] != "Go home" {
		t.Errorf("expected next-level hint, got %v", next)
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "), nav.Home)
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}
	if h.Sequence() != "SPC" {
		t.Errorf("expected pending sequence SPC, got %q", h.Sequence())
	}

	consumed, cmd = h.Handle(keyMsg("x"), nav.Home)
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_LeaderRespectsScreen(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindOn("SPC i", tea.Quit, "Instagram", []nav.Screen{nav.Home})
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), nav.Profile)
	consumed, cmd := h.Handle(keyMsg("i"), nav.Profile)
	if !consumed || cmd != nil {
		t.Errorf("SPC i on Profile: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("unmatched sequence should leave leader mode")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "), nav.Home)
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"), nav.Home)
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), nav.Home)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"), nav.Home)
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "), nav.Home)

	out := RenderKeybindHelp(h, nav.Home)
	for _, want := range []string{"SPC", "Home", "Settings", "Profile", "cancel"} {
		if !containsText(out, want) {
			t.Errorf("help bar missing %q: %q", want, out)
		}
	}
	if RenderKeybindHelp(nil, nav.Home) != "" {
		t.Error("nil handler renders nothing")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
