package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gtshell/internal/content"
)

const maxCardWidth = 60

// HomeView shows the three information cards in a scrollable viewport.
type HomeView struct {
	viewport viewport.Model
	Focus    *FocusManager
	links    []content.SocialLink
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the Home panel. Left/right move between the social
// buttons; enter presses the focused one.
func NewHomeView() *HomeView {
	links := content.SocialLinks()
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.Name
	}
	h := &HomeView{
		viewport: viewport.New(defaultWidth, defaultHeight),
		Focus:    NewFocusManager(ids...),
		links:    links,
	}
	h.refresh()
	return h
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.viewport.Width = msg.Width
		h.viewport.Height = msg.Height
		h.refresh()
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			h.Focus.Prev()
			h.refresh()
			return h, nil
		case "right":
			h.Focus.Next()
			h.refresh()
			return h, nil
		case "enter":
			if link, ok := h.focusedLink(); ok {
				return h, func() tea.Msg { return SocialLinkMsg{Link: link} }
			}
			return h, nil
		}
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HomeView) View() string {
	return h.viewport.View()
}

// ResetFocus puts focus back on the first button.
func (h *HomeView) ResetFocus() {
	if len(h.Focus.Order) > 0 {
		h.Focus.SetFocus(h.Focus.Order[0])
	}
	h.refresh()
}

// ScrollTop scrolls back to the first card.
func (h *HomeView) ScrollTop() {
	h.viewport.GotoTop()
}

func (h *HomeView) focusedLink() (content.SocialLink, bool) {
	for _, l := range h.links {
		if l.Name == h.Focus.Current {
			return l, true
		}
	}
	return content.SocialLink{}, false
}

// refresh re-renders the cards into the viewport, keeping the scroll offset.
func (h *HomeView) refresh() {
	width := h.viewport.Width
	cardWidth := width - 4
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	prayer := content.Ramadan()
	cards := []string{
		renderCard(content.EventsTitle, strings.Join(content.UpcomingEvents(), "\n"), cardWidth),
		renderCard(content.RamadanTitle, fmt.Sprintf("Imsak: %s\nAksam: %s", prayer.Imsak, prayer.Aksam), cardWidth),
		renderCard(content.FollowTitle, h.renderButtons(), cardWidth),
	}
	body := lipgloss.JoinVertical(lipgloss.Center, cards...)
	h.viewport.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
}

func (h *HomeView) renderButtons() string {
	buttons := make([]string, 0, len(h.links))
	for _, l := range h.links {
		style := Styles.Button
		if l.Name == h.Focus.Current {
			style = Styles.ButtonFocus
		}
		buttons = append(buttons, style.Render(l.Name))
	}
	return strings.Join(buttons, "\n\n")
}

func renderCard(title, body string, width int) string {
	inner := Styles.CardTitle.Render(title) + "\n\n" + body
	// Width includes padding but not the border.
	return Styles.Card.Width(width - 2).Render(inner)
}
