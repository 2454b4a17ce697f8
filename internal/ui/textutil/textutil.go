// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import "github.com/mattn/go-runewidth"

// TruncateEllipsis is appended when text is cut to fit.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// s must not contain ANSI escape codes.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Spread lays left and right out on one line of exactly width columns with
// at least one space between them. Left gives way first; right is cut only
// when it cannot fit on its own. It returns the (possibly cut) parts and the
// gap between them so callers can style each piece.
func Spread(left, right string, width int) (l, gap, r string) {
	if width <= 0 {
		return "", "", ""
	}
	r = Truncate(right, width)
	room := width - VisualWidth(r) - 1
	if room < 0 {
		room = 0
	}
	l = Truncate(left, room)
	fill := width - VisualWidth(l) - VisualWidth(r)
	if fill < 0 {
		fill = 0
	}
	return l, runewidth.FillRight("", fill), r
}
