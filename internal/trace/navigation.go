package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"gtshell/internal/nav"
)

const instrumentationName = "gtshell/ui"

// Span names.
const (
	SpanNavigate = "navigate"
	SpanDrawer   = "drawer"
)

// Attribute keys.
const (
	AttrSession = "gtshell.session.id"
	AttrFrom    = "gtshell.screen.from"
	AttrTo      = "gtshell.screen.to"
	AttrOpen    = "gtshell.drawer.open"
)

// Navigation records one span per screen change or drawer toggle, tagged
// with a per-process UI session id.
type Navigation struct {
	tracer    oteltrace.Tracer
	sessionID string
}

// NewNavigation returns a recorder on the given provider. A nil provider
// records nothing.
func NewNavigation(p *Provider) *Navigation {
	return &Navigation{
		tracer:    p.TracerProvider().Tracer(instrumentationName),
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the id attached to every span.
func (n *Navigation) SessionID() string {
	return n.sessionID
}

// Screen records a change of the active screen.
func (n *Navigation) Screen(ctx context.Context, from, to nav.Screen) {
	if n == nil {
		return
	}
	_, span := n.tracer.Start(ctx, SpanNavigate, oteltrace.WithAttributes(
		attribute.String(AttrSession, n.sessionID),
		attribute.String(AttrFrom, from.String()),
		attribute.String(AttrTo, to.String()),
	))
	span.End()
}

// Drawer records the drawer opening or closing.
func (n *Navigation) Drawer(ctx context.Context, open bool) {
	if n == nil {
		return
	}
	_, span := n.tracer.Start(ctx, SpanDrawer, oteltrace.WithAttributes(
		attribute.String(AttrSession, n.sessionID),
		attribute.Bool(AttrOpen, open),
	))
	span.End()
}
