package widget

import (
	"github.com/go-facet/facet/pkg/arena"
	"github.com/go-facet/facet/pkg/errors"
)

// HandlerID identifies a handler within one registry. IDs are recycled
// after removal, so a stale ID may later refer to a different handler;
// callers should treat a returned ID as valid only until they remove it.
type HandlerID int

// Handler reacts to events of type E. Handlers run during scheduler
// execution with the context bound to the widget that owns the
// registry, one action per registered handler per notification.
type Handler[E any] interface {
	HandleEvent(event *E, ctx *Context) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[E any] func(event *E, ctx *Context) error

func (f HandlerFunc[E]) HandleEvent(event *E, ctx *Context) error {
	return f(event, ctx)
}

// resolver re-locates a handler registry at execution time. Event
// actions never hold the registry itself, only the path back to it, so
// a registry that disappears between scheduling and execution turns the
// pending notifications into no-ops instead of dangling references.
type resolver[E any] func(ctx *Context) (*Handlers[E], error)

// Handlers is a registry of handlers for one event type, owned by a
// component. Registration returns an ID used for removal; notification
// schedules one deferred action per registered handler.
type Handlers[E any] struct {
	reg arena.Arena[Handler[E]]
}

// Add registers a handler and returns its ID.
func (h *Handlers[E]) Add(handler Handler[E]) HandlerID {
	return HandlerID(h.reg.Insert(handler))
}

// Remove unregisters the handler with the given ID. It fails with a
// no-handler error when the ID is not registered.
func (h *Handlers[E]) Remove(id HandlerID) error {
	if _, ok := h.reg.Remove(arena.ID(id)); !ok {
		return errors.New("widget.Handlers.Remove", errors.KindNoHandler)
	}
	return nil
}

// Len reports the number of registered handlers.
func (h *Handlers[E]) Len() int {
	return h.reg.Count()
}

// notify schedules one event action per registered handler, targeted at
// the owning widget. All actions share the event value; handlers must
// treat it as read-only.
func (h *Handlers[E]) notify(ctx *Context, owner WidgetID, resolve resolver[E], event *E) {
	for id := range h.reg.IDs() {
		ctx.manager.sched.schedule(scheduledAction{
			source: ctx.widgetID,
			target: owner,
			action: &eventAction[E]{handler: HandlerID(id), resolve: resolve, event: event},
		})
	}
}

// eventAction delivers one event to one handler. It stores the handler
// ID rather than the handler, and re-resolves the registry through the
// context when it runs: if the owning widget, the component, or the
// handler itself has been removed in the meantime the delivery is
// silently dropped.
type eventAction[E any] struct {
	handler HandlerID
	resolve resolver[E]
	event   *E
}

func (a *eventAction[E]) Execute(ctx *Context) error {
	handlers, err := a.resolve(ctx)
	if err != nil {
		return nil
	}
	entry, ok := handlers.reg.Get(arena.ID(a.handler))
	if !ok {
		return nil
	}
	return (*entry).HandleEvent(a.event, ctx)
}
