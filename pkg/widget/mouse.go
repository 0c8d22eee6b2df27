package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// MouseButton identifies a physical mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// MouseButtonKind distinguishes press from release.
type MouseButtonKind int

const (
	MousePressed MouseButtonKind = iota
	MouseReleased
)

func (k MouseButtonKind) String() string {
	switch k {
	case MousePressed:
		return "pressed"
	case MouseReleased:
		return "released"
	default:
		return "unknown"
	}
}

// MouseButtonEvent reports a button press or release at a position in
// screen coordinates.
type MouseButtonEvent struct {
	Kind     MouseButtonKind
	Button   MouseButton
	Position geometry.Position
}

// MouseMotionEvent reports the pointer moving to a position in screen
// coordinates.
type MouseMotionEvent struct {
	Position geometry.Position
}

// MouseOverKind distinguishes the pointer entering a widget's bounds
// from leaving them.
type MouseOverKind int

const (
	MouseEntered MouseOverKind = iota
	MouseExited
)

func (k MouseOverKind) String() string {
	switch k {
	case MouseEntered:
		return "entered"
	case MouseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// MouseOverEvent reports the pointer crossing a widget's boundary.
type MouseOverEvent struct {
	Kind   MouseOverKind
	Source WidgetID
}

// mouseTarget is the shared shape of the button and motion targets: a
// handler registry bound to the owning widget.
type mouseTarget[E any] struct {
	widgetID WidgetID
	handlers Handlers[E]
}

// MouseButtonTarget lets a widget receive mouse button events.
type MouseButtonTarget struct {
	mouseTarget[MouseButtonEvent]
}

// MouseMotionTarget lets a widget receive mouse motion events.
type MouseMotionTarget struct {
	mouseTarget[MouseMotionEvent]
}

// AddMouseButtonTarget decorates the widget with a mouse button target,
// adding a spatial component first when missing.
func (b *Builder) AddMouseButtonTarget() error {
	if err := b.AddSpatial(); err != nil {
		return err
	}
	return attach(b, "widget.Builder.AddMouseButtonTarget", &b.manager.mouseButtons,
		func(r *widgetRecord) *ComponentID { return &r.mouseButton },
		MouseButtonTarget{mouseTarget[MouseButtonEvent]{widgetID: b.widgetID}})
}

// AddMouseMotionTarget decorates the widget with a mouse motion target,
// adding a spatial component first when missing.
func (b *Builder) AddMouseMotionTarget() error {
	if err := b.AddSpatial(); err != nil {
		return err
	}
	return attach(b, "widget.Builder.AddMouseMotionTarget", &b.manager.mouseMotions,
		func(r *widgetRecord) *ComponentID { return &r.mouseMotion },
		MouseMotionTarget{mouseTarget[MouseMotionEvent]{widgetID: b.widgetID}})
}

// Widget returns the owning widget.
func (t *MouseButtonTarget) Widget() WidgetID {
	return t.widgetID
}

// AddHandler registers a handler for mouse button events.
func (t *MouseButtonTarget) AddHandler(h Handler[MouseButtonEvent]) HandlerID {
	return t.handlers.Add(h)
}

// RemoveHandler unregisters a mouse button handler.
func (t *MouseButtonTarget) RemoveHandler(id HandlerID) error {
	return t.handlers.Remove(id)
}

// Notify schedules delivery of a mouse button event to every handler.
func (t *MouseButtonTarget) Notify(ctx *Context, event *MouseButtonEvent) {
	t.handlers.notify(ctx, t.widgetID, mouseButtonHandlers, event)
}

// Widget returns the owning widget.
func (t *MouseMotionTarget) Widget() WidgetID {
	return t.widgetID
}

// AddHandler registers a handler for mouse motion events.
func (t *MouseMotionTarget) AddHandler(h Handler[MouseMotionEvent]) HandlerID {
	return t.handlers.Add(h)
}

// RemoveHandler unregisters a mouse motion handler.
func (t *MouseMotionTarget) RemoveHandler(id HandlerID) error {
	return t.handlers.Remove(id)
}

// Notify schedules delivery of a mouse motion event to every handler.
func (t *MouseMotionTarget) Notify(ctx *Context, event *MouseMotionEvent) {
	t.handlers.notify(ctx, t.widgetID, mouseMotionHandlers, event)
}

func mouseButtonHandlers(ctx *Context) (*Handlers[MouseButtonEvent], error) {
	t, err := ctx.MouseButtonTarget(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &t.handlers, nil
}

func mouseMotionHandlers(ctx *Context) (*Handlers[MouseMotionEvent], error) {
	t, err := ctx.MouseMotionTarget(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &t.handlers, nil
}

// MouseOverTarget tracks whether the pointer is inside the widget's
// bounds and emits enter and exit events on transitions. The pointer
// starts outside.
type MouseOverTarget struct {
	widgetID WidgetID
	within   bool
	handlers Handlers[MouseOverEvent]
}

// AddMouseOverTarget decorates the widget with a mouse over target.
// It requires spatial and mouse motion capabilities and adds them when
// missing, then installs the hit test that drives enter and exit
// transitions.
func (b *Builder) AddMouseOverTarget() error {
	has, err := b.HasMouseOverTarget()
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if err := b.AddSpatial(); err != nil {
		return err
	}
	if err := b.AddMouseMotionTarget(); err != nil {
		return err
	}
	if err := attach(b, "widget.Builder.AddMouseOverTarget", &b.manager.mouseOvers,
		func(r *widgetRecord) *ComponentID { return &r.mouseOver },
		MouseOverTarget{widgetID: b.widgetID}); err != nil {
		return err
	}
	motion, err := b.manager.MouseMotionTarget(b.widgetID)
	if err != nil {
		return err
	}
	motion.AddHandler(HandlerFunc[MouseMotionEvent](checkMouseOver))
	return nil
}

// Widget returns the owning widget.
func (t *MouseOverTarget) Widget() WidgetID {
	return t.widgetID
}

// Within reports whether the pointer was inside the bounds at the last
// observed motion.
func (t *MouseOverTarget) Within() bool {
	return t.within
}

// AddHandler registers a handler for enter and exit events.
func (t *MouseOverTarget) AddHandler(h Handler[MouseOverEvent]) HandlerID {
	return t.handlers.Add(h)
}

// RemoveHandler unregisters a mouse over handler.
func (t *MouseOverTarget) RemoveHandler(id HandlerID) error {
	return t.handlers.Remove(id)
}

func mouseOverHandlers(ctx *Context) (*Handlers[MouseOverEvent], error) {
	t, err := ctx.MouseOverTarget(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &t.handlers, nil
}

// checkMouseOver compares each pointer position against the widget's
// bounds and notifies on edge transitions only; motion that stays on
// one side of the boundary is silent.
func checkMouseOver(event *MouseMotionEvent, ctx *Context) error {
	id := ctx.WidgetID()
	s, err := ctx.Spatial(id)
	if err != nil {
		return err
	}
	within := s.Bounds().Contains(event.Position)
	t, err := ctx.MouseOverTarget(id)
	if err != nil {
		return err
	}
	switch {
	case within && !t.within:
		t.handlers.notify(ctx, id, mouseOverHandlers, &MouseOverEvent{Kind: MouseEntered, Source: id})
		ctx.manager.emitInteraction(InteractionEvent{Type: InteractionEnter, Widget: id, Position: event.Position})
	case !within && t.within:
		t.handlers.notify(ctx, id, mouseOverHandlers, &MouseOverEvent{Kind: MouseExited, Source: id})
		ctx.manager.emitInteraction(InteractionEvent{Type: InteractionExit, Widget: id, Position: event.Position})
	}
	t.within = within
	return nil
}
