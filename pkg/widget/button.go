package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
	"github.com/go-facet/facet/pkg/style"
)

// ButtonEvent reports a completed click on a button widget.
type ButtonEvent struct {
	Source WidgetID
}

// Button makes a widget clickable. A click is a press inside the
// widget's bounds followed by a release inside them; pressing inside
// and releasing outside cancels. The button also tracks a highlight
// flag driven by pointer enter and exit.
type Button struct {
	widgetID    WidgetID
	label       string
	style       style.ButtonStyle
	pressed     bool
	highlighted bool

	clickHandlers Handlers[ButtonEvent]
}

// AddButton decorates the widget with a button. It chains in the
// spatial, mouse button and mouse over capabilities when missing, sets
// the preferred size, and installs the press and highlight behavior.
func (b *Builder) AddButton(label string, st style.ButtonStyle, size geometry.Size) error {
	has, err := b.HasButton()
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if err := b.AddSpatial(); err != nil {
		return err
	}
	if err := b.AddMouseButtonTarget(); err != nil {
		return err
	}
	if err := b.AddMouseOverTarget(); err != nil {
		return err
	}
	if err := attach(b, "widget.Builder.AddButton", &b.manager.buttons,
		func(r *widgetRecord) *ComponentID { return &r.button },
		Button{widgetID: b.widgetID, label: label, style: st}); err != nil {
		return err
	}
	s, err := b.manager.Spatial(b.widgetID)
	if err != nil {
		return err
	}
	s.Resize(size)
	target, err := b.manager.MouseButtonTarget(b.widgetID)
	if err != nil {
		return err
	}
	target.AddHandler(HandlerFunc[MouseButtonEvent](trackButtonPress))
	over, err := b.manager.MouseOverTarget(b.widgetID)
	if err != nil {
		return err
	}
	over.AddHandler(HandlerFunc[MouseOverEvent](highlightButton))
	return nil
}

// Widget returns the owning widget.
func (btn *Button) Widget() WidgetID {
	return btn.widgetID
}

// Label returns the button's label text.
func (btn *Button) Label() string {
	return btn.label
}

// SetLabel replaces the label text. The preferred size is not adjusted;
// callers that size buttons from their labels should resize the spatial
// component as well.
func (btn *Button) SetLabel(label string) {
	btn.label = label
}

// Style returns the button's style.
func (btn *Button) Style() style.ButtonStyle {
	return btn.style
}

// Pressed reports whether a press started inside the bounds and has not
// been released yet.
func (btn *Button) Pressed() bool {
	return btn.pressed
}

// Highlighted reports whether the pointer is over the button.
func (btn *Button) Highlighted() bool {
	return btn.highlighted
}

// AddClickHandler registers a handler for completed clicks.
func (btn *Button) AddClickHandler(h Handler[ButtonEvent]) HandlerID {
	return btn.clickHandlers.Add(h)
}

// RemoveClickHandler unregisters a click handler.
func (btn *Button) RemoveClickHandler(id HandlerID) error {
	return btn.clickHandlers.Remove(id)
}

func buttonClickHandlers(ctx *Context) (*Handlers[ButtonEvent], error) {
	btn, err := ctx.Button(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &btn.clickHandlers, nil
}

// trackButtonPress arms the button on a press inside its bounds and
// decides on release whether the gesture was a click. A release always
// disarms; only a release inside the bounds notifies click handlers.
func trackButtonPress(event *MouseButtonEvent, ctx *Context) error {
	id := ctx.WidgetID()
	s, err := ctx.Spatial(id)
	if err != nil {
		return err
	}
	inside := s.Bounds().Contains(event.Position)
	btn, err := ctx.Button(id)
	if err != nil {
		return err
	}
	switch event.Kind {
	case MousePressed:
		if inside {
			btn.pressed = true
			ctx.manager.emitInteraction(InteractionEvent{Type: InteractionPress, Widget: id, Position: event.Position, Button: event.Button})
		}
	case MouseReleased:
		if !btn.pressed {
			return nil
		}
		btn.pressed = false
		ctx.manager.emitInteraction(InteractionEvent{Type: InteractionRelease, Widget: id, Position: event.Position, Button: event.Button})
		if inside {
			btn.clickHandlers.notify(ctx, id, buttonClickHandlers, &ButtonEvent{Source: id})
			ctx.manager.emitInteraction(InteractionEvent{Type: InteractionClick, Widget: id, Position: event.Position, Button: event.Button})
		}
	}
	return nil
}

// highlightButton mirrors pointer enter and exit into the button's
// highlight flag.
func highlightButton(event *MouseOverEvent, ctx *Context) error {
	btn, err := ctx.Button(ctx.WidgetID())
	if err != nil {
		return err
	}
	btn.highlighted = event.Kind == MouseEntered
	return nil
}
