package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// DialogEventKind distinguishes a dialog opening from being dismissed.
type DialogEventKind int

const (
	DialogOpened DialogEventKind = iota
	DialogDismissed
)

func (k DialogEventKind) String() string {
	switch k {
	case DialogOpened:
		return "opened"
	case DialogDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// DialogEvent reports a dialog visibility change.
type DialogEvent struct {
	Kind   DialogEventKind
	Source WidgetID
}

// Dialog makes a widget a titled, dismissable surface. It builds on the
// container capability, so dialog content is added through the widget's
// container. Dialogs start hidden.
type Dialog struct {
	widgetID WidgetID
	title    string
	visible  bool

	handlers Handlers[DialogEvent]
}

// AddDialog decorates the widget with a dialog, chaining in the spatial
// and container capabilities when missing.
func (b *Builder) AddDialog(title string, margins geometry.Margins) error {
	if err := b.AddContainer(margins); err != nil {
		return err
	}
	return attach(b, "widget.Builder.AddDialog", &b.manager.dialogs,
		func(r *widgetRecord) *ComponentID { return &r.dialog },
		Dialog{widgetID: b.widgetID, title: title})
}

// Widget returns the owning widget.
func (d *Dialog) Widget() WidgetID {
	return d.widgetID
}

// Title returns the dialog's title.
func (d *Dialog) Title() string {
	return d.title
}

// SetTitle replaces the dialog's title.
func (d *Dialog) SetTitle(title string) {
	d.title = title
}

// Visible reports whether the dialog is open.
func (d *Dialog) Visible() bool {
	return d.visible
}

// Open shows the dialog and notifies handlers. Opening an open dialog
// is a no-op.
func (d *Dialog) Open(ctx *Context) {
	if d.visible {
		return
	}
	d.visible = true
	d.handlers.notify(ctx, d.widgetID, dialogHandlers, &DialogEvent{Kind: DialogOpened, Source: d.widgetID})
}

// Dismiss hides the dialog and notifies handlers. Dismissing a hidden
// dialog is a no-op.
func (d *Dialog) Dismiss(ctx *Context) {
	if !d.visible {
		return
	}
	d.visible = false
	d.handlers.notify(ctx, d.widgetID, dialogHandlers, &DialogEvent{Kind: DialogDismissed, Source: d.widgetID})
}

// AddHandler registers a handler for visibility changes.
func (d *Dialog) AddHandler(h Handler[DialogEvent]) HandlerID {
	return d.handlers.Add(h)
}

// RemoveHandler unregisters a dialog handler.
func (d *Dialog) RemoveHandler(id HandlerID) error {
	return d.handlers.Remove(id)
}

func dialogHandlers(ctx *Context) (*Handlers[DialogEvent], error) {
	d, err := ctx.Dialog(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &d.handlers, nil
}
