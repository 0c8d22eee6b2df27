package widget

import (
	"github.com/go-facet/facet/pkg/arena"
	"github.com/go-facet/facet/pkg/errors"
)

// Builder decorates one widget with capabilities. Decoration is
// idempotent: adding a capability the widget already has leaves the
// existing component untouched, so prerequisite chains can be declared
// without checking first.
//
// Builders stay usable after the initial construction; Manager.Build
// returns one for an existing widget so capabilities can be layered on
// later.
type Builder struct {
	manager  *Manager
	widgetID WidgetID
}

// WidgetID returns the widget under construction.
func (b *Builder) WidgetID() WidgetID {
	return b.widgetID
}

// Manager returns the manager the widget belongs to.
func (b *Builder) Manager() *Manager {
	return b.manager
}

// has reports whether the capability slot selected by field is filled.
func (b *Builder) has(op string, field func(*widgetRecord) ComponentID) (bool, error) {
	rec, ok := b.manager.widgets.Get(arena.ID(b.widgetID))
	if !ok {
		return false, errors.New(op, errors.KindNoWidget)
	}
	return field(rec) != noComponent, nil
}

// attach stores a component and records it in the widget's capability
// slot. It is a no-op when the slot is already filled.
func attach[C any](b *Builder, op string, store *arena.Arena[C], field func(*widgetRecord) *ComponentID, component C) error {
	rec, ok := b.manager.widgets.Get(arena.ID(b.widgetID))
	if !ok {
		return errors.New(op, errors.KindNoWidget)
	}
	slot := field(rec)
	if *slot != noComponent {
		return nil
	}
	*slot = ComponentID(store.Insert(component))
	return nil
}

// HasSpatial reports whether the widget has a spatial component.
func (b *Builder) HasSpatial() (bool, error) {
	return b.has("widget.Builder.HasSpatial", func(r *widgetRecord) ComponentID { return r.spatial })
}

// HasMouseButtonTarget reports whether the widget has a mouse button
// target.
func (b *Builder) HasMouseButtonTarget() (bool, error) {
	return b.has("widget.Builder.HasMouseButtonTarget", func(r *widgetRecord) ComponentID { return r.mouseButton })
}

// HasMouseMotionTarget reports whether the widget has a mouse motion
// target.
func (b *Builder) HasMouseMotionTarget() (bool, error) {
	return b.has("widget.Builder.HasMouseMotionTarget", func(r *widgetRecord) ComponentID { return r.mouseMotion })
}

// HasMouseOverTarget reports whether the widget has a mouse over
// target.
func (b *Builder) HasMouseOverTarget() (bool, error) {
	return b.has("widget.Builder.HasMouseOverTarget", func(r *widgetRecord) ComponentID { return r.mouseOver })
}

// HasButton reports whether the widget has a button component.
func (b *Builder) HasButton() (bool, error) {
	return b.has("widget.Builder.HasButton", func(r *widgetRecord) ComponentID { return r.button })
}

// HasContainer reports whether the widget has a container component.
func (b *Builder) HasContainer() (bool, error) {
	return b.has("widget.Builder.HasContainer", func(r *widgetRecord) ComponentID { return r.container })
}

// HasDialog reports whether the widget has a dialog component.
func (b *Builder) HasDialog() (bool, error) {
	return b.has("widget.Builder.HasDialog", func(r *widgetRecord) ComponentID { return r.dialog })
}
