package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// MoveEvent reports that a widget's position changed.
type MoveEvent struct {
	Source   WidgetID
	Position geometry.Position
}

// ResizeEvent reports that a widget's preferred size changed.
type ResizeEvent struct {
	Source WidgetID
	Size   geometry.Size
}

// Spatial gives a widget a position, a preferred size, and the derived
// bounds. Position is the top-left corner in screen coordinates with y
// growing downward. Bounds are computed lazily and cached until the
// next position or size change.
type Spatial struct {
	widgetID      WidgetID
	position      geometry.Position
	preferredSize geometry.Size
	bounds        geometry.Bounds
	boundsDirty   bool

	moveHandlers   Handlers[MoveEvent]
	resizeHandlers Handlers[ResizeEvent]
}

// AddSpatial decorates the widget with a spatial component at the
// origin with zero size.
func (b *Builder) AddSpatial() error {
	return attach(b, "widget.Builder.AddSpatial", &b.manager.spatials,
		func(r *widgetRecord) *ComponentID { return &r.spatial },
		Spatial{widgetID: b.widgetID, boundsDirty: true})
}

// Widget returns the owning widget.
func (s *Spatial) Widget() WidgetID {
	return s.widgetID
}

// Position returns the current position.
func (s *Spatial) Position() geometry.Position {
	return s.position
}

// PreferredSize returns the current preferred size.
func (s *Spatial) PreferredSize() geometry.Size {
	return s.preferredSize
}

// Bounds returns the rectangle covered by the widget, recomputing it
// from position and preferred size when stale.
func (s *Spatial) Bounds() geometry.Bounds {
	if s.boundsDirty {
		s.bounds = geometry.BoundsAt(s.position, s.preferredSize)
		s.boundsDirty = false
	}
	return s.bounds
}

// SetPosition moves the widget and notifies move handlers.
func (s *Spatial) SetPosition(ctx *Context, position geometry.Position) {
	s.position = position
	s.boundsDirty = true
	s.moveHandlers.notify(ctx, s.widgetID, spatialMoveHandlers, &MoveEvent{Source: s.widgetID, Position: position})
}

// SetPreferredSize resizes the widget and notifies resize handlers.
func (s *Spatial) SetPreferredSize(ctx *Context, size geometry.Size) {
	s.preferredSize = size
	s.boundsDirty = true
	s.resizeHandlers.notify(ctx, s.widgetID, spatialResizeHandlers, &ResizeEvent{Source: s.widgetID, Size: size})
}

// Place sets the position without notifying handlers. It is meant for
// construction time, before the widget participates in layout; during
// execution use SetPosition so listeners observe the change.
func (s *Spatial) Place(position geometry.Position) {
	s.position = position
	s.boundsDirty = true
}

// Resize sets the preferred size without notifying handlers. Like
// Place it is meant for construction time.
func (s *Spatial) Resize(size geometry.Size) {
	s.preferredSize = size
	s.boundsDirty = true
}

// AddMoveHandler registers a handler for position changes.
func (s *Spatial) AddMoveHandler(h Handler[MoveEvent]) HandlerID {
	return s.moveHandlers.Add(h)
}

// RemoveMoveHandler unregisters a move handler.
func (s *Spatial) RemoveMoveHandler(id HandlerID) error {
	return s.moveHandlers.Remove(id)
}

// AddResizeHandler registers a handler for size changes.
func (s *Spatial) AddResizeHandler(h Handler[ResizeEvent]) HandlerID {
	return s.resizeHandlers.Add(h)
}

// RemoveResizeHandler unregisters a resize handler.
func (s *Spatial) RemoveResizeHandler(id HandlerID) error {
	return s.resizeHandlers.Remove(id)
}

func spatialMoveHandlers(ctx *Context) (*Handlers[MoveEvent], error) {
	s, err := ctx.Spatial(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &s.moveHandlers, nil
}

func spatialResizeHandlers(ctx *Context) (*Handlers[ResizeEvent], error) {
	s, err := ctx.Spatial(ctx.WidgetID())
	if err != nil {
		return nil, err
	}
	return &s.resizeHandlers, nil
}
