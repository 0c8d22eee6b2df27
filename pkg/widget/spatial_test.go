package widget

import (
	"testing"

	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/geometry"
)

func newSpatialWidget(t *testing.T, m *Manager) (WidgetID, *Spatial) {
	t.Helper()
	b := m.NewWidget()
	if err := b.AddSpatial(); err != nil {
		t.Fatalf("AddSpatial: %v", err)
	}
	s, err := m.Spatial(b.WidgetID())
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	return b.WidgetID(), s
}

func TestSpatialStartsAtOrigin(t *testing.T) {
	m := NewManager()
	_, s := newSpatialWidget(t, m)

	if got := s.Position(); got != (geometry.Position{}) {
		t.Errorf("Position() = %+v, want origin", got)
	}
	if got := s.PreferredSize(); got != (geometry.Size{}) {
		t.Errorf("PreferredSize() = %+v, want zero", got)
	}
	if got := s.Bounds(); got != (geometry.Bounds{}) {
		t.Errorf("Bounds() = %+v, want zero", got)
	}
}

func TestBoundsFollowPlacement(t *testing.T) {
	m := NewManager()
	_, s := newSpatialWidget(t, m)

	s.Place(geometry.Position{X: 10, Y: 20})
	s.Resize(geometry.Size{Width: 30, Height: 40})

	want := geometry.Bounds{Left: 10, Top: 20, Right: 40, Bottom: 60}
	if got := s.Bounds(); !got.Approx(want) {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}

	// The cache refreshes after every change.
	s.Place(geometry.Position{X: 0, Y: 0})
	want = geometry.Bounds{Left: 0, Top: 0, Right: 30, Bottom: 40}
	if got := s.Bounds(); !got.Approx(want) {
		t.Errorf("Bounds() after move = %+v, want %+v", got, want)
	}
}

func TestQuietPlacementSchedulesNothing(t *testing.T) {
	m := NewManager()
	_, s := newSpatialWidget(t, m)

	s.Place(geometry.Position{X: 1, Y: 2})
	s.Resize(geometry.Size{Width: 3, Height: 4})
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d after quiet placement, want 0", m.Pending())
	}
}

func TestSetPositionNotifiesMoveHandlers(t *testing.T) {
	m := NewManager()
	id, s := newSpatialWidget(t, m)

	var got *MoveEvent
	s.AddMoveHandler(HandlerFunc[MoveEvent](func(ev *MoveEvent, ctx *Context) error {
		got = ev
		return nil
	}))

	s.SetPosition(m.Context(id), geometry.Position{X: 8, Y: 9})
	settle(t, m)

	if got == nil {
		t.Fatal("move handler did not run")
	}
	if got.Source != id {
		t.Errorf("event source = %d, want %d", got.Source, id)
	}
	if got.Position != (geometry.Position{X: 8, Y: 9}) {
		t.Errorf("event position = %+v, want {8 9}", got.Position)
	}
}

func TestSetPreferredSizeNotifiesResizeHandlers(t *testing.T) {
	m := NewManager()
	id, s := newSpatialWidget(t, m)

	var got *ResizeEvent
	s.AddResizeHandler(HandlerFunc[ResizeEvent](func(ev *ResizeEvent, ctx *Context) error {
		got = ev
		return nil
	}))

	s.SetPreferredSize(m.Context(id), geometry.Size{Width: 11, Height: 12})
	settle(t, m)

	if got == nil {
		t.Fatal("resize handler did not run")
	}
	if got.Source != id {
		t.Errorf("event source = %d, want %d", got.Source, id)
	}
	if got.Size != (geometry.Size{Width: 11, Height: 12}) {
		t.Errorf("event size = %+v, want {11 12}", got.Size)
	}
}

func TestRemovedResizeHandlerStaysSilent(t *testing.T) {
	m := NewManager()
	id, s := newSpatialWidget(t, m)

	ran := false
	h := s.AddResizeHandler(HandlerFunc[ResizeEvent](func(*ResizeEvent, *Context) error {
		ran = true
		return nil
	}))
	if err := s.RemoveResizeHandler(h); err != nil {
		t.Fatalf("RemoveResizeHandler: %v", err)
	}
	if err := s.RemoveResizeHandler(h); errors.KindOf(err) != errors.KindNoHandler {
		t.Errorf("second removal = %v, want no handler kind", err)
	}

	s.SetPreferredSize(m.Context(id), geometry.Size{Width: 1, Height: 1})
	settle(t, m)
	if ran {
		t.Error("removed resize handler ran")
	}
}
