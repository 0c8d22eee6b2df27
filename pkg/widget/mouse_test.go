package widget

import (
	"slices"
	"testing"

	"github.com/go-facet/facet/pkg/geometry"
)

// newHoverWidget builds a widget with a mouse over target covering the
// rectangle from (10, 10) to (30, 30).
func newHoverWidget(t *testing.T, m *Manager) WidgetID {
	t.Helper()
	b := m.NewWidget()
	if err := b.AddMouseOverTarget(); err != nil {
		t.Fatalf("AddMouseOverTarget: %v", err)
	}
	s, err := m.Spatial(b.WidgetID())
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	s.Place(geometry.Position{X: 10, Y: 10})
	s.Resize(geometry.Size{Width: 20, Height: 20})
	return b.WidgetID()
}

func moveMouse(t *testing.T, m *Manager, x, y float64) {
	t.Helper()
	m.NotifyMouseMotion(&MouseMotionEvent{Position: geometry.Position{X: x, Y: y}})
	settle(t, m)
}

func TestMouseOverEmitsOnTransitionsOnly(t *testing.T) {
	m := NewManager()
	id := newHoverWidget(t, m)
	over, err := m.MouseOverTarget(id)
	if err != nil {
		t.Fatalf("MouseOverTarget: %v", err)
	}

	var kinds []MouseOverKind
	over.AddHandler(HandlerFunc[MouseOverEvent](func(ev *MouseOverEvent, ctx *Context) error {
		if ev.Source != id {
			t.Errorf("event source = %d, want %d", ev.Source, id)
		}
		kinds = append(kinds, ev.Kind)
		return nil
	}))

	steps := []struct {
		x, y   float64
		within bool
	}{
		{0, 0, false},    // starts outside, no event
		{15, 15, true},   // crosses in
		{20, 25, true},   // stays inside, no event
		{100, 100, false}, // crosses out
		{5, 5, false},    // stays outside, no event
		{10, 10, true},   // edges count as inside
	}
	for _, step := range steps {
		moveMouse(t, m, step.x, step.y)
		over, err = m.MouseOverTarget(id)
		if err != nil {
			t.Fatalf("MouseOverTarget: %v", err)
		}
		if over.Within() != step.within {
			t.Errorf("Within() after (%g, %g) = %v, want %v", step.x, step.y, over.Within(), step.within)
		}
	}

	want := []MouseOverKind{MouseEntered, MouseExited, MouseEntered}
	if !slices.Equal(kinds, want) {
		t.Errorf("over events = %v, want %v", kinds, want)
	}
}

func TestMouseMotionFansOutToAllTargets(t *testing.T) {
	m := NewManager()
	var seen []WidgetID
	for range 2 {
		b := m.NewWidget()
		if err := b.AddMouseMotionTarget(); err != nil {
			t.Fatalf("AddMouseMotionTarget: %v", err)
		}
		target, err := m.MouseMotionTarget(b.WidgetID())
		if err != nil {
			t.Fatalf("MouseMotionTarget: %v", err)
		}
		target.AddHandler(HandlerFunc[MouseMotionEvent](func(ev *MouseMotionEvent, ctx *Context) error {
			seen = append(seen, ctx.WidgetID())
			return nil
		}))
	}

	m.NotifyMouseMotion(&MouseMotionEvent{Position: geometry.Position{X: 1, Y: 1}})
	settle(t, m)

	if len(seen) != 2 || seen[0] == seen[1] {
		t.Errorf("motion deliveries = %v, want one per target", seen)
	}
}

func TestMouseButtonDelivery(t *testing.T) {
	m := NewManager()
	b := m.NewWidget()
	if err := b.AddMouseButtonTarget(); err != nil {
		t.Fatalf("AddMouseButtonTarget: %v", err)
	}
	target, err := m.MouseButtonTarget(b.WidgetID())
	if err != nil {
		t.Fatalf("MouseButtonTarget: %v", err)
	}

	var got *MouseButtonEvent
	target.AddHandler(HandlerFunc[MouseButtonEvent](func(ev *MouseButtonEvent, ctx *Context) error {
		got = ev
		return nil
	}))

	sent := &MouseButtonEvent{Kind: MousePressed, Button: MouseButtonRight, Position: geometry.Position{X: 4, Y: 5}}
	m.NotifyMouseButton(sent)
	settle(t, m)

	if got != sent {
		t.Fatalf("delivered event = %+v, want the notified event", got)
	}
}

func TestMouseEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{MouseButtonLeft.String(), "left"},
		{MouseButtonRight.String(), "right"},
		{MousePressed.String(), "pressed"},
		{MouseReleased.String(), "released"},
		{MouseEntered.String(), "entered"},
		{MouseExited.String(), "exited"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}
