package widget

import (
	"slices"
	"testing"

	"github.com/go-facet/facet/pkg/geometry"
	"github.com/go-facet/facet/pkg/style"
)

// newTestButton builds a button covering (10, 10) to (50, 30).
func newTestButton(t *testing.T, m *Manager) WidgetID {
	t.Helper()
	b := m.NewWidget()
	if err := b.AddButton("OK", style.Default().Button, geometry.Size{Width: 40, Height: 20}); err != nil {
		t.Fatalf("AddButton: %v", err)
	}
	s, err := m.Spatial(b.WidgetID())
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	s.Place(geometry.Position{X: 10, Y: 10})
	return b.WidgetID()
}

func countClicks(t *testing.T, m *Manager, id WidgetID) *int {
	t.Helper()
	btn, err := m.Button(id)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	clicks := new(int)
	btn.AddClickHandler(HandlerFunc[ButtonEvent](func(ev *ButtonEvent, ctx *Context) error {
		if ev.Source != id {
			t.Errorf("click source = %d, want %d", ev.Source, id)
		}
		*clicks++
		return nil
	}))
	return clicks
}

func pressMouse(t *testing.T, m *Manager, x, y float64) {
	t.Helper()
	m.NotifyMouseButton(&MouseButtonEvent{Kind: MousePressed, Button: MouseButtonLeft, Position: geometry.Position{X: x, Y: y}})
	settle(t, m)
}

func releaseMouse(t *testing.T, m *Manager, x, y float64) {
	t.Helper()
	m.NotifyMouseButton(&MouseButtonEvent{Kind: MouseReleased, Button: MouseButtonLeft, Position: geometry.Position{X: x, Y: y}})
	settle(t, m)
}

func mustButton(t *testing.T, m *Manager, id WidgetID) *Button {
	t.Helper()
	btn, err := m.Button(id)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	return btn
}

func TestClickInsideBounds(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)
	clicks := countClicks(t, m, id)

	pressMouse(t, m, 20, 20)
	if !mustButton(t, m, id).Pressed() {
		t.Error("button not pressed after press inside bounds")
	}

	releaseMouse(t, m, 25, 25)
	if mustButton(t, m, id).Pressed() {
		t.Error("button still pressed after release")
	}
	if *clicks != 1 {
		t.Errorf("clicks = %d, want 1", *clicks)
	}
}

func TestReleaseOutsideCancelsClick(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)
	clicks := countClicks(t, m, id)

	pressMouse(t, m, 20, 20)
	releaseMouse(t, m, 100, 100)

	if mustButton(t, m, id).Pressed() {
		t.Error("button still pressed after release outside")
	}
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestReleaseWithoutPressDoesNothing(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)
	clicks := countClicks(t, m, id)

	releaseMouse(t, m, 20, 20)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestPressOutsideDoesNotArm(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)
	clicks := countClicks(t, m, id)

	pressMouse(t, m, 100, 100)
	if mustButton(t, m, id).Pressed() {
		t.Error("button pressed after press outside bounds")
	}
	releaseMouse(t, m, 20, 20)
	if *clicks != 0 {
		t.Errorf("clicks = %d, want 0", *clicks)
	}
}

func TestHighlightFollowsPointer(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)

	moveMouse(t, m, 20, 20)
	if !mustButton(t, m, id).Highlighted() {
		t.Error("button not highlighted with pointer inside")
	}
	moveMouse(t, m, 100, 100)
	if mustButton(t, m, id).Highlighted() {
		t.Error("button still highlighted with pointer outside")
	}
}

func TestClickHandlerRemoval(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)

	clicks := 0
	btn := mustButton(t, m, id)
	h := btn.AddClickHandler(HandlerFunc[ButtonEvent](func(*ButtonEvent, *Context) error {
		clicks++
		return nil
	}))
	if err := btn.RemoveClickHandler(h); err != nil {
		t.Fatalf("RemoveClickHandler: %v", err)
	}

	pressMouse(t, m, 20, 20)
	releaseMouse(t, m, 20, 20)
	if clicks != 0 {
		t.Errorf("clicks = %d after handler removal, want 0", clicks)
	}
}

func TestButtonLabelAndStyle(t *testing.T) {
	m := NewManager()
	id := newTestButton(t, m)
	btn := mustButton(t, m, id)

	if btn.Label() != "OK" {
		t.Errorf("Label() = %q, want %q", btn.Label(), "OK")
	}
	btn.SetLabel("Cancel")
	if btn.Label() != "Cancel" {
		t.Errorf("Label() = %q after SetLabel, want %q", btn.Label(), "Cancel")
	}
	if got := btn.Style().Background; got != style.Default().Button.Background {
		t.Errorf("style background = %+v, want default", got)
	}
}

type recordSink struct {
	events []InteractionEvent
}

func (r *recordSink) EmitInteraction(event InteractionEvent) {
	r.events = append(r.events, event)
}

func (r *recordSink) types() []InteractionType {
	types := make([]InteractionType, len(r.events))
	for i, ev := range r.events {
		types[i] = ev.Type
	}
	return types
}

func TestInteractionSinkObservesGesture(t *testing.T) {
	m := NewManager()
	sink := &recordSink{}
	m.SetInteractionSink(sink)
	id := newTestButton(t, m)

	moveMouse(t, m, 20, 20)
	pressMouse(t, m, 20, 20)
	releaseMouse(t, m, 25, 25)
	moveMouse(t, m, 100, 100)

	want := []InteractionType{InteractionEnter, InteractionPress, InteractionRelease, InteractionClick, InteractionExit}
	if got := sink.types(); !slices.Equal(got, want) {
		t.Fatalf("interactions = %v, want %v", got, want)
	}
	for i, ev := range sink.events {
		if ev.Widget != id {
			t.Errorf("interaction %d widget = %d, want %d", i, ev.Widget, id)
		}
	}
}

func TestInteractionSinkDisabledByNil(t *testing.T) {
	m := NewManager()
	sink := &recordSink{}
	m.SetInteractionSink(sink)
	m.SetInteractionSink(nil)
	newTestButton(t, m)

	moveMouse(t, m, 20, 20)
	if len(sink.events) != 0 {
		t.Errorf("detached sink received %d events", len(sink.events))
	}
}
