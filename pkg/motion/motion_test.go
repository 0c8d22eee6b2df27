package motion

import (
	"testing"

	"github.com/tanema/gween/ease"

	"github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/geometry"
	"github.com/go-facet/facet/pkg/widget"
)

func newGlider(t *testing.T, m *widget.Manager) widget.WidgetID {
	t.Helper()
	b := m.NewWidget()
	if err := b.AddSpatial(); err != nil {
		t.Fatalf("AddSpatial: %v", err)
	}
	return b.WidgetID()
}

func position(t *testing.T, m *widget.Manager, id widget.WidgetID) geometry.Position {
	t.Helper()
	s, err := m.Spatial(id)
	if err != nil {
		t.Fatalf("Spatial: %v", err)
	}
	return s.Position()
}

func step(t *testing.T, a *Animator, m *widget.Manager, dt float32) {
	t.Helper()
	a.Update(dt)
	if err := m.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestGlideReachesTarget(t *testing.T) {
	m := widget.NewManager()
	id := newGlider(t, m)
	a := NewAnimator(m)

	if err := a.Glide(id, geometry.Position{X: 100, Y: 50}, 1, ease.Linear); err != nil {
		t.Fatalf("Glide: %v", err)
	}
	if a.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", a.Active())
	}

	step(t, a, m, 0.5)
	if got := position(t, m, id); !got.Approx(geometry.Position{X: 50, Y: 25}) {
		t.Errorf("midway position = %+v, want {50 25}", got)
	}

	step(t, a, m, 0.5)
	if got := position(t, m, id); !got.Approx(geometry.Position{X: 100, Y: 50}) {
		t.Errorf("final position = %+v, want {100 50}", got)
	}
	if a.Active() != 0 {
		t.Errorf("Active() = %d after finish, want 0", a.Active())
	}
}

func TestGlideReplacesRunning(t *testing.T) {
	m := widget.NewManager()
	id := newGlider(t, m)
	a := NewAnimator(m)

	if err := a.Glide(id, geometry.Position{X: 100}, 1, ease.Linear); err != nil {
		t.Fatalf("Glide: %v", err)
	}
	step(t, a, m, 0.5)

	if err := a.Glide(id, geometry.Position{}, 1, ease.Linear); err != nil {
		t.Fatalf("second Glide: %v", err)
	}
	if a.Active() != 1 {
		t.Fatalf("Active() = %d after replacement, want 1", a.Active())
	}

	step(t, a, m, 1)
	if got := position(t, m, id); !got.Approx(geometry.Position{}) {
		t.Errorf("position = %+v, want origin", got)
	}
}

func TestStopCancelsGlide(t *testing.T) {
	m := widget.NewManager()
	id := newGlider(t, m)
	a := NewAnimator(m)

	if err := a.Glide(id, geometry.Position{X: 100}, 1, ease.Linear); err != nil {
		t.Fatalf("Glide: %v", err)
	}
	if !a.Stop(id) {
		t.Error("Stop reported no running glide")
	}
	if a.Stop(id) {
		t.Error("second Stop reported a running glide")
	}

	step(t, a, m, 1)
	if got := position(t, m, id); !got.Approx(geometry.Position{}) {
		t.Errorf("position = %+v after Stop, want origin", got)
	}
}

func TestRemovedWidgetDropsGlide(t *testing.T) {
	m := widget.NewManager()
	id := newGlider(t, m)
	a := NewAnimator(m)

	if err := a.Glide(id, geometry.Position{X: 100}, 1, ease.Linear); err != nil {
		t.Fatalf("Glide: %v", err)
	}
	if err := m.Remove(id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	step(t, a, m, 0.5)
	if a.Active() != 0 {
		t.Errorf("Active() = %d after widget removal, want 0", a.Active())
	}
}

func TestGlideRequiresSpatial(t *testing.T) {
	m := widget.NewManager()
	id := m.NewWidget().WidgetID()
	a := NewAnimator(m)

	err := a.Glide(id, geometry.Position{X: 1}, 1, ease.Linear)
	if errors.KindOf(err) != errors.KindNoComponent {
		t.Errorf("Glide error = %v, want no component kind", err)
	}
}
