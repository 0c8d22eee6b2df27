// Package uitest drives a widget manager in tests. A Tester
// synthesizes pointer input, settles the scheduler after every
// gesture, and fails the owning test on execution errors, so test
// bodies read as plain interaction scripts.
package uitest

import (
	"testing"

	"github.com/go-facet/facet/pkg/geometry"
	"github.com/go-facet/facet/pkg/style"
	"github.com/go-facet/facet/pkg/text"
	"github.com/go-facet/facet/pkg/widget"
)

// Tester wraps a manager with input synthesis helpers.
type Tester struct {
	t       *testing.T
	manager *widget.Manager
	mouse   geometry.Position
}

// New returns a tester around a fresh manager. At cleanup it verifies
// the test left no actions pending.
func New(t *testing.T) *Tester {
	return NewWithManager(t, widget.NewManager())
}

// NewWithManager returns a tester around an existing manager.
func NewWithManager(t *testing.T, m *widget.Manager) *Tester {
	t.Helper()
	tt := &Tester{t: t, manager: m}
	t.Cleanup(func() {
		if n := m.Pending(); n != 0 {
			t.Errorf("%d actions left pending at cleanup", n)
		}
	})
	return tt
}

// Manager returns the manager under test.
func (tt *Tester) Manager() *widget.Manager {
	return tt.manager
}

// Settle executes pending actions until the queue drains, failing the
// test on any error.
func (tt *Tester) Settle() {
	tt.t.Helper()
	if err := tt.manager.Execute(); err != nil {
		tt.t.Fatalf("Execute: %v", err)
	}
}

// MousePosition returns the pointer's last synthesized position.
func (tt *Tester) MousePosition() geometry.Position {
	return tt.mouse
}

// MoveMouse moves the pointer and settles.
func (tt *Tester) MoveMouse(x, y float64) {
	tt.t.Helper()
	tt.mouse = geometry.Position{X: x, Y: y}
	tt.manager.NotifyMouseMotion(&widget.MouseMotionEvent{Position: tt.mouse})
	tt.Settle()
}

// PressMouse presses the left button at the pointer's position and
// settles.
func (tt *Tester) PressMouse() {
	tt.t.Helper()
	tt.manager.NotifyMouseButton(&widget.MouseButtonEvent{
		Kind:     widget.MousePressed,
		Button:   widget.MouseButtonLeft,
		Position: tt.mouse,
	})
	tt.Settle()
}

// ReleaseMouse releases the left button at the pointer's position and
// settles.
func (tt *Tester) ReleaseMouse() {
	tt.t.Helper()
	tt.manager.NotifyMouseButton(&widget.MouseButtonEvent{
		Kind:     widget.MouseReleased,
		Button:   widget.MouseButtonLeft,
		Position: tt.mouse,
	})
	tt.Settle()
}

// Click moves the pointer to a position, presses and releases.
func (tt *Tester) Click(x, y float64) {
	tt.t.Helper()
	tt.MoveMouse(x, y)
	tt.PressMouse()
	tt.ReleaseMouse()
}

// ClickOn clicks the center of the widget's bounds.
func (tt *Tester) ClickOn(id widget.WidgetID) {
	tt.t.Helper()
	center := tt.center(id)
	tt.Click(center.X, center.Y)
}

// HoverOver moves the pointer to the center of the widget's bounds.
func (tt *Tester) HoverOver(id widget.WidgetID) {
	tt.t.Helper()
	center := tt.center(id)
	tt.MoveMouse(center.X, center.Y)
}

func (tt *Tester) center(id widget.WidgetID) geometry.Position {
	tt.t.Helper()
	s, err := tt.manager.Spatial(id)
	if err != nil {
		tt.t.Fatalf("Spatial: %v", err)
	}
	return s.Bounds().Center()
}

// NewButton builds a default-styled button at the given position, sized
// from its label with the default font.
func (tt *Tester) NewButton(label string, x, y float64) widget.WidgetID {
	tt.t.Helper()
	st := style.Default().Button
	face, err := text.Default().Face(text.DefaultFontName)
	if err != nil {
		tt.t.Fatalf("Face: %v", err)
	}
	size := text.LabelSize(face, label, st.Margins)

	b := tt.manager.NewWidget()
	if err := b.AddButton(label, st, size); err != nil {
		tt.t.Fatalf("AddButton: %v", err)
	}
	s, err := tt.manager.Spatial(b.WidgetID())
	if err != nil {
		tt.t.Fatalf("Spatial: %v", err)
	}
	s.Place(geometry.Position{X: x, Y: y})
	return b.WidgetID()
}

// NewContainer builds a container at the given position and width with
// the default container margins.
func (tt *Tester) NewContainer(x, y, width, height float64) widget.WidgetID {
	tt.t.Helper()
	b := tt.manager.NewWidget()
	if err := b.AddContainer(style.Default().Container.Margins); err != nil {
		tt.t.Fatalf("AddContainer: %v", err)
	}
	s, err := tt.manager.Spatial(b.WidgetID())
	if err != nil {
		tt.t.Fatalf("Spatial: %v", err)
	}
	s.Place(geometry.Position{X: x, Y: y})
	s.Resize(geometry.Size{Width: width, Height: height})
	return b.WidgetID()
}

// Clicks registers a click counter on a button widget and returns a
// pointer to the count.
func (tt *Tester) Clicks(id widget.WidgetID) *int {
	tt.t.Helper()
	btn, err := tt.manager.Button(id)
	if err != nil {
		tt.t.Fatalf("Button: %v", err)
	}
	count := new(int)
	btn.AddClickHandler(widget.HandlerFunc[widget.ButtonEvent](func(*widget.ButtonEvent, *widget.Context) error {
		*count++
		return nil
	}))
	return count
}
