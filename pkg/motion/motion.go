// Package motion animates widget positions with eased tweens. An
// Animator advances its glides from the frame loop and schedules the
// resulting moves through the widget manager, so animated placement
// flows through the same deferred rounds as every other mutation.
package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-facet/facet/pkg/geometry"
	"github.com/go-facet/facet/pkg/widget"
)

// glide tweens one widget between two positions, one tween per axis.
type glide struct {
	x *gween.Tween
	y *gween.Tween
}

// Animator drives position glides for widgets of one manager. It is
// not safe for concurrent use; call it from the thread driving the
// manager.
type Animator struct {
	manager *widget.Manager
	glides  map[widget.WidgetID]*glide
}

// NewAnimator returns an animator scheduling against the given manager.
func NewAnimator(m *widget.Manager) *Animator {
	return &Animator{manager: m, glides: make(map[widget.WidgetID]*glide)}
}

// Glide starts easing the widget from its current position to the
// target over duration seconds. A new glide replaces a running one for
// the same widget. The widget must have a spatial component.
func (a *Animator) Glide(id widget.WidgetID, to geometry.Position, duration float32, easing ease.TweenFunc) error {
	s, err := a.manager.Spatial(id)
	if err != nil {
		return err
	}
	from := s.Position()
	a.glides[id] = &glide{
		x: gween.New(float32(from.X), float32(to.X), duration, easing),
		y: gween.New(float32(from.Y), float32(to.Y), duration, easing),
	}
	return nil
}

// Stop cancels the widget's running glide, leaving it wherever the last
// update placed it. It reports whether a glide was running.
func (a *Animator) Stop(id widget.WidgetID) bool {
	if _, ok := a.glides[id]; !ok {
		return false
	}
	delete(a.glides, id)
	return true
}

// Active reports the number of running glides.
func (a *Animator) Active() int {
	return len(a.glides)
}

// Update advances every glide by dt seconds and schedules the moves.
// Finished glides and glides whose widgets have been removed are
// dropped. Callers run Manager.Execute afterwards to apply the moves.
func (a *Animator) Update(dt float32) {
	for id, g := range a.glides {
		if !a.manager.Has(id) {
			delete(a.glides, id)
			continue
		}
		x, doneX := g.x.Update(dt)
		y, doneY := g.y.Update(dt)
		a.manager.Schedule(id, moveTo(geometry.Position{X: float64(x), Y: float64(y)}))
		if doneX && doneY {
			delete(a.glides, id)
		}
	}
}

func moveTo(position geometry.Position) widget.Action {
	return widget.ActionFunc(func(ctx *widget.Context) error {
		s, err := ctx.Spatial(ctx.WidgetID())
		if err != nil {
			return nil
		}
		s.SetPosition(ctx, position)
		return nil
	})
}
