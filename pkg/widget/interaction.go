package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// InteractionType classifies the pointer interactions a manager can
// report to its sink.
type InteractionType int

const (
	InteractionPress InteractionType = iota
	InteractionRelease
	InteractionClick
	InteractionEnter
	InteractionExit
)

func (t InteractionType) String() string {
	switch t {
	case InteractionPress:
		return "press"
	case InteractionRelease:
		return "release"
	case InteractionClick:
		return "click"
	case InteractionEnter:
		return "enter"
	case InteractionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// InteractionEvent describes one pointer interaction with a widget.
// Button is meaningful for press, release and click.
type InteractionEvent struct {
	Type     InteractionType
	Widget   WidgetID
	Position geometry.Position
	Button   MouseButton
}

// InteractionSink receives interaction events as they happen, during
// action execution. Sinks must not call back into the manager.
type InteractionSink interface {
	EmitInteraction(event InteractionEvent)
}

// SetInteractionSink installs the sink interaction events are reported
// to. A nil sink disables reporting.
func (m *Manager) SetInteractionSink(sink InteractionSink) {
	m.sink = sink
}

func (m *Manager) emitInteraction(event InteractionEvent) {
	if m.sink != nil {
		m.sink.EmitInteraction(event)
	}
}
