package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/go-facet/facet/pkg/widget"
)

// Interactions is the donburi event type carrying widget interactions.
var Interactions = events.NewEventType[widget.InteractionEvent]()

// Bridge forwards widget interactions into a donburi world. It
// implements widget.InteractionSink.
type Bridge struct {
	world donburi.World
}

// NewBridge returns a bridge publishing into the given world.
func NewBridge(world donburi.World) *Bridge {
	return &Bridge{world: world}
}

// Attach builds a bridge and installs it as the manager's interaction
// sink.
func Attach(m *widget.Manager, world donburi.World) *Bridge {
	b := NewBridge(world)
	m.SetInteractionSink(b)
	return b
}

// World returns the world the bridge publishes into.
func (b *Bridge) World() donburi.World {
	return b.world
}

// EmitInteraction publishes one interaction as a donburi event.
// Subscribers see it on the next Process call.
func (b *Bridge) EmitInteraction(event widget.InteractionEvent) {
	Interactions.Publish(b.world, event)
}

// Process dispatches buffered interactions to subscribers. Call it once
// per frame after the manager has executed.
func (b *Bridge) Process() {
	Interactions.ProcessEvents(b.world)
}
