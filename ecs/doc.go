// Package ecs bridges widget interactions into a donburi entity world.
//
// The bridge implements the manager's interaction sink and republishes
// every interaction as a donburi event, so game systems subscribe with
// the usual donburi event machinery instead of touching the widget
// manager directly:
//
//	world := donburi.NewWorld()
//	bridge := ecs.Attach(manager, world)
//
//	ecs.Interactions.Subscribe(world, func(w donburi.World, e widget.InteractionEvent) {
//		// react to clicks, hovers, ...
//	})
//
//	// each frame, after manager.Execute:
//	bridge.Process()
//
// This package is a separate module so the core stays free of the
// donburi dependency.
package ecs
