// Package widget implements an entity component widget runtime: plain
// widget identities decorated with capability components, animated by a
// deferred action scheduler.
//
// # Widgets and capabilities
//
// A widget is only an ID. Behavior comes from components attached
// through a [Builder]: [Spatial] for position and size,
// [MouseButtonTarget], [MouseMotionTarget] and [MouseOverTarget] for
// pointer input, [Button] for click gestures, [Container] for row
// layout and [Dialog] for dismissable surfaces. Decoration is
// idempotent and chains prerequisites, so AddButton on a bare widget
// pulls in the spatial and mouse capabilities it needs:
//
//	m := widget.NewManager()
//	b := m.NewWidget()
//	if err := b.AddButton("Quit", style.Default().Button, geometry.Size{Width: 80, Height: 24}); err != nil {
//		// ...
//	}
//
// # Deferred actions
//
// Nothing happens inline. Notifying handlers, placing container
// children and delivering input all schedule [Action] values, and
// [Manager.Execute] drains them in rounds: actions scheduled during
// one round run in the next, so effects settle breadth first. A frame
// driver typically forwards platform input through
// [Manager.NotifyMouseButton] and [Manager.NotifyMouseMotion], then
// calls Execute once per frame. Cascades that fail to settle within
// the manager's round cap abort with an action loop error.
//
// # Handler lifetimes
//
// Registering a handler returns a [HandlerID], and scheduled
// deliveries carry only that ID plus the path back to the registry.
// Removing a widget, a component or a handler between scheduling and
// execution silently drops the pending deliveries; nothing dangles.
//
// The manager is single threaded. All calls, including Execute, must
// come from the thread driving the interface.
package widget
