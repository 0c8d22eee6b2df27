package widget

// Context is handed to every action and handler during execution. It is
// bound to one widget and carries access to the manager's components
// and scheduler. Contexts are transient; retaining one past the call it
// was passed to is a programming error.
type Context struct {
	manager  *Manager
	widgetID WidgetID
	source   WidgetID
}

// WidgetID returns the widget this context is bound to.
func (c *Context) WidgetID() WidgetID {
	return c.widgetID
}

// Source returns the widget that scheduled the running action. For
// contexts created outside execution it equals WidgetID.
func (c *Context) Source() WidgetID {
	return c.source
}

// Has reports whether the widget exists.
func (c *Context) Has(id WidgetID) bool {
	return c.manager.Has(id)
}

// Spatial returns the widget's spatial component.
func (c *Context) Spatial(id WidgetID) (*Spatial, error) {
	return c.manager.Spatial(id)
}

// MouseButtonTarget returns the widget's mouse button target component.
func (c *Context) MouseButtonTarget(id WidgetID) (*MouseButtonTarget, error) {
	return c.manager.MouseButtonTarget(id)
}

// MouseMotionTarget returns the widget's mouse motion target component.
func (c *Context) MouseMotionTarget(id WidgetID) (*MouseMotionTarget, error) {
	return c.manager.MouseMotionTarget(id)
}

// MouseOverTarget returns the widget's mouse over target component.
func (c *Context) MouseOverTarget(id WidgetID) (*MouseOverTarget, error) {
	return c.manager.MouseOverTarget(id)
}

// Button returns the widget's button component.
func (c *Context) Button(id WidgetID) (*Button, error) {
	return c.manager.Button(id)
}

// Container returns the widget's container component.
func (c *Context) Container(id WidgetID) (*Container, error) {
	return c.manager.Container(id)
}

// Dialog returns the widget's dialog component.
func (c *Context) Dialog(id WidgetID) (*Dialog, error) {
	return c.manager.Dialog(id)
}

// Schedule queues an action against the given widget for the next
// execution round.
func (c *Context) Schedule(target WidgetID, action Action) {
	c.manager.sched.schedule(scheduledAction{source: c.widgetID, target: target, action: action})
}

// Context returns a context bound to the given widget for use outside
// action execution, typically while wiring an interface up. Work done
// through it still defers all handler notifications to the scheduler.
func (m *Manager) Context(id WidgetID) *Context {
	return &Context{manager: m, widgetID: id, source: id}
}

// ScheduleForSelf queues an action against the context's own widget.
func (c *Context) ScheduleForSelf(action Action) {
	c.Schedule(c.widgetID, action)
}
