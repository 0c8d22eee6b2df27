package widget

import (
	"github.com/go-facet/facet/pkg/arena"
	"github.com/go-facet/facet/pkg/errors"
)

// WidgetID identifies a widget managed by a Manager. IDs are recycled
// after removal.
type WidgetID int

// ComponentID identifies a component within its capability arena.
type ComponentID int

// noComponent marks an unattached capability slot.
const noComponent ComponentID = -1

// widgetRecord tracks which component, if any, a widget holds for each
// capability.
type widgetRecord struct {
	spatial     ComponentID
	mouseButton ComponentID
	mouseMotion ComponentID
	mouseOver   ComponentID
	button      ComponentID
	container   ComponentID
	dialog      ComponentID
}

func newWidgetRecord() widgetRecord {
	return widgetRecord{
		spatial:     noComponent,
		mouseButton: noComponent,
		mouseMotion: noComponent,
		mouseOver:   noComponent,
		button:      noComponent,
		container:   noComponent,
		dialog:      noComponent,
	}
}

// Manager owns every widget and component and the action scheduler
// that animates them. It is not safe for concurrent use; all calls
// must come from the single thread driving the interface.
type Manager struct {
	widgets arena.Arena[widgetRecord]

	spatials     arena.Arena[Spatial]
	mouseButtons arena.Arena[MouseButtonTarget]
	mouseMotions arena.Arena[MouseMotionTarget]
	mouseOvers   arena.Arena[MouseOverTarget]
	buttons      arena.Arena[Button]
	containers   arena.Arena[Container]
	dialogs      arena.Arena[Dialog]

	sched     scheduler
	maxRounds int
	executing bool
	sink      InteractionSink
}

// NewManager returns an empty manager with the default round cap.
func NewManager() *Manager {
	return &Manager{maxRounds: DefaultMaxRounds}
}

// SetMaxRounds changes the scheduler round cap. Values below one are
// clamped to one.
func (m *Manager) SetMaxRounds(n int) {
	if n < 1 {
		n = 1
	}
	m.maxRounds = n
}

// NewWidget creates an empty widget and returns a builder for
// decorating it with capabilities.
func (m *Manager) NewWidget() *Builder {
	id := m.widgets.Insert(newWidgetRecord())
	return &Builder{manager: m, widgetID: WidgetID(id)}
}

// Build returns a builder for an existing widget so capabilities can be
// added after creation.
func (m *Manager) Build(id WidgetID) (*Builder, error) {
	if _, ok := m.widgets.Get(arena.ID(id)); !ok {
		return nil, errors.New("widget.Manager.Build", errors.KindNoWidget)
	}
	return &Builder{manager: m, widgetID: id}, nil
}

// Has reports whether the widget exists.
func (m *Manager) Has(id WidgetID) bool {
	_, ok := m.widgets.Get(arena.ID(id))
	return ok
}

// Count reports the number of live widgets.
func (m *Manager) Count() int {
	return m.widgets.Count()
}

// Remove deletes a widget and releases every component attached to it.
// A container widget first unregisters the resize handlers it installed
// on its children. Actions already scheduled against the widget become
// no-ops when they run.
func (m *Manager) Remove(id WidgetID) error {
	const op = "widget.Manager.Remove"
	rec, ok := m.widgets.Get(arena.ID(id))
	if !ok {
		return errors.New(op, errors.KindNoWidget)
	}
	if rec.container != noComponent {
		if c, ok := m.containers.Get(arena.ID(rec.container)); ok {
			c.releaseColumns(m)
		}
	}
	release(&m.spatials, rec.spatial)
	release(&m.mouseButtons, rec.mouseButton)
	release(&m.mouseMotions, rec.mouseMotion)
	release(&m.mouseOvers, rec.mouseOver)
	release(&m.buttons, rec.button)
	release(&m.containers, rec.container)
	release(&m.dialogs, rec.dialog)
	m.widgets.Remove(arena.ID(id))
	return nil
}

func release[C any](store *arena.Arena[C], id ComponentID) {
	if id != noComponent {
		store.Remove(arena.ID(id))
	}
}

// lookup resolves one capability component for a widget. The returned
// pointer stays valid until the next decoration or removal on the
// manager; callers needing it across actions must re-fetch.
func lookup[C any](m *Manager, op string, id WidgetID, field func(*widgetRecord) ComponentID, store *arena.Arena[C]) (*C, error) {
	rec, ok := m.widgets.Get(arena.ID(id))
	if !ok {
		return nil, errors.New(op, errors.KindNoWidget)
	}
	cid := field(rec)
	if cid == noComponent {
		return nil, errors.New(op, errors.KindNoComponent)
	}
	c, ok := store.Get(arena.ID(cid))
	if !ok {
		return nil, errors.New(op, errors.KindNoComponent)
	}
	return c, nil
}

// Spatial returns the widget's spatial component.
func (m *Manager) Spatial(id WidgetID) (*Spatial, error) {
	return lookup(m, "widget.Manager.Spatial", id, func(r *widgetRecord) ComponentID { return r.spatial }, &m.spatials)
}

// MouseButtonTarget returns the widget's mouse button target component.
func (m *Manager) MouseButtonTarget(id WidgetID) (*MouseButtonTarget, error) {
	return lookup(m, "widget.Manager.MouseButtonTarget", id, func(r *widgetRecord) ComponentID { return r.mouseButton }, &m.mouseButtons)
}

// MouseMotionTarget returns the widget's mouse motion target component.
func (m *Manager) MouseMotionTarget(id WidgetID) (*MouseMotionTarget, error) {
	return lookup(m, "widget.Manager.MouseMotionTarget", id, func(r *widgetRecord) ComponentID { return r.mouseMotion }, &m.mouseMotions)
}

// MouseOverTarget returns the widget's mouse over target component.
func (m *Manager) MouseOverTarget(id WidgetID) (*MouseOverTarget, error) {
	return lookup(m, "widget.Manager.MouseOverTarget", id, func(r *widgetRecord) ComponentID { return r.mouseOver }, &m.mouseOvers)
}

// Button returns the widget's button component.
func (m *Manager) Button(id WidgetID) (*Button, error) {
	return lookup(m, "widget.Manager.Button", id, func(r *widgetRecord) ComponentID { return r.button }, &m.buttons)
}

// Container returns the widget's container component.
func (m *Manager) Container(id WidgetID) (*Container, error) {
	return lookup(m, "widget.Manager.Container", id, func(r *widgetRecord) ComponentID { return r.container }, &m.containers)
}

// Dialog returns the widget's dialog component.
func (m *Manager) Dialog(id WidgetID) (*Dialog, error) {
	return lookup(m, "widget.Manager.Dialog", id, func(r *widgetRecord) ComponentID { return r.dialog }, &m.dialogs)
}

// Schedule queues an action against a widget for the next execution
// round. It is the entry point for work originating outside handler
// code, such as platform input or application setup.
func (m *Manager) Schedule(target WidgetID, action Action) {
	m.sched.schedule(scheduledAction{source: target, target: target, action: action})
}

// Pending reports the number of actions waiting for the next round.
func (m *Manager) Pending() int {
	return m.sched.pending()
}

// NotifyMouseButton fans a mouse button event out to every widget with
// a mouse button target. Handler execution is deferred to the next
// Execute call.
func (m *Manager) NotifyMouseButton(event *MouseButtonEvent) {
	for cid := range m.mouseButtons.IDs() {
		t, ok := m.mouseButtons.Get(cid)
		if !ok {
			continue
		}
		t.Notify(m.Context(t.widgetID), event)
	}
}

// NotifyMouseMotion fans a mouse motion event out to every widget with
// a mouse motion target. Handler execution is deferred to the next
// Execute call.
func (m *Manager) NotifyMouseMotion(event *MouseMotionEvent) {
	for cid := range m.mouseMotions.IDs() {
		t, ok := m.mouseMotions.Get(cid)
		if !ok {
			continue
		}
		t.Notify(m.Context(t.widgetID), event)
	}
}
