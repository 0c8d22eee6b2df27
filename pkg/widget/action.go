package widget

import (
	"time"

	"github.com/go-facet/facet/pkg/errors"
)

// DefaultMaxRounds is the scheduler round cap used by new managers.
const DefaultMaxRounds = 100

// Action is a deferred unit of work executed against the widget it was
// scheduled for. Actions are the only way cross-component effects
// happen: a handler never mutates another widget directly, it schedules
// an action and the scheduler runs it in a later round.
type Action interface {
	// Execute runs the action. The context is bound to the target
	// widget the action was scheduled for.
	Execute(ctx *Context) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx *Context) error

func (f ActionFunc) Execute(ctx *Context) error {
	return f(ctx)
}

// scheduledAction pairs an action with the widget that scheduled it and
// the widget it must run against.
type scheduledAction struct {
	source WidgetID
	target WidgetID
	action Action
}

// scheduler is the two-buffer action queue. Scheduling appends to the
// active buffer; execution swaps the buffers and drains the previous
// active contents, so an action scheduled during round N runs in round
// N+1, never inline.
type scheduler struct {
	active []scheduledAction
	buffer []scheduledAction
}

func (s *scheduler) schedule(a scheduledAction) {
	s.active = append(s.active, a)
}

func (s *scheduler) pending() int {
	return len(s.active)
}

// Execute drains the scheduler in rounds until no actions remain.
//
// Each round swaps the buffers and runs every action from the previous
// active buffer in FIFO order; actions those executions schedule land
// in the fresh active buffer and run in the next round. The round
// counter enforces the manager's cap: a cascade that keeps rescheduling
// past it fails with an action-loop error instead of spinning forever.
// An action error aborts the wave with unexecuted and newly scheduled
// actions discarded.
//
// Execute must not be called from inside an action; doing so returns a
// borrow error.
func (m *Manager) Execute() error {
	const op = "widget.Manager.Execute"
	if m.executing {
		return errors.New(op, errors.KindBorrow)
	}
	m.executing = true
	defer func() { m.executing = false }()

	round := 0
	for {
		if len(m.sched.active) == 0 {
			return nil
		}
		if round == m.maxRounds {
			m.sched.active = m.sched.active[:0]
			return errors.New(op, errors.KindActionLoop)
		}
		m.sched.active, m.sched.buffer = m.sched.buffer, m.sched.active
		for i := range m.sched.buffer {
			if err := m.run(m.sched.buffer[i]); err != nil {
				m.sched.buffer = m.sched.buffer[:0]
				m.sched.active = m.sched.active[:0]
				return err
			}
		}
		m.sched.buffer = m.sched.buffer[:0]
		round++
	}
}

// run executes one scheduled action with panic recovery. A panicking
// handler is reported through the errors package and surfaces as a
// regular error so the frame driver can abort the update cycle.
func (m *Manager) run(a scheduledAction) (err error) {
	const op = "widget.Manager.Execute"
	defer func() {
		if r := recover(); r != nil {
			perr := &errors.PanicError{
				Op:         op,
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(perr)
			err = errors.Wrap(op, errors.KindPanic, perr)
		}
	}()
	ctx := Context{manager: m, widgetID: a.target, source: a.source}
	return a.action.Execute(&ctx)
}
