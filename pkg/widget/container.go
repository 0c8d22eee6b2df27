package widget

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// Alignment picks the horizontal zone a column is laid out in.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// column is one child slot in a container row, remembering the resize
// handler installed on the child so removal can release it.
type column struct {
	child         WidgetID
	alignment     Alignment
	resizeHandler HandlerID
}

// Container lays its children out in rows. Within a row, left-aligned
// children pack from the left margin, right-aligned children pack
// against the right margin, and center-aligned children sit centered
// in the space between the two packs. Rows stack downward; every child
// in a row shares the row's bottom edge.
//
// The container relayouts itself when it moves or resizes and when any
// child resizes. Placement happens through scheduled actions, so
// positions update on the following execution rounds rather than
// inline.
type Container struct {
	widgetID WidgetID
	margins  geometry.Margins
	rows     [][]column
}

// AddContainer decorates the widget with a container using the given
// margins, adding a spatial component first when missing.
func (b *Builder) AddContainer(margins geometry.Margins) error {
	has, err := b.HasContainer()
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if err := b.AddSpatial(); err != nil {
		return err
	}
	if err := attach(b, "widget.Builder.AddContainer", &b.manager.containers,
		func(r *widgetRecord) *ComponentID { return &r.container },
		Container{widgetID: b.widgetID, margins: margins}); err != nil {
		return err
	}
	s, err := b.manager.Spatial(b.widgetID)
	if err != nil {
		return err
	}
	s.AddMoveHandler(HandlerFunc[MoveEvent](relayoutOnMove))
	s.AddResizeHandler(HandlerFunc[ResizeEvent](relayoutOnResize))
	return nil
}

// Widget returns the owning widget.
func (c *Container) Widget() WidgetID {
	return c.widgetID
}

// Margins returns the container's margins.
func (c *Container) Margins() geometry.Margins {
	return c.margins
}

// RowCount reports the number of rows, including a trailing empty one.
func (c *Container) RowCount() int {
	return len(c.rows)
}

// ColumnCount reports the number of columns in a row, zero for rows
// that do not exist.
func (c *Container) ColumnCount(row int) int {
	if row < 0 || row >= len(c.rows) {
		return 0
	}
	return len(c.rows[row])
}

// AddRow starts a new row. It reports whether a row was added; a
// trailing empty row is reused instead of stacking another.
func (c *Container) AddRow() bool {
	if n := len(c.rows); n > 0 && len(c.rows[n-1]) == 0 {
		return false
	}
	c.rows = append(c.rows, nil)
	return true
}

// AddColumn appends a child to the current row, starting a first row
// when none exists. The child must already have a spatial component.
// The container registers a resize handler on the child and schedules
// a relayout.
func (c *Container) AddColumn(ctx *Context, child WidgetID, alignment Alignment) error {
	childSpatial, err := ctx.Spatial(child)
	if err != nil {
		return err
	}
	owner := c.widgetID
	handler := childSpatial.AddResizeHandler(HandlerFunc[ResizeEvent](func(_ *ResizeEvent, ctx *Context) error {
		ctx.Schedule(owner, relayoutAction)
		return nil
	}))
	if len(c.rows) == 0 {
		c.rows = append(c.rows, nil)
	}
	last := len(c.rows) - 1
	c.rows[last] = append(c.rows[last], column{child: child, alignment: alignment, resizeHandler: handler})
	ctx.Schedule(owner, relayoutAction)
	return nil
}

// Layout computes a position for every child from the container's
// current position and width and schedules the moves. Children whose
// widgets have been removed are skipped.
//
// Rows are walked top to bottom. A row's height is the tallest child in
// it; children are bottom-aligned within the row. The top margin is
// applied once above the first row and the bottom margin below every
// row, so it also spaces consecutive rows.
func (c *Container) Layout(ctx *Context) error {
	s, err := ctx.Spatial(c.widgetID)
	if err != nil {
		return err
	}
	origin := s.Position()
	width := s.PreferredSize().Width
	m := c.margins

	y := origin.Y + m.Top
	for _, row := range c.rows {
		var rowHeight, leftWidth, centerWidth, rightWidth float64
		live := 0
		for _, col := range row {
			childSpatial, err := ctx.Spatial(col.child)
			if err != nil {
				continue
			}
			size := childSpatial.PreferredSize()
			if size.Height > rowHeight {
				rowHeight = size.Height
			}
			switch col.alignment {
			case AlignLeft:
				leftWidth += size.Width
			case AlignCenter:
				centerWidth += size.Width
			case AlignRight:
				rightWidth += size.Width
			}
			live++
		}
		if live == 0 {
			continue
		}

		leftCursor := origin.X + m.Left
		rightCursor := origin.X + width - m.Right - rightWidth
		leftEnd := origin.X + m.Left + leftWidth
		centerCursor := (leftEnd+rightCursor)/2 - centerWidth/2
		for _, col := range row {
			childSpatial, err := ctx.Spatial(col.child)
			if err != nil {
				continue
			}
			size := childSpatial.PreferredSize()
			var x float64
			switch col.alignment {
			case AlignLeft:
				x = leftCursor
				leftCursor += size.Width
			case AlignCenter:
				x = centerCursor
				centerCursor += size.Width
			case AlignRight:
				x = rightCursor
				rightCursor += size.Width
			}
			ctx.Schedule(col.child, moveTo(geometry.Position{X: x, Y: y + rowHeight - size.Height}))
		}
		y += rowHeight + m.Bottom
	}
	return nil
}

// FitContent shrinks the container's preferred size around its
// children: row widths combine horizontally, rows stack vertically,
// and the margins are added on all sides. The resulting resize
// triggers a relayout.
func (c *Container) FitContent(ctx *Context) error {
	s, err := ctx.Spatial(c.widgetID)
	if err != nil {
		return err
	}
	m := c.margins
	var content geometry.Size
	liveRows := 0
	for _, row := range c.rows {
		var rowSize geometry.Size
		live := 0
		for _, col := range row {
			childSpatial, err := ctx.Spatial(col.child)
			if err != nil {
				continue
			}
			rowSize = rowSize.CombineHorizontal(childSpatial.PreferredSize())
			live++
		}
		if live == 0 {
			continue
		}
		content = content.CombineVertical(rowSize)
		liveRows++
	}
	s.SetPreferredSize(ctx, geometry.Size{
		Width:  content.Width + m.Horizontal(),
		Height: m.Top + content.Height + float64(liveRows)*m.Bottom,
	})
	return nil
}

// releaseColumns unregisters the resize handlers the container
// installed on its children. Children already removed are skipped.
func (c *Container) releaseColumns(m *Manager) {
	for _, row := range c.rows {
		for _, col := range row {
			if s, err := m.Spatial(col.child); err == nil {
				s.resizeHandlers.Remove(col.resizeHandler)
			}
		}
	}
}

// relayoutAction reruns layout on the widget it executes against. It is
// a no-op when the widget no longer has a container.
var relayoutAction = ActionFunc(func(ctx *Context) error {
	c, err := ctx.Container(ctx.WidgetID())
	if err != nil {
		return nil
	}
	return c.Layout(ctx)
})

func relayoutOnMove(_ *MoveEvent, ctx *Context) error {
	return relayoutAction(ctx)
}

func relayoutOnResize(_ *ResizeEvent, ctx *Context) error {
	return relayoutAction(ctx)
}

// moveTo places the executing widget at a fixed position, notifying
// its move handlers. Removed widgets are tolerated.
func moveTo(position geometry.Position) Action {
	return ActionFunc(func(ctx *Context) error {
		s, err := ctx.Spatial(ctx.WidgetID())
		if err != nil {
			return nil
		}
		s.SetPosition(ctx, position)
		return nil
	})
}
