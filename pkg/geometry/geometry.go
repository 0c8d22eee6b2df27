// Package geometry provides the value types the widget runtime measures
// with: positions, sizes, normalized bounds, and margins.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Position represents a 2D point in pixel coordinates. Y grows
// downward; a widget's position is its top-left corner.
type Position struct {
	X float64
	Y float64
}

// Translate returns the position offset by (dx, dy).
func (p Position) Translate(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Approx reports whether two positions are approximately equal.
func (p Position) Approx(other Position) bool {
	return floatEqual(p.X, other.X) && floatEqual(p.Y, other.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// CombineHorizontal returns the size of s and other laid side by side:
// widths add, the larger height wins.
func (s Size) CombineHorizontal(other Size) Size {
	return Size{
		Width:  s.Width + other.Width,
		Height: math.Max(s.Height, other.Height),
	}
}

// CombineVertical returns the size of s and other stacked: heights add,
// the larger width wins.
func (s Size) CombineVertical(other Size) Size {
	return Size{
		Width:  math.Max(s.Width, other.Width),
		Height: s.Height + other.Height,
	}
}

// IsEmpty reports whether the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Approx reports whether two sizes are approximately equal.
func (s Size) Approx(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

// Bounds is an axis-aligned rectangle normalized so Left <= Right and
// Top <= Bottom regardless of construction order.
type Bounds struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// NewBounds constructs normalized bounds from two extents per axis,
// swapping misordered pairs.
func NewBounds(left, top, right, bottom float64) Bounds {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// BoundsAt constructs the bounds covered by a widget at position with
// the given size. Negative dimensions are normalized away.
func BoundsAt(position Position, size Size) Bounds {
	return NewBounds(position.X, position.Y, position.X+size.Width, position.Y+size.Height)
}

// Width returns the width of the bounds.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the height of the bounds.
func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Size returns the size of the bounds.
func (b Bounds) Size() Size {
	return Size{Width: b.Width(), Height: b.Height()}
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Position {
	return Position{
		X: (b.Left + b.Right) * 0.5,
		Y: (b.Top + b.Bottom) * 0.5,
	}
}

// Contains reports whether the position lies within the bounds. Edges
// count as inside.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Approx reports whether two bounds are approximately equal.
func (b Bounds) Approx(other Bounds) bool {
	return floatEqual(b.Left, other.Left) &&
		floatEqual(b.Top, other.Top) &&
		floatEqual(b.Right, other.Right) &&
		floatEqual(b.Bottom, other.Bottom)
}

// Margins represents edge insets around content. Values are stored
// non-negative.
type Margins struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewMargins constructs margins, normalizing negative values by
// absolute value.
func NewMargins(left, right, top, bottom float64) Margins {
	return Margins{
		Left:   math.Abs(left),
		Right:  math.Abs(right),
		Top:    math.Abs(top),
		Bottom: math.Abs(bottom),
	}
}

// UniformMargins constructs equal margins on all four edges.
func UniformMargins(value float64) Margins {
	return NewMargins(value, value, value, value)
}

// Horizontal returns the combined left and right margin.
func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the combined top and bottom margin.
func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

// Approx reports whether a and b are approximately equal scalars. It is
// exported for geometry assertions in tests of dependent packages.
func Approx(a, b float64) bool {
	return floatEqual(a, b)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
