// Package style provides the visual configuration consumed at widget
// decoration time: colors, margins, and font references, loaded from
// YAML.
//
// The runtime core reads a Style once during construction and never
// re-reads it; renderers read colors and fonts from the capability
// records each frame.
package style

import (
	"github.com/go-facet/facet/pkg/geometry"
)

// Color is a normalized RGBA color. Channel values live in [0, 1];
// the zero value is fully transparent black.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// NewColor creates a color, clamping channel values above 1 down to 1.
func NewColor(r, g, b, a float64) Color {
	return Color{R: clamp1(r), G: clamp1(g), B: clamp1(b), A: clamp1(a)}
}

// RGBA8 returns the color scaled to 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255), uint8(c.A * 255)
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

// ButtonStyle describes how buttons are sized and painted.
type ButtonStyle struct {
	// Background is the fill color.
	Background Color
	// Foreground is the label color.
	Foreground Color
	// Margins pad the label or icon inside the button bounds.
	Margins geometry.Margins
}

// ContainerStyle describes the insets containers lay children out with.
type ContainerStyle struct {
	// Margins inset child rows from the container edges; Bottom also
	// spaces consecutive rows.
	Margins geometry.Margins
}

// Style is the complete widget style sheet.
type Style struct {
	Button    ButtonStyle
	Container ContainerStyle
	// FontName names the face registered with the font manager.
	FontName string
	// FontSize is the label size in pixels.
	FontSize float64
}

// Default returns the built-in style used when no configuration file is
// present.
func Default() *Style {
	return &Style{
		Button: ButtonStyle{
			Background: NewColor(0.25, 0.27, 0.35, 1),
			Foreground: NewColor(1, 1, 1, 1),
			Margins:    geometry.NewMargins(8, 8, 4, 4),
		},
		Container: ContainerStyle{
			Margins: geometry.UniformMargins(4),
		},
		FontName: "default",
		FontSize: 14,
	}
}
