// Package text resolves font faces and measures label extents. Button
// preferred sizes are derived from these measurements plus style
// margins.
package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-facet/facet/pkg/geometry"
)

// DefaultFontName is the name the bundled fallback face is registered
// under.
const DefaultFontName = "default"

// FontManager resolves font faces by name. The zero value is not
// usable; construct with NewFontManager or use Default.
type FontManager struct {
	mu    sync.RWMutex
	faces map[string]font.Face
}

// NewFontManager creates a font manager holding only the bundled
// fallback face.
func NewFontManager() *FontManager {
	return &FontManager{
		faces: map[string]font.Face{DefaultFontName: basicfont.Face7x13},
	}
}

var (
	defaultManager     *FontManager
	defaultManagerOnce sync.Once
)

// Default returns the shared font manager.
func Default() *FontManager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewFontManager()
	})
	return defaultManager
}

// Register parses OpenType/TrueType data and registers a face under
// name at the given pixel size.
func (m *FontManager) Register(name string, data []byte, size float64) error {
	if size <= 0 {
		return fmt.Errorf("text: face %q: size must be positive, got %v", name, size)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: parse face %q: %w", name, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("text: create face %q: %w", name, err)
	}
	m.mu.Lock()
	m.faces[name] = face
	m.mu.Unlock()
	return nil
}

// Face resolves a registered face by name.
func (m *FontManager) Face(name string) (font.Face, error) {
	m.mu.RLock()
	face, ok := m.faces[name]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("text: no face registered as %q", name)
	}
	return face, nil
}

// Measure returns the extents of a single line of text in the given
// face. The height is the face's line height, so empty strings still
// measure one line tall.
func Measure(face font.Face, s string) geometry.Size {
	metrics := face.Metrics()
	return geometry.Size{
		Width:  fixedToFloat(font.MeasureString(face, s)),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

// LabelSize measures a label and pads it with margins, producing the
// preferred size of a widget wrapping that label.
func LabelSize(face font.Face, label string, margins geometry.Margins) geometry.Size {
	measured := Measure(face, label)
	return geometry.Size{
		Width:  measured.Width + margins.Horizontal(),
		Height: measured.Height + margins.Vertical(),
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
