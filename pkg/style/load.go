package style

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-facet/facet/pkg/geometry"
)

// styleConfig is the raw YAML model. Loaded values pass through
// resolve, which validates and normalizes them into a Style.
type styleConfig struct {
	Button    buttonConfig    `yaml:"button"`
	Container containerConfig `yaml:"container"`
	FontName  string          `yaml:"font_name,omitempty"`
	FontSize  *float64        `yaml:"font_size,omitempty"`
}

type buttonConfig struct {
	Background *colorConfig   `yaml:"background,omitempty"`
	Foreground *colorConfig   `yaml:"foreground,omitempty"`
	Margins    *marginsConfig `yaml:"margins,omitempty"`
}

type containerConfig struct {
	Margins *marginsConfig `yaml:"margins,omitempty"`
}

type colorConfig struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
	Alpha float64 `yaml:"alpha"`
}

type marginsConfig struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Load reads and validates a style sheet from path.
func Load(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style: %w", err)
	}
	return Parse(data)
}

// LoadOptional reads a style sheet if present, falling back to
// Default() when the file does not exist.
func LoadOptional(path string) (*Style, error) {
	st, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return st, nil
}

// Parse validates a YAML style sheet held in memory.
func Parse(data []byte) (*Style, error) {
	var cfg styleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse style: %w", err)
	}
	return cfg.resolve()
}

// resolve applies defaults for absent fields and validates the rest.
// Field paths in error messages mirror the YAML structure.
func (c *styleConfig) resolve() (*Style, error) {
	st := Default()

	if c.Button.Background != nil {
		col, err := c.Button.Background.resolve("button/background")
		if err != nil {
			return nil, err
		}
		st.Button.Background = col
	}
	if c.Button.Foreground != nil {
		col, err := c.Button.Foreground.resolve("button/foreground")
		if err != nil {
			return nil, err
		}
		st.Button.Foreground = col
	}
	if c.Button.Margins != nil {
		st.Button.Margins = c.Button.Margins.resolve()
	}
	if c.Container.Margins != nil {
		st.Container.Margins = c.Container.Margins.resolve()
	}
	if c.FontName != "" {
		st.FontName = c.FontName
	}
	if c.FontSize != nil {
		if *c.FontSize <= 0 {
			return nil, fmt.Errorf("style: font_size must be positive, got %v", *c.FontSize)
		}
		st.FontSize = *c.FontSize
	}
	return st, nil
}

func (c *colorConfig) resolve(path string) (Color, error) {
	for _, ch := range []struct {
		name  string
		value float64
	}{
		{"red", c.Red}, {"green", c.Green}, {"blue", c.Blue}, {"alpha", c.Alpha},
	} {
		if ch.value < 0 {
			return Color{}, fmt.Errorf("style: %s/%s must not be negative, got %v", path, ch.name, ch.value)
		}
	}
	return NewColor(c.Red, c.Green, c.Blue, c.Alpha), nil
}

func (c *marginsConfig) resolve() geometry.Margins {
	return geometry.NewMargins(c.Left, c.Right, c.Top, c.Bottom)
}
