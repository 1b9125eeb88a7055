package utils

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/gol-frames/export"
	"github.com/sheikhrachel/gol-frames/model"
)

// ErrInvalidConfig is returned when a config value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// configError ties a validation failure to ErrInvalidConfig while keeping
// the underlying cause in the chain
type configError struct {
	cause error
}

func invalidConfig(cause error) error {
	return &configError{cause: cause}
}

func (e *configError) Error() string { return e.cause.Error() }

func (e *configError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *configError) Unwrap() error { return e.cause }

// Render modes
const (
	RenderPNG      = "png"
	RenderTerminal = "terminal"
	RenderBoth     = "both"
	RenderNone     = "none"
)

// Config holds the configuration for a simulation run
type Config struct {
	GridSize         int           `yaml:"grid_size"`
	Steps            int           `yaml:"steps"`
	Threshold        float64       `yaml:"threshold"`
	Seed             *int64        `yaml:"seed"`
	OutputDir        string        `yaml:"output_dir"`
	Workers          int           `yaml:"workers"`
	Render           string        `yaml:"render"`
	Boundary         string        `yaml:"boundary"`
	StopWhenStagnant bool          `yaml:"stop_when_stagnant"`
	UseMemoryPool    bool          `yaml:"use_memory_pool"`
	FrameDelay       time.Duration `yaml:"frame_delay"`
	Image            ImageConfig   `yaml:"image"`
}

// ImageConfig holds PNG rendering settings. Colors are #rrggbbaa hex strings.
type ImageConfig struct {
	BoxSize    float64 `yaml:"box_size"`
	LineWidth  float64 `yaml:"line_width"`
	Background string  `yaml:"background"`
	GridLines  string  `yaml:"grid_lines"`
	Alive      string  `yaml:"alive"`
}

// DefaultConfig returns sensible defaults. Grid size, steps and threshold
// have no useful default and are expected from flags or a config file.
func DefaultConfig() Config {
	img := export.DefaultImageExportConfig()
	return Config{
		OutputDir:     "output",
		Render:        RenderPNG,
		Boundary:      model.BoundaryStrict.String(),
		UseMemoryPool: true,
		FrameDelay:    0,
		Image: ImageConfig{
			BoxSize:    img.BoxSize,
			LineWidth:  img.LineWidth,
			Background: HexColor(img.Background),
			GridLines:  HexColor(img.GridLines),
			Alive:      HexColor(img.Alive),
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks every field for a usable value
func (c Config) Validate() error {
	switch {
	case c.GridSize < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size must not be negative, got %d", c.GridSize)
	case c.Steps < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] steps must not be negative, got %d", c.Steps)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	case c.FrameDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame delay must not be negative, got %v", c.FrameDelay)
	}

	if err := model.ValidateThreshold(c.Threshold); err != nil {
		return invalidConfig(errors.Wrap(err, "[Validate]"))
	}

	switch c.Render {
	case RenderPNG, RenderTerminal, RenderBoth, RenderNone:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown render mode: %q", c.Render)
	}

	if _, err := c.BoundaryPolicy(); err != nil {
		return err
	}

	if _, err := c.ExportConfig(); err != nil {
		return invalidConfig(errors.Wrap(err, "[Validate]"))
	}

	return nil
}

// BoundaryPolicy returns the neighbor boundary named by the config
func (c Config) BoundaryPolicy() (model.Boundary, error) {
	switch strings.ToLower(c.Boundary) {
	case "", model.BoundaryStrict.String():
		return model.BoundaryStrict, nil
	case model.BoundaryLegacy.String():
		return model.BoundaryLegacy, nil
	default:
		return model.BoundaryStrict, errors.Wrapf(ErrInvalidConfig, "[BoundaryPolicy] unknown boundary: %q", c.Boundary)
	}
}

// ExportConfig converts the image section into exporter settings
func (c Config) ExportConfig() (export.ImageExportConfig, error) {
	cfg := export.ImageExportConfig{
		BoxSize:   c.Image.BoxSize,
		LineWidth: c.Image.LineWidth,
	}

	var err error
	if cfg.Background, err = ParseHexColor(c.Image.Background); err != nil {
		return cfg, errors.Wrap(err, "[ExportConfig] background")
	}
	if cfg.GridLines, err = ParseHexColor(c.Image.GridLines); err != nil {
		return cfg, errors.Wrap(err, "[ExportConfig] grid lines")
	}
	if cfg.Alive, err = ParseHexColor(c.Image.Alive); err != nil {
		return cfg, errors.Wrap(err, "[ExportConfig] alive")
	}

	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "[ExportConfig]")
	}
	return cfg, nil
}

// RendersPNG reports whether frames are written to disk
func (c Config) RendersPNG() bool {
	return c.Render == RenderPNG || c.Render == RenderBoth
}

// RendersTerminal reports whether frames are drawn on the terminal
func (c Config) RendersTerminal() bool {
	return c.Render == RenderTerminal || c.Render == RenderBoth
}

// ParseHexColor parses #rrggbb or #rrggbbaa
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, errors.Errorf("[ParseHexColor] malformed color: %q", s)
	}
	if err != nil {
		return c, errors.Wrapf(err, "[ParseHexColor] malformed color: %q", s)
	}
	return c, nil
}

// HexColor formats c as #rrggbbaa
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
