package utils

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-frames/export"
	"github.com/sheikhrachel/gol-frames/model"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.GridSize = 50
	cfg.Steps = 20
	cfg.Threshold = 0.3
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	g.Expect(cfg.OutputDir).To(Equal("output"))
	g.Expect(cfg.Render).To(Equal(RenderPNG))
	g.Expect(cfg.UseMemoryPool).To(BeTrue())
	g.Expect(cfg.Seed).To(BeNil())
	g.Expect(cfg.Validate()).To(Succeed())

	img, err := cfg.ExportConfig()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(img).To(Equal(export.DefaultImageExportConfig()))

	boundary, err := cfg.BoundaryPolicy()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(boundary).To(Equal(model.BoundaryStrict))
}

func TestLoadConfig(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "gol.yaml")
	data := []byte(`
grid_size: 64
steps: 100
threshold: 0.25
seed: 7
render: both
boundary: legacy
stop_when_stagnant: true
frame_delay: 150ms
image:
  box_size: 6
  alive: "#ff0000"
`)
	g.Expect(os.WriteFile(path, data, 0o644)).To(Succeed())

	cfg, err := LoadConfig(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.GridSize).To(Equal(64))
	g.Expect(cfg.Steps).To(Equal(100))
	g.Expect(cfg.Threshold).To(Equal(0.25))
	g.Expect(cfg.Seed).NotTo(BeNil())
	g.Expect(*cfg.Seed).To(Equal(int64(7)))
	g.Expect(cfg.RendersPNG()).To(BeTrue())
	g.Expect(cfg.RendersTerminal()).To(BeTrue())
	g.Expect(cfg.StopWhenStagnant).To(BeTrue())
	g.Expect(cfg.FrameDelay).To(Equal(150 * time.Millisecond))

	// untouched keys keep their defaults
	g.Expect(cfg.OutputDir).To(Equal("output"))
	g.Expect(cfg.Image.LineWidth).To(Equal(1.0))

	boundary, err := cfg.BoundaryPolicy()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(boundary).To(Equal(model.BoundaryLegacy))

	img, err := cfg.ExportConfig()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(img.BoxSize).To(Equal(6.0))
	g.Expect(img.Alive).To(Equal(color.NRGBA{R: 0xff, A: 0xff}))
}

func TestLoadConfigErrors(t *testing.T) {
	g := NewWithT(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(MatchError(ContainSubstring("[LoadConfig] failed to read file")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	g.Expect(os.WriteFile(path, []byte("grid_size: [1, 2"), 0o644)).To(Succeed())
	_, err = LoadConfig(path)
	g.Expect(err).To(MatchError(ContainSubstring("[LoadConfig] failed to unmarshal")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative grid size", func(c *Config) { c.GridSize = -1 }},
		{"negative steps", func(c *Config) { c.Steps = -3 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"negative frame delay", func(c *Config) { c.FrameDelay = -time.Second }},
		{"threshold below range", func(c *Config) { c.Threshold = -0.1 }},
		{"threshold above range", func(c *Config) { c.Threshold = 1.1 }},
		{"unknown render", func(c *Config) { c.Render = "gif" }},
		{"unknown boundary", func(c *Config) { c.Boundary = "torus" }},
		{"bad color", func(c *Config) { c.Image.Alive = "blue" }},
		{"zero box size", func(c *Config) { c.Image.BoxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			cfg := validConfig()
			g.Expect(cfg.Validate()).To(Succeed())

			tt.mutate(&cfg)
			err := cfg.Validate()
			g.Expect(err).To(HaveOccurred())
			g.Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
		})
	}
}

func TestValidateKeepsCause(t *testing.T) {
	g := NewWithT(t)

	cfg := validConfig()
	cfg.Threshold = 2
	err := cfg.Validate()
	g.Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	g.Expect(errors.Is(err, model.ErrInvalidThreshold)).To(BeTrue())
	g.Expect(err.Error()).To(HavePrefix("[Validate]"))

	cfg = validConfig()
	cfg.Image.BoxSize = -1
	err = cfg.Validate()
	g.Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	g.Expect(errors.Is(err, export.ErrInvalidExportConfig)).To(BeTrue())
}

func TestParseHexColor(t *testing.T) {
	g := NewWithT(t)

	c, err := ParseHexColor("#00008080")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(c).To(Equal(color.NRGBA{B: 0x80, A: 0x80}))

	c, err = ParseHexColor("ffffff")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(c).To(Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	g.Expect(HexColor(c)).To(Equal("#ffffffff"))

	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err = ParseHexColor(bad)
		g.Expect(err).To(HaveOccurred(), "color %q", bad)
	}
}
