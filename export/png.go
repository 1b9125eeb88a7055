// Package export rasterizes generations into PNG frames.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-frames/model"
)

// ErrInvalidExportConfig is returned for unusable rendering settings
var ErrInvalidExportConfig = errors.New("invalid image export config")

// FramePattern names one frame per generation inside the output directory
const FramePattern = "game_of_life_%05d.png"

// ImageExportConfig describes how a grid is drawn
type ImageExportConfig struct {
	BoxSize    float64
	LineWidth  float64
	Background color.NRGBA
	GridLines  color.NRGBA
	Alive      color.NRGBA
}

// DefaultImageExportConfig returns 10px cells, 1px lines, a white background,
// translucent navy grid lines and blue live cells
func DefaultImageExportConfig() ImageExportConfig {
	return ImageExportConfig{
		BoxSize:    10,
		LineWidth:  1,
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GridLines:  color.NRGBA{R: 0x00, G: 0x00, B: 0x80, A: 0x80},
		Alive:      color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	}
}

// Validate checks the geometry of the config
func (c ImageExportConfig) Validate() error {
	if !(c.BoxSize > 0) || math.IsInf(c.BoxSize, 0) {
		return errors.Wrapf(ErrInvalidExportConfig, "[Validate] box size must be positive, got %v", c.BoxSize)
	}
	if !(c.LineWidth >= 0) || math.IsInf(c.LineWidth, 0) {
		return errors.Wrapf(ErrInvalidExportConfig, "[Validate] line width must not be negative, got %v", c.LineWidth)
	}
	return nil
}

// ImageSize returns the side length in pixels of the frame for a grid of
// the given size
func (c ImageExportConfig) ImageSize(gridSize int) int {
	return int(float64(gridSize)*c.BoxSize + c.LineWidth)
}

// PNGExporter writes one PNG image per generation
type PNGExporter struct {
	cfg ImageExportConfig
}

// NewPNGExporter validates cfg and returns an exporter for it
func NewPNGExporter(cfg ImageExportConfig) (*PNGExporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewPNGExporter]")
	}
	return &PNGExporter{cfg: cfg}, nil
}

// FrameName returns the path of generation n's frame inside dir
func FrameName(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf(FramePattern, n))
}

// Render draws g: background, then grid lines, then live cells on top
func (e *PNGExporter) Render(g *model.Grid) *image.NRGBA {
	side := e.cfg.ImageSize(g.Size())
	img := image.NewNRGBA(image.Rect(0, 0, side, side))

	draw.Draw(img, img.Bounds(), image.NewUniform(e.cfg.Background), image.Point{}, draw.Src)

	// lines are collected in a mask so crossings are blended only once
	width := max(int(math.Round(e.cfg.LineWidth)), 0)
	if width > 0 {
		mask := image.NewAlpha(img.Bounds())
		for n := 0; n <= g.Size(); n++ {
			pos := int(float64(n) * e.cfg.BoxSize)
			draw.Draw(mask, image.Rect(0, pos, side, pos+width), image.Opaque, image.Point{}, draw.Src)
			draw.Draw(mask, image.Rect(pos, 0, pos+width, side), image.Opaque, image.Point{}, draw.Src)
		}
		draw.DrawMask(img, img.Bounds(), image.NewUniform(e.cfg.GridLines), image.Point{}, mask, image.Point{}, draw.Over)
	}

	alive := image.NewUniform(e.cfg.Alive)
	for row := range g.Size() {
		for col := range g.Size() {
			if !g.Alive(row, col) {
				continue
			}
			x0 := int(float64(col) * e.cfg.BoxSize)
			y0 := int(float64(row) * e.cfg.BoxSize)
			x1 := int(float64(col+1) * e.cfg.BoxSize)
			y1 := int(float64(row+1) * e.cfg.BoxSize)
			draw.Draw(img, image.Rect(x0, y0, x1, y1), alive, image.Point{}, draw.Over)
		}
	}

	return img
}

// Encode writes g to w as a PNG image
func (e *PNGExporter) Encode(w io.Writer, g *model.Grid) error {
	if err := png.Encode(w, e.Render(g)); err != nil {
		return errors.Wrap(err, "[Encode] failed to encode png")
	}
	return nil
}

// Save writes g to path as a PNG image, creating parent directories
func (e *PNGExporter) Save(path string, g *model.Grid) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "[Save] failed to create directory for: %+v", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[Save] failed to close file: %+v", path)
		}
	}()

	return e.Encode(f, g)
}
