package model

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Grid is one generation of a square, non-wrapping board. Cells are stored
// row-major: index = row*size + col.
type Grid struct {
	size     int
	cells    []Cell
	offsets  [9]int
	boundary Boundary
}

// GridOption configures a grid at construction time
type GridOption func(*Grid)

// WithBoundary selects the neighbor boundary policy
func WithBoundary(b Boundary) GridOption {
	return func(g *Grid) {
		g.boundary = b
	}
}

// NewEmptyGrid allocates a size*size grid of dead cells
func NewEmptyGrid(size int, opts ...GridOption) (*Grid, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrNegativeSize, "[NewEmptyGrid] size: %d", size)
	}
	if size > 0 && size > math.MaxInt/size {
		return nil, errors.Wrapf(ErrGridTooLarge, "[NewEmptyGrid] size: %d", size)
	}

	g := newGrid(size, make([]Cell, size*size))
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewGrid allocates a grid and seeds every cell alive with probability threshold
func NewGrid(size int, threshold float64, src RandomSource, opts ...GridOption) (*Grid, error) {
	if err := ValidateThreshold(threshold); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}

	g, err := NewEmptyGrid(size, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	seed(g, threshold, src)
	return g, nil
}

// NewGridFromCells builds a grid from explicit row-major cell values. The
// slice is copied.
func NewGridFromCells(size int, cells []Cell, opts ...GridOption) (*Grid, error) {
	g, err := NewEmptyGrid(size, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGridFromCells]")
	}
	if len(cells) != len(g.cells) {
		return nil, errors.Wrapf(ErrCellCount, "[NewGridFromCells] got %d cells for size %d", len(cells), size)
	}
	copy(g.cells, cells)
	return g, nil
}

func newGrid(size int, cells []Cell) *Grid {
	return &Grid{
		size:    size,
		cells:   cells,
		offsets: neighborOffsets(size),
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells, size*size
func (g *Grid) Len() int {
	return len(g.cells)
}

// Boundary returns the neighbor boundary policy of the grid
func (g *Grid) Boundary() Boundary {
	return g.boundary
}

// Get returns the cell at row, col. Coordinates must be within [0, size).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[row*g.size+col]
}

// Alive reports whether the cell at row, col is alive
func (g *Grid) Alive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// CountAlive returns the total number of living cells
func (g *Grid) CountAlive() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Hash returns an MD5 digest of the cell contents
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same size and cell contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// clear resets every cell to dead
func (g *Grid) clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}
