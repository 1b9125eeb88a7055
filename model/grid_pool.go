package model

import "sync"

// GridToPool returns a grid the caller no longer needs to the pool
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles cell buffers of discarded generations
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get returns a dead grid of the given size, reusing a pooled buffer when its
// capacity allows
func (p *GridPool) Get(size int, boundary Boundary) *Grid {
	g := p.pool.Get().(*Grid)
	n := size * size
	if cap(g.cells) >= n {
		g.cells = g.cells[:n]
		g.clear()
	} else {
		g.cells = make([]Cell, n)
	}
	g.size = size
	g.offsets = neighborOffsets(size)
	g.boundary = boundary
	return g
}

// Put hands a grid back for reuse. The grid must not be read afterwards.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}
