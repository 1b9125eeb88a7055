package model

import (
	"context"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-frames/rules"
)

// Engine computes successive generations. Every Step reads one grid and
// writes a disjoint, freshly obtained grid, so workers never share a write
// target.
type Engine struct {
	workers int
	pool    *GridPool

	// evaluate fills next[start:end) from current
	evaluate func(ctx context.Context, current, next *Grid, start, end int) error
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers sets the number of concurrent workers. Values below 1 select
// runtime.NumCPU().
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithPool makes the engine draw output grids from pool
func WithPool(pool *GridPool) EngineOption {
	return func(e *Engine) {
		e.pool = pool
	}
}

// NewEngine creates an engine with the given options
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.NumCPU()
	}
	e.evaluate = evaluateChunk
	return e
}

// Workers returns the configured worker count
func (e *Engine) Workers() int {
	return e.workers
}

// Step returns the generation following current. On any worker failure the
// partially computed grid is discarded and only the error is returned.
func (e *Engine) Step(ctx context.Context, current *Grid) (*Grid, error) {
	next := e.nextBuffer(current)
	n := next.Len()
	if n == 0 {
		return next, nil
	}

	var (
		eg, egCtx  = errgroup.WithContext(ctx)
		numWorkers = min(e.workers, n)
		chunk      = (n + numWorkers - 1) / numWorkers // Ceiling division
	)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("[Step] worker for cells [%d, %d) panicked: %v", start, end, r)
				}
			}()
			return e.evaluate(egCtx, current, next, start, end)
		})
	}

	if err := eg.Wait(); err != nil {
		GridToPool(next, e.pool)
		return nil, fmt.Errorf("[Step] %w: %w", ErrStepFailed, err)
	}

	return next, nil
}

// StepSequential computes the next generation on the calling goroutine
func (e *Engine) StepSequential(current *Grid) *Grid {
	next := e.nextBuffer(current)
	fillChunk(current, next, 0, next.Len())
	return next
}

func (e *Engine) nextBuffer(current *Grid) *Grid {
	if e.pool != nil {
		return e.pool.Get(current.size, current.boundary)
	}
	next := newGrid(current.size, make([]Cell, len(current.cells)))
	next.boundary = current.boundary
	return next
}

// evaluateChunk fills next one row-length stretch at a time, checking for
// cancellation in between
func evaluateChunk(ctx context.Context, current, next *Grid, start, end int) error {
	stride := max(current.size, 1)
	for lo := start; lo < end; lo += stride {
		if err := ctx.Err(); err != nil {
			return err
		}
		fillChunk(current, next, lo, min(lo+stride, end))
	}
	return nil
}

func fillChunk(current, next *Grid, start, end int) {
	for i := start; i < end; i++ {
		if rules.ApplyConwayRules(current.CountNeighbors(i), current.cells[i] == Alive) {
			next.cells[i] = Alive
		} else {
			next.cells[i] = Dead
		}
	}
}
