package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// RandomSource supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a deterministic PCG generator for the given seed
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// ValidateThreshold checks that a seed probability lies within [0.0, 1.0]
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return errors.Wrapf(ErrInvalidThreshold, "[ValidateThreshold] threshold: %v", threshold)
	}
	return nil
}

// seed sets each cell alive independently with probability threshold. One
// draw is taken per cell, in index order.
func seed(g *Grid, threshold float64, src RandomSource) {
	for i := range g.cells {
		if v := src.Float64(); threshold >= 1 || v < threshold {
			g.cells[i] = Alive
		}
	}
}
