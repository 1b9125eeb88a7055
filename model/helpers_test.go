package model

import (
	"strings"
	"testing"
)

// gridFromRows builds a grid from rows of '.' (dead) and 'O' (alive)
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()

	cells := make([]Cell, 0, len(rows)*len(rows))
	for _, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %q has length %d, want %d", row, len(row), len(rows))
		}
		for _, ch := range row {
			if ch == 'O' {
				cells = append(cells, Alive)
			} else {
				cells = append(cells, Dead)
			}
		}
	}

	g, err := NewGridFromCells(len(rows), cells)
	if err != nil {
		t.Fatalf("NewGridFromCells: %v", err)
	}
	return g
}

// rowsOf renders a grid back into the gridFromRows notation
func rowsOf(g *Grid) []string {
	rows := make([]string, g.Size())
	for r := range g.Size() {
		var b strings.Builder
		for c := range g.Size() {
			if g.Alive(r, c) {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// fixedSource returns the same draw forever
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
