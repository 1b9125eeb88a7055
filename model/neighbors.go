package model

// Boundary selects how neighbor candidates near the edges are filtered.
// Neither policy wraps around the board.
type Boundary int

const (
	// BoundaryStrict accepts a candidate only if it lies on the board in an
	// adjacent row and an adjacent column. The column check goes beyond the
	// row-only filter on purpose: without it column 0 and the last column of
	// a row see each other through the flat array.
	BoundaryStrict Boundary = iota
	// BoundaryLegacy reproduces the historical filter: index 0 is never a
	// neighbor and only row adjacency is checked, so the first and last
	// columns of a row see each other through the flat array.
	BoundaryLegacy
)

// String returns the policy name used in config files and flags
func (b Boundary) String() string {
	if b == BoundaryLegacy {
		return "legacy"
	}
	return "strict"
}

// neighborOffsets returns the Moore neighborhood plus the self offset as
// linear index deltas for a board of the given side length
func neighborOffsets(size int) [9]int {
	return [9]int{
		-size - 1, -size, -size + 1,
		-1, 0, 1,
		size - 1, size, size + 1,
	}
}

// accept reports whether candidate c is a valid neighbor of cell i
func (g *Grid) accept(i, c int) bool {
	if c == i || c >= len(g.cells) {
		return false
	}

	rowDiff := c/g.size - i/g.size
	if rowDiff < -1 || rowDiff > 1 {
		return false
	}

	if g.boundary == BoundaryLegacy {
		return c > 0
	}
	if c < 0 {
		return false
	}
	colDiff := c%g.size - i%g.size
	return colDiff >= -1 && colDiff <= 1
}

// Neighbors returns the linear indices of every valid neighbor of cell i
func (g *Grid) Neighbors(i int) []int {
	ns := make([]int, 0, 8)
	for _, d := range g.offsets {
		if c := i + d; g.accept(i, c) {
			ns = append(ns, c)
		}
	}
	return ns
}

// CountNeighbors returns the number of living neighbors of cell i
func (g *Grid) CountNeighbors(i int) (count int) {
	for _, d := range g.offsets {
		if c := i + d; g.accept(i, c) {
			count += int(g.cells[c])
		}
	}
	return
}
