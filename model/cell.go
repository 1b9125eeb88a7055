package model

// Cell is the state of a single grid position. Its numeric value is the
// contribution it makes to a neighbor count.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// String returns a short label for the cell state
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
