package model

// historyDepth is the number of recent generations remembered. A repeat
// within the last three hashes covers still lifes and period 2 and 3
// oscillators.
const historyDepth = 3

// History remembers hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{hashes: make([]string, 0, historyDepth)}
}

// Record adds a generation to the history, evicting the oldest
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether g matches one of the recorded generations and
// returns the period of the repeat
func (h *History) Repeats(g *Grid) (period int, ok bool) {
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
