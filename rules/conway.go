package rules

/*
ApplyConwayRules returns the next state of a single cell under B3/S23.

A live cell survives with two or three live neighbors, a dead cell is born
with exactly three, and every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch neighbors {
	case 3:
		return true
	case 2:
		return alive
	default:
		return false
	}
}
