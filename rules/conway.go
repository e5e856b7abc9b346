package rules

/*
NextState applies Conway's standard B3/S23 rule to a single cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born
with exactly 3.
*/
func NextState(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
