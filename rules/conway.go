package rules

/*
Next applies Conway's Game of Life rules to a single cell given its live neighbor count.

	alive && neighbors < 2  -> dies
	alive && neighbors > 3  -> dies
	!alive && neighbors == 3 -> born
	otherwise the cell keeps its state
*/
func Next(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
