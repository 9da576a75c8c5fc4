package engine

// BuildKeyboard lays buttons out into a grid with the given number of
// columns, left to right, wrapping to a new row every columns items.
// Input order is preserved row-major. A columns value below 1 is
// treated as 1. The result is deterministic, so repeated edits of the
// same keyboard are idempotent.
func BuildKeyboard(buttons []Button, columns int) [][]Button {
	if columns < 1 {
		columns = 1
	}

	var grid [][]Button
	for i := 0; i < len(buttons); i += columns {
		end := i + columns
		if end > len(buttons) {
			end = len(buttons)
		}
		grid = append(grid, buttons[i:end])
	}
	return grid
}
