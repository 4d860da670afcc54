package game

// Line is an ordered run of positions spanning the board.
type Line []Position

// Lines returns every row top to bottom, every column left to right, then the
// primary and secondary diagonals of a size x size board.
func Lines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for r := range size {
		line := make(Line, size)
		for c := range size {
			line[c] = Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}

	for c := range size {
		line := make(Line, size)
		for r := range size {
			line[r] = Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}

	diagonal := make(Line, size)
	antiDiagonal := make(Line, size)
	for i := range size {
		diagonal[i] = Position{Row: i, Col: i}
		antiDiagonal[i] = Position{Row: i, Col: size - i - 1}
	}

	return append(lines, diagonal, antiDiagonal)
}
