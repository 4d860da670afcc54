package bot

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/random"
	"fmt"
)

// randomMove picks uniformly among the empty cells, listed row-major.
func randomMove(board [][]game.PlayerMark, rnd random.Random) (game.Position, error) {
	var availableMoves []game.Position
	for r, rowData := range board {
		for c, cell := range rowData {
			if cell == game.None {
				availableMoves = append(availableMoves, game.Position{Row: r, Col: c})
			}
		}
	}

	if len(availableMoves) == 0 {
		return game.Position{}, fmt.Errorf("%w: no empty cell on an unfinished board", ErrInvariantViolation)
	}

	return availableMoves[rnd.IntN(len(availableMoves))], nil
}

// heuristicMove will win if it can, block if it must, otherwise move randomly.
func heuristicMove(board [][]game.PlayerMark, botMark game.PlayerMark, rnd random.Random) (game.Position, error) {
	// 1. Win
	pos, canWin, err := findWinningMove(board, botMark)
	if err != nil || canWin {
		return pos, err
	}

	// 2. Block
	pos, canBlock, err := findWinningMove(board, botMark.Opponent())
	if err != nil || canBlock {
		return pos, err
	}

	// 3. Random
	return randomMove(board, rnd)
}

// findWinningMove returns the empty cell of the first line holding size-1
// cells of mark and one empty cell.
func findWinningMove(board [][]game.PlayerMark, mark game.PlayerMark) (game.Position, bool, error) {
	for _, line := range game.Lines(len(board)) {
		if !almostComplete(board, line, mark) {
			continue
		}

		for _, pos := range line {
			if board[pos.Row][pos.Col] == game.None {
				return pos, true, nil
			}
		}
		return game.Position{}, false, fmt.Errorf("%w: line %v has no empty cell", ErrInvariantViolation, line)
	}

	return game.Position{}, false, nil
}

func almostComplete(board [][]game.PlayerMark, line game.Line, mark game.PlayerMark) bool {
	marked, empty := 0, 0
	for _, pos := range line {
		switch board[pos.Row][pos.Col] {
		case game.None:
			empty++
		case mark:
			marked++
		}
	}
	return empty == 1 && marked == len(line)-1
}
