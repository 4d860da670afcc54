package game

import "fmt"

//go:generate mockgen -source=game.go -destination=../mocks/mock_game.go -package=mocks

// View is the read-only side of a game handed to bots and renderers.
type View interface {
	Board() [][]PlayerMark
	Status() Status
}

type Game struct {
	board  [][]PlayerMark
	status Status
}

var _ View = (*Game)(nil)

// NewGame creates an empty size x size game with X to move.
func NewGame(size int) (*Game, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	board := make([][]PlayerMark, size)
	for i := range board {
		board[i] = make([]PlayerMark, size)
	}

	return &Game{
		board:  board,
		status: AwaitingX,
	}, nil
}

func (g *Game) Size() int {
	return len(g.board)
}

func (g *Game) Status() Status {
	return g.status
}

// Board returns a copy of the grid; writing to it does not affect the game.
func (g *Game) Board() [][]PlayerMark {
	return copyBoard(g.board)
}

// Move places the mark of the side to move at (row, col). The game is left
// untouched when an error is returned.
func (g *Game) Move(row, col int) (Result, error) {
	if g.status == Finished {
		return Result{}, ErrGameFinished
	}
	if row < 0 || row >= g.Size() || col < 0 || col >= g.Size() {
		return Result{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if g.board[row][col] != None {
		return Result{}, fmt.Errorf("%w: (%d, %d)", ErrCellOccupied, row, col)
	}

	mark := g.status.Mark()
	g.board[row][col] = mark

	result := CheckResult(g.board)
	switch result.Outcome {
	case Win, Draw:
		g.status = Finished
	default:
		if mark == PlayerX {
			g.status = AwaitingO
		} else {
			g.status = AwaitingX
		}
	}

	return result, nil
}

// CheckResult reports the first uniformly marked line in Lines order, then a
// draw if the board is full.
func CheckResult(board [][]PlayerMark) Result {
	for _, line := range Lines(len(board)) {
		if winner := lineWinner(board, line); winner != None {
			return Result{Outcome: Win, Winner: winner}
		}
	}

	if IsBoardFull(board) {
		return Result{Outcome: Draw}
	}

	return Result{Outcome: Continuing}
}

// IsBoardFull checks if every cell holds a mark.
func IsBoardFull(board [][]PlayerMark) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == None {
				return false
			}
		}
	}
	return true
}

func lineWinner(board [][]PlayerMark, line Line) PlayerMark {
	first := board[line[0].Row][line[0].Col]
	if first == None {
		return None
	}
	for _, pos := range line[1:] {
		if board[pos.Row][pos.Col] != first {
			return None
		}
	}
	return first
}

func copyBoard(board [][]PlayerMark) [][]PlayerMark {
	out := make([][]PlayerMark, len(board))
	for i, row := range board {
		out[i] = make([]PlayerMark, len(row))
		copy(out[i], row)
	}
	return out
}
