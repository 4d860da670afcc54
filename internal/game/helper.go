package game

import "errors"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"
)

// Board size limits. Coordinates are typed as single digits.
const (
	MinSize = 3
	MaxSize = 9
)

var (
	ErrInvalidSize  = errors.New("board size must be a single digit >= 3")
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrGameFinished = errors.New("game already finished")
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Symbol is the lowercase character used when printing a cell.
func (m PlayerMark) Symbol() rune {
	switch m {
	case PlayerX:
		return 'x'
	case PlayerO:
		return 'o'
	default:
		return ' '
	}
}

// Status is derived from the board after every accepted move.
type Status int

const (
	AwaitingX Status = iota
	AwaitingO
	Finished
)

func (s Status) String() string {
	switch s {
	case AwaitingX:
		return "awaiting_x"
	case AwaitingO:
		return "awaiting_o"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Mark returns the mark of the side to move, or None once the game is over.
func (s Status) Mark() PlayerMark {
	switch s {
	case AwaitingX:
		return PlayerX
	case AwaitingO:
		return PlayerO
	default:
		return None
	}
}

// Outcome is the terminal condition reached after a move.
type Outcome int

const (
	Continuing Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Result is returned by every accepted move. Winner is set only for Win.
type Result struct {
	Outcome Outcome
	Winner  PlayerMark
}

// Position addresses a single cell.
type Position struct {
	Row int
	Col int
}
