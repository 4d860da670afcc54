package bot

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/random"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoStrategy          = errors.New("no strategy bound to this side")
	ErrStrategyUnavailable = errors.New("strategy is not implemented")
	ErrUnknownStrategy     = errors.New("unknown strategy")
	ErrUnknownDifficulty   = errors.New("unknown difficulty")
	ErrInvariantViolation  = errors.New("board invariant violated")
)

// Difficulty selects which strategy, if any, plays the O side.
type Difficulty int

const (
	Manual Difficulty = iota
	Easy
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Manual: "manual",
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts "manual", "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range difficultyNames {
		if n == name {
			return d, nil
		}
	}
	return Manual, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Strategy is the move policy bound to a side.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyRandom
	StrategyHeuristic
	StrategyUnbeatable
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyRandom:
		return "random"
	case StrategyHeuristic:
		return "heuristic"
	case StrategyUnbeatable:
		return "unbeatable"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ForDifficulty maps a difficulty to the strategy that plays it.
func ForDifficulty(d Difficulty) (Strategy, error) {
	switch d {
	case Manual:
		return StrategyNone, nil
	case Easy:
		return StrategyRandom, nil
	case Medium:
		return StrategyHeuristic, nil
	case Hard:
		return StrategyUnbeatable, nil
	default:
		return StrategyNone, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
}

// MoveCalculator suggests moves for any strategy, drawing randomness from a
// single source.
type MoveCalculator struct {
	rnd random.Random
}

func NewMoveCalculator(rnd random.Random) *MoveCalculator {
	return &MoveCalculator{rnd: rnd}
}

// SuggestMove returns an empty in-bounds cell for the side to move in v.
// The view is only read during the call.
func (c *MoveCalculator) SuggestMove(s Strategy, v game.View) (game.Position, error) {
	if s == StrategyNone {
		return game.Position{}, ErrNoStrategy
	}

	status := v.Status()
	if status == game.Finished {
		return game.Position{}, game.ErrGameFinished
	}
	board := v.Board()

	switch s {
	case StrategyRandom:
		return randomMove(board, c.rnd)
	case StrategyHeuristic:
		return heuristicMove(board, status.Mark(), c.rnd)
	case StrategyUnbeatable:
		return game.Position{}, fmt.Errorf("%w: %s", ErrStrategyUnavailable, s)
	default:
		return game.Position{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}
