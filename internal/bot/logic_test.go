package bot

import (
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/random"
	"errors"
	"testing"
)

const (
	x = game.PlayerX
	o = game.PlayerO
	n = game.None
)

// moveIn is a helper function to check if a move is in a list of expected moves.
func moveIn(move game.Position, list []game.Position) bool {
	for _, item := range list {
		if item == move {
			return true
		}
	}
	return false
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     [][]game.PlayerMark
		mark      game.PlayerMark
		want      game.Position
		wantFound bool
	}{
		{
			name:  "No winning move - empty board",
			board: [][]game.PlayerMark{{n, n, n}, {n, n, n}, {n, n, n}},
			mark:  x,
		},
		{
			name:      "X can win - first row",
			board:     [][]game.PlayerMark{{x, x, n}, {o, o, n}, {n, n, n}},
			mark:      x,
			want:      game.Position{Row: 0, Col: 2},
			wantFound: true,
		},
		{
			name:      "O can win - second row scanned after first",
			board:     [][]game.PlayerMark{{x, x, n}, {o, o, n}, {n, n, n}},
			mark:      o,
			want:      game.Position{Row: 1, Col: 2},
			wantFound: true,
		},
		{
			name:      "O can win - second column",
			board:     [][]game.PlayerMark{{x, o, n}, {x, o, n}, {n, n, n}},
			mark:      o,
			want:      game.Position{Row: 2, Col: 1},
			wantFound: true,
		},
		{
			name:      "X can win - gap in the middle of a row",
			board:     [][]game.PlayerMark{{n, n, n}, {x, n, x}, {o, n, o}},
			mark:      x,
			want:      game.Position{Row: 1, Col: 1},
			wantFound: true,
		},
		{
			name:      "X can win - main diagonal",
			board:     [][]game.PlayerMark{{x, n, n}, {n, x, n}, {n, n, n}},
			mark:      x,
			want:      game.Position{Row: 2, Col: 2},
			wantFound: true,
		},
		{
			name:      "O can win - anti-diagonal",
			board:     [][]game.PlayerMark{{n, n, o}, {n, o, n}, {n, n, n}},
			mark:      o,
			want:      game.Position{Row: 2, Col: 0},
			wantFound: true,
		},
		{
			name:  "Blocked line does not count",
			board: [][]game.PlayerMark{{x, o, x}, {n, n, n}, {n, n, n}},
			mark:  x,
		},
		{
			name:  "Full board, no win possible",
			board: [][]game.PlayerMark{{x, o, x}, {o, x, o}, {o, x, o}},
			mark:  x,
		},
		{
			name: "Four by four needs three of four",
			board: [][]game.PlayerMark{
				{x, x, n, n},
				{o, o, o, n},
				{n, n, n, n},
				{n, n, n, n},
			},
			mark:      o,
			want:      game.Position{Row: 1, Col: 3},
			wantFound: true,
		},
		{
			name: "Four by four with two gaps is not close",
			board: [][]game.PlayerMark{
				{x, x, n, n},
				{n, n, n, n},
				{n, n, n, n},
				{n, n, n, n},
			},
			mark: x,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := findWinningMove(tt.board, tt.mark)
			if err != nil {
				t.Fatalf("findWinningMove() unexpected error: %v", err)
			}
			if found != tt.wantFound || (found && got != tt.want) {
				t.Errorf("findWinningMove() got (%v, %v), want (%v, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestRandomMove(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		board := [][]game.PlayerMark{{x, o, x}, {o, x, o}, {x, n, o}}

		got, err := randomMove(board, random.NewSeeded(1))
		if err != nil {
			t.Fatalf("randomMove() unexpected error: %v", err)
		}
		if got != (game.Position{Row: 2, Col: 1}) {
			t.Errorf("randomMove should pick the only available spot (2,1), but got %v", got)
		}
	})

	t.Run("Multiple spots left - always valid", func(t *testing.T) {
		board := [][]game.PlayerMark{{x, n, n}, {n, o, n}, {n, n, x}}
		valid := []game.Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
		rnd := random.NewSeeded(7)

		seen := make(map[game.Position]bool)
		for range 200 {
			got, err := randomMove(board, rnd)
			if err != nil {
				t.Fatalf("randomMove() unexpected error: %v", err)
			}
			if !moveIn(got, valid) {
				t.Fatalf("randomMove() picked occupied cell %v", got)
			}
			seen[got] = true
		}
		if len(seen) != len(valid) {
			t.Errorf("randomMove() reached %d of %d empty cells in 200 draws", len(seen), len(valid))
		}
	})

	t.Run("Same seed, same moves", func(t *testing.T) {
		board := [][]game.PlayerMark{{n, n, n}, {n, n, n}, {n, n, n}}
		a, b := random.NewSeeded(99), random.NewSeeded(99)
		for range 20 {
			ma, _ := randomMove(board, a)
			mb, _ := randomMove(board, b)
			if ma != mb {
				t.Fatalf("seeded sources diverged: %v vs %v", ma, mb)
			}
		}
	})

	t.Run("Full board is an invariant violation", func(t *testing.T) {
		board := [][]game.PlayerMark{{x, o, x}, {o, x, o}, {o, x, o}}

		_, err := randomMove(board, random.NewSeeded(1))
		if !errors.Is(err, ErrInvariantViolation) {
			t.Errorf("randomMove() error = %v, want %v", err, ErrInvariantViolation)
		}
	})
}

func TestHeuristicMove(t *testing.T) {
	tests := []struct {
		name  string
		board [][]game.PlayerMark
		mark  game.PlayerMark
		want  game.Position
	}{
		{
			name:  "Takes the win",
			board: [][]game.PlayerMark{{x, x, n}, {o, o, n}, {n, n, n}},
			mark:  o,
			want:  game.Position{Row: 1, Col: 2},
		},
		{
			name:  "Win beats block",
			board: [][]game.PlayerMark{{x, x, n}, {n, n, n}, {o, o, n}},
			mark:  o,
			want:  game.Position{Row: 2, Col: 2},
		},
		{
			name:  "Completing the anti-diagonal also blocks the column",
			board: [][]game.PlayerMark{{x, x, o}, {x, o, n}, {n, n, n}},
			mark:  o,
			want:  game.Position{Row: 2, Col: 0},
		},
		{
			name:  "Blocks a column",
			board: [][]game.PlayerMark{{o, x, n}, {n, x, n}, {n, n, n}},
			mark:  o,
			want:  game.Position{Row: 2, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := heuristicMove(tt.board, tt.mark, random.NewSeeded(3))
			if err != nil {
				t.Fatalf("heuristicMove() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("heuristicMove() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("Falls back to an empty cell", func(t *testing.T) {
		board := [][]game.PlayerMark{{x, n, n}, {n, n, n}, {n, n, n}}
		got, err := heuristicMove(board, o, random.NewSeeded(3))
		if err != nil {
			t.Fatalf("heuristicMove() unexpected error: %v", err)
		}
		if board[got.Row][got.Col] != n {
			t.Errorf("heuristicMove() picked occupied cell %v", got)
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "manual", want: Manual},
		{in: "EASY", want: Easy},
		{in: "  Medium\n", want: Medium},
		{in: "hard", want: Hard},
		{in: "impossible", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDifficulty) {
					t.Errorf("ParseDifficulty(%q) error = %v, want %v", tt.in, err, ErrUnknownDifficulty)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			if got.String() != difficultyNames[tt.want] {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
