package console

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/session"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMissingRow         = errors.New("'row' is not provided")
	ErrMissingColumn      = errors.New("'column' is not provided")
	ErrRedundantParameter = errors.New("redundant parameter")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInputClosed        = errors.New("input closed before the game finished")
)

// Console plays a session over a line-based reader and writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Play runs the session until it finishes. X is always read from input; O
// is read too when the session is manual, otherwise the bot moves.
func (c *Console) Play(ctx context.Context, s *session.Session) error {
	fmt.Fprintf(c.out, "Welcome to tic tac toe. Difficulty is %s. Here's the board:\n", s.Difficulty())
	RenderBoard(c.out, s.View())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			result game.Result
			err    error
		)
		switch s.Status() {
		case game.Finished:
			fmt.Fprintln(c.out, "Game already finished")
			return nil
		case game.AwaitingX:
			result, err = c.manualMove(s, game.PlayerX)
		case game.AwaitingO:
			if s.Manual() {
				result, err = c.manualMove(s, game.PlayerO)
			} else {
				fmt.Fprintf(c.out, "\nMove for %c (automatic)\n", game.PlayerO.Symbol())
				result, err = s.AutoMove()
				if err != nil {
					return err
				}
			}
		}

		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return err
			}
			fmt.Fprintln(c.out, err)
			continue
		}

		RenderBoard(c.out, s.View())
		switch result.Outcome {
		case game.Win:
			fmt.Fprintf(c.out, "%s wins!\n", result.Winner)
			return nil
		case game.Draw:
			fmt.Fprintln(c.out, "Draw.")
			return nil
		}
	}
}

func (c *Console) manualMove(s *session.Session, mark game.PlayerMark) (game.Result, error) {
	fmt.Fprintf(c.out, "\nMove for %c\n", mark.Symbol())

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return game.Result{}, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		return game.Result{}, ErrInputClosed
	}

	row, col, err := ParseMove(c.in.Text())
	if err != nil {
		return game.Result{}, err
	}
	return s.ManualMove(row, col)
}

// ParseMove reads "<row> <col>". Both values must fit in a byte.
func ParseMove(line string) (row, col int, err error) {
	split := strings.Split(strings.TrimSpace(line), " ")

	if len(split) < 1 || split[0] == "" {
		return 0, 0, ErrMissingRow
	}
	if row, err = parseCoordinate(split[0]); err != nil {
		return 0, 0, err
	}

	if len(split) < 2 {
		return 0, 0, ErrMissingColumn
	}
	if col, err = parseCoordinate(split[1]); err != nil {
		return 0, 0, err
	}

	if len(split) > 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrRedundantParameter, split[2])
	}

	return row, col, nil
}

func parseCoordinate(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return int(v), nil
}

// RenderBoard writes the board with row and column indices.
func RenderBoard(w io.Writer, board [][]game.PlayerMark) {
	size := len(board)

	var b strings.Builder
	b.WriteString("  ")
	for i := range size {
		fmt.Fprintf(&b, "%d ", i)
	}
	b.WriteByte('\n')

	delimiter := "  " + strings.Repeat("-", size*2-1)
	for i, row := range board {
		fmt.Fprintf(&b, "%d ", i)
		for j, cell := range row {
			b.WriteRune(cell.Symbol())
			if j < size-1 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')

		if i < size-1 {
			b.WriteString(delimiter)
		}
		b.WriteByte('\n')
	}

	_, _ = io.WriteString(w, b.String())
}
