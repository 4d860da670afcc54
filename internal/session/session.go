package session

import (
	"context"
	"ctchen222/tictactoe-cli/internal/bot"
	"ctchen222/tictactoe-cli/internal/game"
	"ctchen222/tictactoe-cli/internal/random"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/tictactoe-cli/session"

var (
	ErrManualGame            = errors.New("manual game selected")
	ErrDifficultyUnavailable = errors.New("difficulty is not available")
)

var tracer = otel.Tracer(instrumentationName)

// Session is one game: the board plus the strategy bound to the O side.
type Session struct {
	id         string
	difficulty bot.Difficulty
	strategy   bot.Strategy
	game       *game.Game
	calculator *bot.MoveCalculator
	logger     *slog.Logger

	moves    metric.Int64Counter
	finished metric.Int64Counter
}

type options struct {
	id     string
	logger *slog.Logger
	rnd    random.Random
}

type Option func(*options)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRandom sets the source the bot draws from.
func WithRandom(r random.Random) Option {
	return func(o *options) { o.rnd = r }
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// New builds a size x size game. The bot for difficulty plays O; Manual
// leaves both sides to the caller.
func New(size int, difficulty bot.Difficulty, opts ...Option) (*Session, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.New().String()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.rnd == nil {
		o.rnd = random.New()
	}

	strategy, err := bot.ForDifficulty(difficulty)
	if err != nil {
		return nil, err
	}
	if strategy == bot.StrategyUnbeatable {
		return nil, fmt.Errorf("%w: %s", ErrDifficultyUnavailable, difficulty)
	}

	g, err := game.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	meter := otel.Meter(instrumentationName)
	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Accepted moves"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	finished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a win or a draw"),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create finished games counter: %w", err)
	}

	s := &Session{
		id:         o.id,
		difficulty: difficulty,
		strategy:   strategy,
		game:       g,
		calculator: bot.NewMoveCalculator(o.rnd),
		logger:     o.logger.With("session.id", o.id),
		moves:      moves,
		finished:   finished,
	}
	s.logger.Debug("Session created", "size", size, "difficulty", difficulty.String(), "strategy", strategy.String())

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Difficulty() bot.Difficulty {
	return s.difficulty
}

// Manual reports whether both sides are played by hand.
func (s *Session) Manual() bool {
	return s.strategy == bot.StrategyNone
}

func (s *Session) Size() int {
	return s.game.Size()
}

// View returns a snapshot of the board for rendering.
func (s *Session) View() [][]game.PlayerMark {
	return s.game.Board()
}

func (s *Session) Status() game.Status {
	return s.game.Status()
}

// ManualMove applies a move supplied by a person.
func (s *Session) ManualMove(row, col int) (game.Result, error) {
	ctx, span := tracer.Start(context.Background(), "session.ManualMove", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer span.End()

	return s.apply(ctx, span, "manual", row, col)
}

// AutoMove asks the bound strategy for a move and applies it.
func (s *Session) AutoMove() (game.Result, error) {
	ctx, span := tracer.Start(context.Background(), "session.AutoMove", trace.WithAttributes(
		attribute.String("session.id", s.id),
		attribute.String("bot.strategy", s.strategy.String()),
	))
	defer span.End()

	if s.strategy == bot.StrategyNone {
		span.SetStatus(codes.Error, ErrManualGame.Error())
		return game.Result{}, ErrManualGame
	}

	pos, err := s.calculator.SuggestMove(s.strategy, s.game)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to suggest a move")
		return game.Result{}, fmt.Errorf("bot failed to suggest a move: %w", err)
	}
	span.SetAttributes(attribute.Int("move.row", pos.Row), attribute.Int("move.col", pos.Col))

	return s.apply(ctx, span, "auto", pos.Row, pos.Col)
}

func (s *Session) apply(ctx context.Context, span trace.Span, source string, row, col int) (game.Result, error) {
	mark := s.game.Status().Mark()

	result, err := s.game.Move(row, col)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move rejected")
		s.logger.DebugContext(ctx, "Move rejected", "source", source, "row", row, "col", col, "error", err)
		return game.Result{}, err
	}

	s.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
	s.logger.DebugContext(ctx, "Move applied", "source", source, "mark", string(mark), "row", row, "col", col)
	span.SetAttributes(attribute.String("move.outcome", result.Outcome.String()))

	if result.Outcome != game.Continuing {
		label := resultLabel(result)
		s.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("result", label)))
		s.logger.InfoContext(ctx, "Game finished", "result", label)
	}

	return result, nil
}

func resultLabel(r game.Result) string {
	if r.Outcome == game.Win {
		return strings.ToLower(string(r.Winner))
	}
	return r.Outcome.String()
}
