package bot

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

var (
	ErrInvalidMarks      = errors.New("invalid player marks")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Difficulty selects how the bot picks its move.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty converts a user supplied string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// MoveCalculator picks bot moves. It owns its random source.
type MoveCalculator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	tracer      trace.Tracer
	moves       metric.Int64Counter
	searchNodes metric.Int64Histogram
}

// Option configures a MoveCalculator.
type Option func(*calculatorOptions)

type calculatorOptions struct {
	meter  metric.Meter
	tracer trace.Tracer
}

// WithMeter records bot metrics on m instead of the global meter.
func WithMeter(m metric.Meter) Option {
	return func(o *calculatorOptions) { o.meter = m }
}

// WithTracer records bot spans on t instead of the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(o *calculatorOptions) { o.tracer = t }
}

// NewMoveCalculator creates a calculator drawing easy and medium moves from rng.
// A nil rng is replaced with a randomly seeded one.
func NewMoveCalculator(rng *rand.Rand, opts ...Option) *MoveCalculator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	o := calculatorOptions{meter: meter, tracer: tracer}
	for _, opt := range opts {
		opt(&o)
	}

	moves, err := o.meter.Int64Counter("bot.moves",
		metric.WithDescription("Moves chosen by the bot, by difficulty and decision tier."),
	)
	if err != nil {
		otel.Handle(err)
		moves = noop.Int64Counter{}
	}
	searchNodes, err := o.meter.Int64Histogram("bot.search.nodes",
		metric.WithDescription("Positions visited by a single minimax search."),
	)
	if err != nil {
		otel.Handle(err)
		searchNodes = noop.Int64Histogram{}
	}

	return &MoveCalculator{
		rng:         rng,
		tracer:      o.tracer,
		moves:       moves,
		searchNodes: searchNodes,
	}
}

var defaultCalculator = NewMoveCalculator(nil)

// CalculateNextMove determines the bot's next move using a shared calculator.
func CalculateNextMove(board game.Board, difficulty Difficulty, botMark, opponentMark game.PlayerMark) (int, error) {
	return defaultCalculator.CalculateNextMove(context.Background(), board, difficulty, botMark, opponentMark)
}

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// Unknown difficulties play as Hard. The hard search places marks on board and
// takes them back, so board must not be shared with another goroutine during
// the call. It is left as it was passed in.
func (c *MoveCalculator) CalculateNextMove(ctx context.Context, board game.Board, difficulty Difficulty, botMark, opponentMark game.PlayerMark) (int, error) {
	ctx, span := c.tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("bot.difficulty", string(difficulty)),
		attribute.String("bot.mark", string(botMark)),
	))
	defer span.End()

	if (botMark != game.PlayerX && botMark != game.PlayerO) || opponentMark != botMark.Opponent() {
		err := fmt.Errorf("%w: bot %q, opponent %q", ErrInvalidMarks, botMark, opponentMark)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid player marks")
		return -1, err
	}
	if err := board.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid board")
		return -1, err
	}
	if len(board.EmptyCells()) == 0 {
		span.RecordError(game.ErrNoMovesAvailable)
		span.SetStatus(codes.Error, "No moves available")
		return -1, game.ErrNoMovesAvailable
	}

	var (
		move  int
		t     tier
		nodes int
	)
	switch difficulty {
	case Easy:
		c.mu.Lock()
		move, t = easyMove(board, c.rng), tierRandom
		c.mu.Unlock()
	case Medium:
		c.mu.Lock()
		move, t = mediumMove(board, c.rng, botMark, opponentMark)
		c.mu.Unlock()
	default:
		move, t, nodes = hardMove(board, botMark, opponentMark)
	}

	attrs := metric.WithAttributes(
		attribute.String("difficulty", string(difficulty)),
		attribute.String("tier", string(t)),
	)
	c.moves.Add(ctx, 1, attrs)
	if t == tierSearch {
		c.searchNodes.Record(ctx, int64(nodes), attrs)
	}

	span.SetAttributes(
		attribute.Int("bot.move", move),
		attribute.String("bot.tier", string(t)),
		attribute.Int("bot.search.nodes", nodes),
	)
	slog.DebugContext(ctx, "bot chose move", "bot.mark", botMark, "bot.difficulty", difficulty, "bot.move", move, "bot.tier", t, "bot.search.nodes", nodes)
	return move, nil
}
