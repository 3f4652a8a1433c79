package console

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/player"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("console")

// Session plays rounds between two players on one console.
type Session struct {
	out     io.Writer
	players map[game.PlayerMark]*player.Player
	score   *Scoreboard
}

// NewSession creates a session. The players must hold different marks.
func NewSession(out io.Writer, a, b *player.Player) (*Session, error) {
	if (a.Mark != game.PlayerX && a.Mark != game.PlayerO) || b.Mark != a.Mark.Opponent() {
		return nil, fmt.Errorf("players need marks X and O, got %q and %q", a.Mark, b.Mark)
	}
	return &Session{
		out: out,
		players: map[game.PlayerMark]*player.Player{
			a.Mark: a,
			b.Mark: b,
		},
		score: NewScoreboard(),
	}, nil
}

// Scoreboard returns the tally of rounds played so far.
func (s *Session) Scoreboard() *Scoreboard {
	return s.score
}

// PlayRound plays one game to the end, starting with first, and returns its outcome.
func (s *Session) PlayRound(ctx context.Context, first game.PlayerMark) (game.Outcome, error) {
	gameID := uuid.New().String()
	ctx, span := tracer.Start(ctx, "console.PlayRound", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.String("game.first", string(first)),
	))
	defer span.End()

	g := game.NewGame(first)
	slog.InfoContext(ctx, "round started", "game.id", gameID, "game.first", g.CurrentTurn)
	RenderBoard(s.out, g.Board)

	for !g.Outcome().IsOver() {
		p := s.players[g.CurrentTurn]

		move, err := p.Mover.NextMove(ctx, g.Board.Clone(), p.Mark)
		if err != nil {
			return s.fail(ctx, span, gameID, p, fmt.Errorf("player %s failed to move: %w", p.ID, err))
		}
		if err := g.Move(move); err != nil {
			return s.fail(ctx, span, gameID, p, fmt.Errorf("player %s made a bad move: %w", p.ID, err))
		}
		row, col := game.Position(move)
		slog.DebugContext(ctx, "move played", "game.id", gameID, "player.id", p.ID, "player.mark", p.Mark, "move.row", row, "move.col", col)

		if p.IsBot {
			fmt.Fprintf(s.out, "Computer chooses: %d\n", move+1)
		}
		RenderBoard(s.out, g.Board)
	}

	outcome := g.Outcome()
	s.score.Record(outcome)
	fmt.Fprintln(s.out, s.resultMessage(outcome))

	span.SetAttributes(attribute.String("game.outcome", outcome.String()))
	slog.InfoContext(ctx, "round finished", "game.id", gameID, "game.outcome", outcome.String())
	return outcome, nil
}

func (s *Session) fail(ctx context.Context, span trace.Span, gameID string, p *player.Player, err error) (game.Outcome, error) {
	slog.ErrorContext(ctx, "round aborted", "game.id", gameID, "player.id", p.ID, "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Round aborted")
	return game.Outcome{}, err
}

func (s *Session) vsComputer() bool {
	for _, p := range s.players {
		if p.IsBot {
			return true
		}
	}
	return false
}

func (s *Session) resultMessage(outcome game.Outcome) string {
	if outcome.Status == game.StatusDraw {
		return "It's a draw!"
	}
	if !s.vsComputer() {
		return fmt.Sprintf("Player %s wins!", outcome.Winner)
	}
	if s.players[outcome.Winner].IsBot {
		return "Computer wins!"
	}
	return "You win!"
}
