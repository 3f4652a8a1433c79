package bot

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/player"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// BotMover produces moves for a bot player.
// It implements the player.Mover interface.
type BotMover struct {
	difficulty Difficulty
	calculator *MoveCalculator
	thinkTime  time.Duration
}

// NewBotMover creates a mover that plays at the given difficulty.
func NewBotMover(difficulty Difficulty, calculator *MoveCalculator) *BotMover {
	if calculator == nil {
		calculator = defaultCalculator
	}
	return &BotMover{
		difficulty: difficulty,
		calculator: calculator,
	}
}

// WithThinkTime makes the bot pause before answering.
func (bm *BotMover) WithThinkTime(d time.Duration) *BotMover {
	bm.thinkTime = d
	return bm
}

// Difficulty returns the difficulty the bot plays at.
func (bm *BotMover) Difficulty() Difficulty {
	return bm.difficulty
}

// NextMove asks the calculator for a move as mark against the other mark.
func (bm *BotMover) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (int, error) {
	slog.DebugContext(ctx, "bot is thinking", "bot.mark", mark, "bot.difficulty", bm.difficulty)

	if bm.thinkTime > 0 {
		timer := time.NewTimer(bm.thinkTime) // Simulate thinking time
		select {
		case <-ctx.Done():
			timer.Stop()
			return -1, ctx.Err()
		case <-timer.C:
		}
	}

	return bm.calculator.CalculateNextMove(ctx, board, bm.difficulty, mark, mark.Opponent())
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(difficulty Difficulty, calculator *MoveCalculator) *player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	p := player.NewPlayer(botID, "Computer", NewBotMover(difficulty, calculator))
	p.IsBot = true
	return p
}
