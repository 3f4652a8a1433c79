package console

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/player"

	"github.com/google/uuid"
)

// HumanMover reads moves from the console.
// It implements the player.Mover interface.
type HumanMover struct {
	prompter *Prompter
}

// NewHumanMover creates a mover backed by p.
func NewHumanMover(p *Prompter) *HumanMover {
	return &HumanMover{prompter: p}
}

// NextMove prompts until the user enters an open cell.
func (hm *HumanMover) NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	return hm.prompter.ReadMove(board, mark)
}

// NewHumanPlayer creates a console player playing mark.
func NewHumanPlayer(mark game.PlayerMark, p *Prompter) *player.Player {
	hp := player.NewPlayer(uuid.New().String(), "Player "+string(mark), NewHumanMover(p))
	hp.Mark = mark
	return hp
}
