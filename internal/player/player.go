package player

//go:generate mockgen -source=player.go -destination=mock_player.go -package=player

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
)

// Mover is an interface that abstracts where a player's moves come from.
type Mover interface {
	// NextMove returns the index of the cell to play. The board is a copy.
	NextMove(ctx context.Context, board game.Board, mark game.PlayerMark) (int, error)
}

// Player represents a participant in a round.
type Player struct {
	ID    string
	Name  string
	Mark  game.PlayerMark
	IsBot bool
	Mover Mover
}

// NewPlayer creates a new player.
func NewPlayer(id, name string, mover Mover) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Mover: mover,
	}
}
