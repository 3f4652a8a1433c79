package game

import (
	"fmt"
)

// Game holds the state of a single round: the board and whose turn it is.
type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	outcome     Outcome
}

// NewGame starts an empty game where first moves first.
func NewGame(first PlayerMark) *Game {
	if first != PlayerX && first != PlayerO {
		first = PlayerX
	}
	return &Game{
		Board:       NewBoard(),
		CurrentTurn: first,
		outcome:     Outcome{Status: StatusInProgress},
	}
}

// Move places the current player's mark at index and passes the turn.
func (g *Game) Move(index int) error {
	if g.outcome.IsOver() {
		return ErrGameFinished
	}
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: index %d", ErrInvalidMove, index)
	}
	if g.Board[index] != None {
		return fmt.Errorf("%w: index %d", ErrCellOccupied, index)
	}

	g.Board[index] = g.CurrentTurn
	g.CurrentTurn = g.CurrentTurn.Opponent()

	g.outcome = g.Board.Outcome()
	return nil
}

// Outcome returns the result of the last move.
func (g *Game) Outcome() Outcome {
	return g.outcome
}
