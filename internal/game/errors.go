package game

import "errors"

var (
	ErrInvalidBoard     = errors.New("invalid board")
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrGameFinished     = errors.New("game already finished")
	ErrInvalidMove      = errors.New("invalid move")
	ErrCellOccupied     = errors.New("cell already occupied")
)
