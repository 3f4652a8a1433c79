package game

import "fmt"

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// BoardSize is the number of cells on the board.
	BoardSize = 9
)

// Lines holds the 3 rows, 3 columns and 2 diagonals of the board.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Valid reports whether m is one of None, PlayerX or PlayerO.
func (m PlayerMark) Valid() bool {
	return m == None || m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// Board is the 3x3 grid in row-major order.
type Board []PlayerMark

// NewBoard returns an empty board.
func NewBoard() Board {
	return make(Board, BoardSize)
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	copy(c, b)
	return c
}

// Validate checks the cell count and every cell value.
func (b Board) Validate() error {
	if len(b) != BoardSize {
		return fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize, len(b))
	}
	for i, cell := range b {
		if !cell.Valid() {
			return fmt.Errorf("%w: cell %d holds %q", ErrInvalidBoard, i, cell)
		}
	}
	return nil
}

// Position converts a cell index to its row and column.
func Position(index int) (row, col int) {
	return index / 3, index % 3
}

// Evaluate reports whether the board is won, drawn or still in progress.
// A completed line wins even when the board is full.
func Evaluate(b Board) (Outcome, error) {
	if err := b.Validate(); err != nil {
		return Outcome{}, err
	}
	return b.Outcome(), nil
}

// AvailableMoves returns the indices of empty cells in ascending order.
func AvailableMoves(b Board) ([]int, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.EmptyCells(), nil
}

// Outcome is Evaluate without validation. The board must be well formed.
func (b Board) Outcome() Outcome {
	for _, line := range Lines {
		first := b[line[0]]
		if first != None && first == b[line[1]] && first == b[line[2]] {
			return Outcome{Status: StatusWin, Winner: first}
		}
	}
	for _, cell := range b {
		if cell == None {
			return Outcome{Status: StatusInProgress}
		}
	}
	return Outcome{Status: StatusDraw}
}

// EmptyCells is AvailableMoves without validation.
func (b Board) EmptyCells() []int {
	moves := make([]int, 0, len(b))
	for i, cell := range b {
		if cell == None {
			moves = append(moves, i)
		}
	}
	return moves
}
