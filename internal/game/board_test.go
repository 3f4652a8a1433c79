package game

import (
	"errors"
	"slices"
	"testing"
)

const (
	x = PlayerX
	o = PlayerO
	e = None
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "No winner - empty board",
			board: NewBoard(),
			want:  Outcome{Status: StatusInProgress},
		},
		{
			name: "No winner - partial board",
			board: Board{
				x, e, e,
				e, o, e,
				e, e, e,
			},
			want: Outcome{Status: StatusInProgress},
		},
		{
			name: "X wins - first row",
			board: Board{
				x, x, x,
				e, o, e,
				e, e, o,
			},
			want: Outcome{Status: StatusWin, Winner: x},
		},
		{
			name: "O wins - second column",
			board: Board{
				x, o, e,
				x, o, e,
				e, o, e,
			},
			want: Outcome{Status: StatusWin, Winner: o},
		},
		{
			name: "X wins - main diagonal",
			board: Board{
				x, e, e,
				e, x, e,
				e, e, x,
			},
			want: Outcome{Status: StatusWin, Winner: x},
		},
		{
			name: "O wins - anti-diagonal",
			board: Board{
				e, e, o,
				e, o, e,
				o, e, e,
			},
			want: Outcome{Status: StatusWin, Winner: o},
		},
		{
			name: "Draw - full board without a line",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: Outcome{Status: StatusDraw},
		},
		{
			name: "Win beats draw on a full board",
			board: Board{
				x, x, x,
				o, o, x,
				o, x, o,
			},
			want: Outcome{Status: StatusWin, Winner: x},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.board)
			if err != nil {
				t.Fatalf("Evaluate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_InvalidBoard(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{name: "nil board", board: nil},
		{name: "too short", board: Board{x, o, x}},
		{name: "too long", board: make(Board, 10)},
		{name: "unknown mark", board: Board{x, "Z", e, e, e, e, e, e, e}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.board); !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Evaluate() error = %v, want %v", err, ErrInvalidBoard)
			}
			if _, err := AvailableMoves(tt.board); !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("AvailableMoves() error = %v, want %v", err, ErrInvalidBoard)
			}
		})
	}
}

func TestAvailableMoves(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  []int
	}{
		{name: "empty board", board: NewBoard(), want: []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
		{
			name: "partial board",
			board: Board{
				x, e, o,
				e, x, e,
				o, e, e,
			},
			want: []int{1, 3, 5, 7, 8},
		},
		{
			name: "full board",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, x,
			},
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AvailableMoves(tt.board)
			if err != nil {
				t.Fatalf("AvailableMoves() unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("AvailableMoves() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// allBoards enumerates every assignment of {None, X, O} to the 9 cells.
func allBoards(yield func(Board) bool) {
	marks := [3]PlayerMark{e, x, o}
	for n := 0; n < 19683; n++ {
		b := NewBoard()
		v := n
		for i := range b {
			b[i] = marks[v%3]
			v /= 3
		}
		if !yield(b) {
			return
		}
	}
}

func TestAvailableMoves_AllBoards(t *testing.T) {
	for b := range allBoards {
		moves, err := AvailableMoves(b)
		if err != nil {
			t.Fatalf("AvailableMoves(%v) unexpected error: %v", b, err)
		}
		if !slices.IsSorted(moves) {
			t.Fatalf("AvailableMoves(%v) = %v is not ascending", b, moves)
		}
		played := 0
		for _, cell := range b {
			if cell != None {
				played++
			}
		}
		if len(moves)+played != BoardSize {
			t.Fatalf("AvailableMoves(%v) = %v, with %d played cells", b, moves, played)
		}
		for _, m := range moves {
			if b[m] != None {
				t.Fatalf("AvailableMoves(%v) returned occupied cell %d", b, m)
			}
		}
	}
}

func TestEvaluate_AllBoards(t *testing.T) {
	for b := range allBoards {
		got, err := Evaluate(b)
		if err != nil {
			t.Fatalf("Evaluate(%v) unexpected error: %v", b, err)
		}

		var lineWinner PlayerMark
		for _, line := range Lines {
			if b[line[0]] != None && b[line[0]] == b[line[1]] && b[line[1]] == b[line[2]] {
				lineWinner = b[line[0]]
				break
			}
		}

		switch {
		case lineWinner != None:
			if !got.IsWin(lineWinner) {
				t.Fatalf("Evaluate(%v) = %v, want Win(%s)", b, got, lineWinner)
			}
		case !slices.Contains(b, None):
			if got.Status != StatusDraw {
				t.Fatalf("Evaluate(%v) = %v, want Draw", b, got)
			}
		default:
			if got.Status != StatusInProgress {
				t.Fatalf("Evaluate(%v) = %v, want InProgress", b, got)
			}
		}
	}
}

func TestBoardClone(t *testing.T) {
	b := Board{x, e, e, e, o, e, e, e, e}
	c := b.Clone()
	c[2] = x
	if b[2] != None {
		t.Errorf("Clone() shares storage with the original board")
	}
}

func TestPosition(t *testing.T) {
	for i, want := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		row, col := Position(i)
		if row != want[0] || col != want[1] {
			t.Errorf("Position(%d) got (%d, %d), want (%d, %d)", i, row, col, want[0], want[1])
		}
	}
}
