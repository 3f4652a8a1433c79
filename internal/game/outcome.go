package game

// Status is the terminal or non-terminal state of a board.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusWin        Status = "Win"
	StatusDraw       Status = "Draw"
)

// Outcome is derived from a board on demand. Winner is set only for StatusWin.
type Outcome struct {
	Status Status
	Winner PlayerMark
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Status != StatusInProgress
}

// IsWin reports whether mark has won.
func (o Outcome) IsWin(mark PlayerMark) bool {
	return o.Status == StatusWin && o.Winner == mark
}

func (o Outcome) String() string {
	if o.Status == StatusWin {
		return "Win(" + string(o.Winner) + ")"
	}
	return string(o.Status)
}
