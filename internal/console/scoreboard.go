package console

import (
	"ctchen222/tictactoe-console/internal/game"
	"fmt"
)

// Scoreboard tallies finished rounds for the lifetime of the process.
type Scoreboard struct {
	wins  map[game.PlayerMark]int
	draws int
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{wins: make(map[game.PlayerMark]int)}
}

// Record counts a finished round. Rounds still in progress are ignored.
func (s *Scoreboard) Record(outcome game.Outcome) {
	switch outcome.Status {
	case game.StatusWin:
		s.wins[outcome.Winner]++
	case game.StatusDraw:
		s.draws++
	}
}

func (s *Scoreboard) Wins(mark game.PlayerMark) int {
	return s.wins[mark]
}

func (s *Scoreboard) Draws() int {
	return s.draws
}

func (s *Scoreboard) Rounds() int {
	return s.wins[game.PlayerX] + s.wins[game.PlayerO] + s.draws
}

func (s *Scoreboard) String() string {
	return fmt.Sprintf("Rounds played: %d. Score: X %d, O %d, draws %d", s.Rounds(), s.wins[game.PlayerX], s.wins[game.PlayerO], s.draws)
}
