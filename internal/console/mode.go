package console

import (
	"ctchen222/tictactoe-console/internal/bot"
	"fmt"
	"strings"
)

// Mode is the kind of match being played.
type Mode string

const (
	ModePvP    Mode = "pvp"
	ModeEasy   Mode = "easy"
	ModeMedium Mode = "medium"
	ModeHard   Mode = "hard"
)

// ParseMode accepts the config spelling of a mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePvP, ModeEasy, ModeMedium, ModeHard:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// VsComputer reports whether one side is played by the bot.
func (m Mode) VsComputer() bool {
	return m != ModePvP
}

// Difficulty maps a computer mode to the bot difficulty.
func (m Mode) Difficulty() bot.Difficulty {
	switch m {
	case ModeEasy:
		return bot.Easy
	case ModeMedium:
		return bot.Medium
	}
	return bot.Hard
}

// Title is the heading printed before a round.
func (m Mode) Title() string {
	if m == ModePvP {
		return "Tic-Tac-Toe: Player vs Player"
	}
	return fmt.Sprintf("Tic-Tac-Toe: Player vs Computer (%s)", titleCase(string(m)))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
