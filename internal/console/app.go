package console

import (
	"context"
	"ctchen222/tictactoe-console/internal/bot"
	"ctchen222/tictactoe-console/internal/config"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/player"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Options controls how the console app sets up its matches.
type Options struct {
	// Mode skips the menu when set.
	Mode        Mode
	HumanMark   game.PlayerMark
	FirstPlayer string
	Calculator  *bot.MoveCalculator
}

// App is the interactive game shell.
type App struct {
	opts     Options
	prompter *Prompter
	out      io.Writer
}

// NewApp creates an app reading answers from in and drawing on out.
func NewApp(in io.Reader, out io.Writer, opts Options) *App {
	if opts.HumanMark != game.PlayerO {
		opts.HumanMark = game.PlayerX
	}
	if opts.FirstPlayer == "" {
		opts.FirstPlayer = config.FirstHuman
	}
	if opts.Calculator == nil {
		opts.Calculator = bot.NewMoveCalculator(nil)
	}
	return &App{
		opts:     opts,
		prompter: NewPrompter(in, out),
		out:      out,
	}
}

// Run shows the menu if needed and plays rounds until the user stops or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "===== TIC-TAC-TOE =====")

	mode := a.opts.Mode
	if mode == "" {
		var err error
		if mode, err = a.prompter.ReadMode(); err != nil {
			return ignoreClosed(err)
		}
	}

	first, second := a.newPlayers(mode)
	session, err := NewSession(a.out, first, second)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "session started", "mode", mode, "human.mark", a.opts.HumanMark)

	for {
		fmt.Fprintf(a.out, "\n%s\n", mode.Title())
		if _, err := session.PlayRound(ctx, a.firstMark(mode)); err != nil {
			return ignoreClosed(err)
		}
		fmt.Fprintln(a.out, session.Scoreboard())

		again, err := a.prompter.Confirm("Play again? (y/n): ")
		if err != nil {
			return ignoreClosed(err)
		}
		if !again {
			return nil
		}
	}
}

func (a *App) newPlayers(mode Mode) (*player.Player, *player.Player) {
	if !mode.VsComputer() {
		return NewHumanPlayer(game.PlayerX, a.prompter), NewHumanPlayer(game.PlayerO, a.prompter)
	}

	human := NewHumanPlayer(a.opts.HumanMark, a.prompter)
	computer := bot.NewBotPlayer(mode.Difficulty(), a.opts.Calculator)
	computer.Mark = a.opts.HumanMark.Opponent()
	return human, computer
}

// firstMark picks who opens a round. Player vs player always starts with X.
func (a *App) firstMark(mode Mode) game.PlayerMark {
	if !mode.VsComputer() {
		return game.PlayerX
	}
	switch a.opts.FirstPlayer {
	case config.FirstComputer:
		return a.opts.HumanMark.Opponent()
	case config.FirstRandom:
		return game.RandomlyChooseFirstPlayer()
	}
	return a.opts.HumanMark
}

func ignoreClosed(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
