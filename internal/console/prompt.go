package console

import (
	"bufio"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/validator"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

// moveInput is a cell number as typed by the user.
type moveInput struct {
	Cell int `validate:"min=1,max=9"`
}

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a new Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// ReadMove asks mark for a cell until an open one between 1 and 9 is entered
// and returns its 0-based index.
func (p *Prompter) ReadMove(board game.Board, mark game.PlayerMark) (int, error) {
	for {
		fmt.Fprintf(p.out, "Player %s, choose (1-9): ", mark)
		line, err := p.readLine()
		if err != nil {
			return -1, err
		}

		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Numbers only, 1-9.")
			continue
		}
		if err := validator.GetValidator().Struct(moveInput{Cell: cell}); err != nil {
			fmt.Fprintln(p.out, "Please choose a number 1-9.")
			continue
		}

		index := cell - 1
		if board[index] != game.None {
			fmt.Fprintln(p.out, "That cell is taken. Try another.")
			continue
		}
		return index, nil
	}
}

// ReadMode shows the mode menu. Anything unrecognised selects the hard computer.
func (p *Prompter) ReadMode() (Mode, error) {
	fmt.Fprintln(p.out, "1) Player vs Player")
	fmt.Fprintln(p.out, "2) Player vs Computer (Easy)")
	fmt.Fprintln(p.out, "3) Player vs Computer (Medium)")
	fmt.Fprintln(p.out, "4) Player vs Computer (Hard / Unbeatable)")
	fmt.Fprint(p.out, "Choose mode (1/2/3/4): ")

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	switch line {
	case "1":
		return ModePvP, nil
	case "2":
		return ModeEasy, nil
	case "3":
		return ModeMedium, nil
	default:
		return ModeHard, nil
	}
}

// Confirm asks a yes/no question. Only "y" or "yes" count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
