package bot

import (
	"context"
	"ctchen222/tictactoe-console/internal/game"
	"strings"
	"testing"
	"time"
)

func TestNewBotPlayer(t *testing.T) {
	p := NewBotPlayer(Hard, nil)

	if !p.IsBot {
		t.Error("Expected bot player to be marked as a bot")
	}
	if !strings.HasPrefix(p.ID, "bot-") || len(p.ID) != len("bot-")+8 {
		t.Errorf("Expected bot ID of the form bot-xxxxxxxx, got %s", p.ID)
	}
	mover, ok := p.Mover.(*BotMover)
	if !ok {
		t.Fatalf("Expected mover to be a *BotMover, got %T", p.Mover)
	}
	if mover.Difficulty() != Hard {
		t.Errorf("Expected difficulty %s, got %s", Hard, mover.Difficulty())
	}
}

func TestBotMover_NextMove(t *testing.T) {
	bm := NewBotMover(Hard, NewMoveCalculator(newTestRand()))
	board := game.Board{
		x, x, e,
		o, e, e,
		e, e, e,
	}

	move, err := bm.NextMove(context.Background(), board, o)
	if err != nil {
		t.Fatalf("NextMove failed: %v", err)
	}
	if move != 2 {
		t.Errorf("Expected bot to block at 2, got %d", move)
	}
}

func TestBotMover_NextMove_ThinkTimeCancelled(t *testing.T) {
	bm := NewBotMover(Easy, NewMoveCalculator(newTestRand())).WithThinkTime(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bm.NextMove(ctx, game.NewBoard(), x); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestBotMover_NextMove_NoMoves(t *testing.T) {
	bm := NewBotMover(Easy, nil)
	full := game.Board{x, o, x, x, o, o, o, x, x}

	if _, err := bm.NextMove(context.Background(), full, o); err == nil {
		t.Error("Expected an error on a full board")
	}
}
