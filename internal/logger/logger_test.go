package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler_Fanout(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("game.id", "g1").WithGroup("bot")

	log.Debug("thinking", "move", 4)
	log.Warn("slow search", "nodes", 550000)

	assert.Contains(t, debugBuf.String(), "thinking")
	assert.Contains(t, debugBuf.String(), "game.id=g1")
	assert.Contains(t, debugBuf.String(), "bot.move=4")
	assert.Contains(t, debugBuf.String(), "slow search")

	assert.NotContains(t, warnBuf.String(), "thinking")
	assert.Contains(t, warnBuf.String(), "bot.nodes=550000")
}

func TestMultiHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, NewMultiHandler().Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Init(&buf, slog.LevelInfo, true)
	log.Info("round finished", "game.outcome", "Draw")
	slog.Debug("hidden")

	assert.Contains(t, buf.String(), "round finished")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Same(t, log, slog.Default())
}
