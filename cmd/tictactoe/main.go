package main

import (
	"context"
	"ctchen222/tictactoe-console/internal/bot"
	"ctchen222/tictactoe-console/internal/config"
	"ctchen222/tictactoe-console/internal/console"
	"ctchen222/tictactoe-console/internal/game"
	"ctchen222/tictactoe-console/internal/logger"
	"ctchen222/tictactoe-console/internal/telemetry"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

var (
	configPath  = "config.yml"
	mode        string
	humanMark   string
	firstPlayer string
	logLevel    string
	seed        uint64
	helpEnv     bool
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to an optional YAML config file")
	pflag.StringVarP(&mode, "mode", "m", "", "pvp, easy, medium or hard (default: show the menu)")
	pflag.StringVar(&humanMark, "mark", "", "mark played by the human against the computer (X or O)")
	pflag.StringVar(&firstPlayer, "first", "", "who opens against the computer: human, computer or random")
	pflag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pflag.Uint64Var(&seed, "seed", 0, "seed for the computer's random moves (0 picks one)")
	pflag.BoolVar(&helpEnv, "help-env", false, "list the environment variables and exit")
}

func main() {
	pflag.Parse()

	if helpEnv {
		fmt.Println(config.Usage())
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger.Init(os.Stderr, level, conf.Telemetry.Enabled)

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize telemetry", "error", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	gameMode, err := parseMode(conf.Mode)
	if err != nil {
		slog.ErrorContext(ctx, "invalid mode", "error", err)
		return 2
	}

	app := console.NewApp(os.Stdin, os.Stdout, console.Options{
		Mode:        gameMode,
		HumanMark:   game.PlayerMark(conf.HumanMark),
		FirstPlayer: conf.FirstPlayer,
		Calculator:  bot.NewMoveCalculator(newRand(conf.Seed)),
	})

	if err := app.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "game stopped", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and environment, then applies the flags the user set.
func loadConfig() (*config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if pflag.CommandLine.Changed("mode") {
		conf.Mode = mode
	}
	if pflag.CommandLine.Changed("mark") {
		conf.HumanMark = humanMark
	}
	if pflag.CommandLine.Changed("first") {
		conf.FirstPlayer = firstPlayer
	}
	if pflag.CommandLine.Changed("log-level") {
		conf.LogLevel = logLevel
	}
	if pflag.CommandLine.Changed("seed") {
		conf.Seed = seed
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func parseMode(s string) (console.Mode, error) {
	if s == config.ModeMenu {
		return "", nil
	}
	return console.ParseMode(s)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
