package config

import (
	"ctchen222/tictactoe-console/internal/validator"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Mode values. An empty mode shows the menu.
const (
	ModeMenu   = ""
	ModePvP    = "pvp"
	ModeEasy   = "easy"
	ModeMedium = "medium"
	ModeHard   = "hard"
)

// First player values.
const (
	FirstHuman    = "human"
	FirstComputer = "computer"
	FirstRandom   = "random"
)

type Config struct {
	LogLevel    string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Mode        string    `yaml:"mode" env:"TTT_MODE" validate:"omitempty,oneof=pvp easy medium hard"`
	HumanMark   string    `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"X" validate:"playermark"`
	FirstPlayer string    `yaml:"first-player" env:"TTT_FIRST_PLAYER" env-default:"human" validate:"oneof=human computer random"`
	Seed        uint64    `yaml:"seed" env:"TTT_SEED"`
	Telemetry   Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled        bool   `yaml:"enabled" env:"TTT_OTEL_ENABLED"`
	Endpoint       string `yaml:"endpoint" env:"TTT_OTEL_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Enabled true"`
	ServiceName    string `yaml:"service-name" env:"TTT_OTEL_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
	ServiceVersion string `yaml:"service-version" env:"TTT_OTEL_SERVICE_VERSION" env-default:"v0.1.0"`
}

// Load reads path (if it exists) and the environment. Callers apply their
// overrides and then call Validate.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" && fileExists(path) {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	return config, nil
}

// Validate checks field values after flags have been applied.
func (that *Config) Validate() error {
	if err := validator.GetValidator().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Usage returns the environment variables the config understands.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
