package config

import (
	"ctchen222/tictactoe-cli/internal/validator"
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Difficulty string    `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"medium" validate:"required,difficulty"`
	Size       int       `yaml:"size" env:"TICTACTOE_SIZE" env-default:"3"`
	Seed       uint64    `yaml:"seed" env:"TICTACTOE_SEED"`
	LogLevel   string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Enabled reports whether traces, metrics and logs should be exported.
func (t Telemetry) Enabled() bool {
	return t.Endpoint != ""
}

// Load reads the YAML file at path, when given, then the environment.
// Environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
