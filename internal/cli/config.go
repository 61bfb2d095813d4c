package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from ROOMCTL_* variables. Flags override it.
type Config struct {
	ServerURL      string `env:"ROOMCTL_SERVER_URL" envDefault:"http://localhost:5000"`
	CanvasWidth    int    `env:"ROOMCTL_CANVAS_WIDTH" envDefault:"1200"`
	OutputDir      string `env:"ROOMCTL_OUTPUT_DIR" envDefault:"."`
	TimeoutSeconds int    `env:"ROOMCTL_TIMEOUT_SECONDS" envDefault:"300"`
	Verbose        bool   `env:"ROOMCTL_VERBOSE" envDefault:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
