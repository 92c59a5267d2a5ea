// Package config loads the game's settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/score"
)

// Config holds every setting the binaries read at startup.
type Config struct {
	// LevelFile is a .json level cache or a .yaml pack. Empty selects the
	// embedded default pack.
	LevelFile  string `env:"DICE_LEVEL_FILE"`
	StartLevel int    `env:"DICE_START_LEVEL" envDefault:"1"`

	Lives      int           `env:"DICE_LIVES" envDefault:"3"`
	TimeLimit  time.Duration `env:"DICE_TIME_LIMIT" envDefault:"60s"`
	RoundScore int           `env:"DICE_ROUND_SCORE" envDefault:"100"`
	MoveCost   int           `env:"DICE_MOVE_COST" envDefault:"4"`
	FallDelay  time.Duration `env:"DICE_FALL_DELAY" envDefault:"500ms"`
	Seed       uint64        `env:"DICE_SEED"`

	Sound bool `env:"DICE_SOUND" envDefault:"true"`

	ScoreBackend string `env:"DICE_SCORE_BACKEND" envDefault:"none"` // none, websocket, postgres or sqlite
	ScoreURL     string `env:"DICE_SCORE_URL"`
	DatabaseDSN  string `env:"DICE_DATABASE_DSN"`
	Player       string `env:"DICE_PLAYER" envDefault:"player"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	DebugUI   bool   `env:"DICE_DEBUG_UI"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c Config) Validate() error {
	switch c.ScoreBackend {
	case score.KindNone:
	case score.KindWebsocket:
		if c.ScoreURL == "" {
			return fmt.Errorf("score backend %q needs DICE_SCORE_URL", c.ScoreBackend)
		}
	case score.KindPostgres, score.KindSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("score backend %q needs DICE_DATABASE_DSN", c.ScoreBackend)
		}
	default:
		return fmt.Errorf("unknown score backend %q", c.ScoreBackend)
	}
	if c.StartLevel < 1 {
		return fmt.Errorf("start level must be at least 1, got %d", c.StartLevel)
	}
	if c.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d", c.Lives)
	}
	if c.MoveCost < 0 {
		return fmt.Errorf("move cost must not be negative, got %d", c.MoveCost)
	}
	if c.RoundScore < 1 {
		return fmt.Errorf("round score must be at least 1, got %d", c.RoundScore)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %s", c.TimeLimit)
	}
	if c.FallDelay <= 0 {
		return fmt.Errorf("fall delay must be positive, got %s", c.FallDelay)
	}
	return nil
}

// Rules converts the configured values to game rules. StartLevel is
// 1-indexed here and 0-indexed in the rules.
func (c Config) Rules() game.Rules {
	rules := game.DefaultRules()
	rules.Lives = c.Lives
	rules.TimeLimit = c.TimeLimit
	rules.RoundScore = c.RoundScore
	rules.MoveCost = c.MoveCost
	rules.FallDelay = c.FallDelay
	rules.StartLevel = c.StartLevel - 1
	return rules
}
