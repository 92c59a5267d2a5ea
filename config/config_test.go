package config

import (
	"testing"
	"time"

	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.LevelFile)
	assert.Equal(t, 1, cfg.StartLevel)
	assert.Equal(t, 3, cfg.Lives)
	assert.Equal(t, 60*time.Second, cfg.TimeLimit)
	assert.Equal(t, score.KindNone, cfg.ScoreBackend)
	assert.True(t, cfg.Sound)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, game.DefaultRules(), cfg.Rules())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DICE_START_LEVEL", "4")
	t.Setenv("DICE_LIVES", "5")
	t.Setenv("DICE_TIME_LIMIT", "90s")
	t.Setenv("DICE_FALL_DELAY", "250ms")
	t.Setenv("DICE_SCORE_BACKEND", "sqlite")
	t.Setenv("DICE_DATABASE_DSN", "file:scores.db")
	t.Setenv("DICE_SOUND", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Sound)

	rules := cfg.Rules()
	assert.Equal(t, 3, rules.StartLevel)
	assert.Equal(t, 5, rules.Lives)
	assert.Equal(t, 90*time.Second, rules.TimeLimit)
	assert.Equal(t, 250*time.Millisecond, rules.FallDelay)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("DICE_LIVES", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadRejectsNonPositiveRules(t *testing.T) {
	for key, value := range map[string]string{
		"DICE_ROUND_SCORE": "0",
		"DICE_TIME_LIMIT":  "0s",
		"DICE_FALL_DELAY":  "-1s",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		ScoreBackend: score.KindNone,
		StartLevel:   1,
		Lives:        3,
		TimeLimit:    time.Minute,
		RoundScore:   100,
		FallDelay:    500 * time.Millisecond,
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown backend", func(c *Config) { c.ScoreBackend = "redis" }, "unknown score backend"},
		{"websocket without url", func(c *Config) { c.ScoreBackend = score.KindWebsocket }, "DICE_SCORE_URL"},
		{"postgres without dsn", func(c *Config) { c.ScoreBackend = score.KindPostgres }, "DICE_DATABASE_DSN"},
		{"level zero", func(c *Config) { c.StartLevel = 0 }, "start level"},
		{"no lives", func(c *Config) { c.Lives = 0 }, "lives"},
		{"negative cost", func(c *Config) { c.MoveCost = -1 }, "move cost"},
		{"zero round score", func(c *Config) { c.RoundScore = 0 }, "round score"},
		{"zero time limit", func(c *Config) { c.TimeLimit = 0 }, "time limit"},
		{"negative time limit", func(c *Config) { c.TimeLimit = -time.Second }, "time limit"},
		{"zero fall delay", func(c *Config) { c.FallDelay = 0 }, "fall delay"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
