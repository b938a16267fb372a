package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Table.StartingMoney)
	assert.Equal(t, 5, cfg.Table.ReshuffleRounds)
	assert.Equal(t, 10, cfg.Table.MinCards)
	assert.Equal(t, "Player", cfg.Player.Name)
	assert.Equal(t, ModeLine, cfg.UI.Mode)
	assert.True(t, cfg.ColorEnabled())

	g := cfg.Game()
	assert.Equal(t, "Player", g.PlayerName)
	assert.Equal(t, 100, g.StartingMoney)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
table {
  starting_money   = 250
  reshuffle_rounds = 3
  seed             = 42
}

player {
  name = "Alice"
}

ui {
  mode      = "prompt"
  color     = false
  log_level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250, cfg.Table.StartingMoney)
	assert.Equal(t, 3, cfg.Table.ReshuffleRounds)
	assert.Equal(t, 10, cfg.Table.MinCards, "unset values keep defaults")
	assert.Equal(t, int64(42), cfg.Table.Seed)
	assert.Equal(t, "Alice", cfg.Player.Name)
	assert.Equal(t, ModePrompt, cfg.UI.Mode)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "blackjack.log", cfg.UI.LogFile)
}

func TestParsePartialFile(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`player { name = "Bob" }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, "Bob", cfg.Player.Name)
	assert.Equal(t, 100, cfg.Table.StartingMoney)
	assert.True(t, cfg.ColorEnabled())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`table { starting_money = "lots" }`), "typed.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`table { unknown = 1 }`), "unknown.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty name", func(c *Config) { c.Player.Name = "" }},
		{"zero money", func(c *Config) { c.Table.StartingMoney = 0 }},
		{"zero reshuffle rounds", func(c *Config) { c.Table.ReshuffleRounds = 0 }},
		{"min cards too small", func(c *Config) { c.Table.MinCards = 3 }},
		{"min cards too large", func(c *Config) { c.Table.MinCards = 53 }},
		{"bad mode", func(c *Config) { c.UI.Mode = "gui" }},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
