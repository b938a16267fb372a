// Package config loads the blackjack table configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/game"
)

// Config represents the complete configuration file
type Config struct {
	Table  TableSettings
	Player PlayerSettings
	UI     UISettings
}

// TableSettings contains deck and bankroll settings
type TableSettings struct {
	StartingMoney   int   `hcl:"starting_money,optional"`
	ReshuffleRounds int   `hcl:"reshuffle_rounds,optional"`
	MinCards        int   `hcl:"min_cards,optional"`
	Seed            int64 `hcl:"seed,optional"`
}

// PlayerSettings contains player-specific settings
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode     string `hcl:"mode,optional"`
	Color    *bool  `hcl:"color,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// UI modes
const (
	ModeLine   = "line"
	ModePrompt = "prompt"
)

// Default returns the default configuration
func Default() *Config {
	table := game.DefaultConfig()
	color := true
	return &Config{
		Table: TableSettings{
			StartingMoney:   table.StartingMoney,
			ReshuffleRounds: table.ReshuffleRounds,
			MinCards:        table.MinCards,
		},
		Player: PlayerSettings{
			Name: table.PlayerName,
		},
		UI: UISettings{
			Mode:     ModeLine,
			Color:    &color,
			LogLevel: "info",
			LogFile:  "blackjack.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse reads configuration from HCL source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var file fileConfig
	diags := gohcl.DecodeBody(body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if file.Table != nil {
		cfg.Table = mergeTable(cfg.Table, *file.Table)
	}
	if file.Player != nil && file.Player.Name != "" {
		cfg.Player.Name = file.Player.Name
	}
	if file.UI != nil {
		cfg.UI = mergeUI(cfg.UI, *file.UI)
	}
	return cfg, nil
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Table  *TableSettings  `hcl:"table,block"`
	Player *PlayerSettings `hcl:"player,block"`
	UI     *UISettings     `hcl:"ui,block"`
}

func mergeTable(def, got TableSettings) TableSettings {
	if got.StartingMoney != 0 {
		def.StartingMoney = got.StartingMoney
	}
	if got.ReshuffleRounds != 0 {
		def.ReshuffleRounds = got.ReshuffleRounds
	}
	if got.MinCards != 0 {
		def.MinCards = got.MinCards
	}
	if got.Seed != 0 {
		def.Seed = got.Seed
	}
	return def
}

func mergeUI(def, got UISettings) UISettings {
	if got.Mode != "" {
		def.Mode = got.Mode
	}
	if got.Color != nil {
		def.Color = got.Color
	}
	if got.LogLevel != "" {
		def.LogLevel = got.LogLevel
	}
	if got.LogFile != "" {
		def.LogFile = got.LogFile
	}
	return def
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Player.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if err := c.Game().Validate(); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	validModes := map[string]bool{
		ModeLine:   true,
		ModePrompt: true,
	}
	if !validModes[c.UI.Mode] {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

// ColorEnabled reports whether styled output is on
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// Game returns the table settings in the form the game expects.
func (c *Config) Game() game.Config {
	return game.Config{
		PlayerName:      c.Player.Name,
		StartingMoney:   c.Table.StartingMoney,
		ReshuffleRounds: c.Table.ReshuffleRounds,
		MinCards:        c.Table.MinCards,
	}
}
