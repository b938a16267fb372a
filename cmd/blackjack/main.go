package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"blackjack.hcl"`
	Name     string           `help:"Player name"`
	Money    int              `help:"Starting bankroll"`
	Seed     int64            `help:"Shuffle seed (0 derives one from the clock)"`
	Rounds   int              `short:"n" help:"Stop after this many rounds (0 plays until you quit or go broke)"`
	UI       string           `help:"Input mode: line or prompt"`
	NoColor  bool             `help:"Disable colored output"`
	LogFile  string           `help:"File to write the debug log to"`
	LogLevel string           `help:"Log level: debug, info, warn, error"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Play blackjack against the dealer"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run loads configuration, plays the session and prints the summary.
func (c *CLI) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger, err := newLogger(logFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}

	seed := randutil.ResolveSeed(cfg.Table.Seed)
	session := statistics.NewSession(cfg.Table.StartingMoney, quartz.NewReal())
	logger = logger.With("session", session.ID)
	logger.Info("Starting session",
		"player", cfg.Player.Name,
		"money", cfg.Table.StartingMoney,
		"seed", seed,
		"ui", cfg.UI.Mode)

	view := display.NewTable(os.Stdout, cfg.ColorEnabled())
	input, closeInput, err := newInput(cfg)
	if err != nil {
		return err
	}
	defer closeInput()

	g := game.New(cfg.Game(), deck.New(randutil.New(seed)), input, view,
		game.WithLogger(logger),
		game.WithObserver(session))

	view.ShowTitle("♠ ♥ Blackjack ♦ ♣")
	runErr := g.Run(c.Rounds)
	view.ShowSummary(session)

	if err := session.Validate(); err != nil {
		logger.Warn("Session statistics inconsistent", "error", err)
	}
	logger.Info("Session finished",
		"rounds", session.Rounds,
		"net", session.Net(),
		"mean", session.Mean(),
		"stddev", session.StdDev(),
		"money", session.Money,
		"duration", session.Duration())

	if runErr != nil {
		logger.Error("Session aborted", "error", runErr)
		return runErr
	}
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *CLI) applyOverrides(cfg *config.Config) {
	if c.Name != "" {
		cfg.Player.Name = c.Name
	}
	if c.Money != 0 {
		cfg.Table.StartingMoney = c.Money
	}
	if c.Seed != 0 {
		cfg.Table.Seed = c.Seed
	}
	if c.UI != "" {
		cfg.UI.Mode = c.UI
	}
	if c.NoColor {
		off := false
		cfg.UI.Color = &off
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BLACKJACK",
		Level:           lvl,
	}), nil
}

// newInput builds the prompt collaborator for the configured UI mode. The
// returned func releases the terminal.
func newInput(cfg *config.Config) (game.Input, func(), error) {
	switch cfg.UI.Mode {
	case config.ModePrompt:
		return tui.NewPromptReader(nil, nil), func() {}, nil
	default:
		promptStyle := lipgloss.NewStyle()
		if cfg.ColorEnabled() {
			promptStyle = promptStyle.Foreground(lipgloss.Color("#04B575")).Bold(true)
		}
		lr, err := tui.NewLineReader(tui.LineConfig{PromptStyle: promptStyle})
		if err != nil {
			return nil, nil, err
		}
		return lr, func() {
			if err := lr.Close(); err != nil {
				log.Error("Failed to close input", "error", err)
			}
		}, nil
	}
}
