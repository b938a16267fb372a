// Package tui provides terminal implementations of game.Input.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"

	"github.com/lox/blackjack/internal/game"
)

// LineConfig configures a LineReader. Zero values use the process stdio.
type LineConfig struct {
	Stdin       io.ReadCloser
	Stdout      io.Writer
	HistoryFile string
	PromptStyle lipgloss.Style
}

// LineReader reads answers with readline, giving the player line editing and
// history at the prompts.
type LineReader struct {
	rl    *readline.Instance
	style lipgloss.Style
}

// NewLineReader creates a readline-backed input.
func NewLineReader(cfg LineConfig) (*LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &LineReader{rl: rl, style: cfg.PromptStyle}, nil
}

// ReadLine shows prompt and waits for a line. Ctrl-C and Ctrl-D end the
// session with game.ErrQuit.
func (l *LineReader) ReadLine(prompt string) (string, error) {
	l.rl.SetPrompt(l.style.Render(prompt))
	line, err := l.rl.Readline()
	if err != nil {
		return "", mapReadError(err)
	}
	return strings.TrimSpace(line), nil
}

// Close restores the terminal
func (l *LineReader) Close() error {
	return l.rl.Close()
}

func mapReadError(err error) error {
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return game.ErrQuit
	}
	return fmt.Errorf("read line: %w", err)
}
