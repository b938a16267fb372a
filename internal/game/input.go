package game

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input is the prompt/response collaborator the game blocks on. ReadLine
// shows prompt and returns the user's answer without the trailing newline.
// Implementations return ErrQuit or io.EOF when the user leaves.
type Input interface {
	ReadLine(prompt string) (string, error)
}

// Action is a player decision during their turn.
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// Prompts shown to the player.
const (
	ActionPrompt = "Choose an action: [h]it, [s]tand: "
	betPrompt    = "Enter your bet amount ($%d available): "
)

// BetPrompt returns the bet prompt for the given balance.
func BetPrompt(balance int) string {
	return fmt.Sprintf(betPrompt, balance)
}

// ParseBet converts a bet answer into an amount. "q" or "quit" returns
// ErrQuit. A leading "$" is accepted.
func ParseBet(s string) (int, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "q", "quit", "exit":
		return 0, ErrQuit
	case "":
		return 0, fmt.Errorf("%w: enter a whole number", ErrInvalidBet)
	}

	amount, err := strconv.Atoi(strings.TrimPrefix(s, "$"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidBet, s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: bet must be positive, got %d", ErrInvalidBet, amount)
	}
	return amount, nil
}

// ParseAction converts an action answer, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stand":
		return Stand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// isQuit reports whether err means the input has gone away.
func isQuit(err error) bool {
	return errors.Is(err, ErrQuit) || errors.Is(err, io.EOF)
}
