package game

import "errors"

var (
	// ErrInsufficientFunds is returned when a bet exceeds the player's money.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidBet is returned for bets that are not a positive whole number.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInvalidAction is returned for anything other than hit or stand.
	ErrInvalidAction = errors.New("invalid action")
	// ErrQuit signals that the player asked to leave the table.
	ErrQuit = errors.New("player quit")
)
