package game

import "github.com/lox/blackjack/internal/deck"

// Outcome is how a round was decided.
type Outcome int

const (
	PlayerBust Outcome = iota
	DealerBust
	PlayerWin
	DealerWin
	Push
	// Forfeit is a round the player left after betting.
	Forfeit
)

// String returns a short outcome name for logs
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Push:
		return "push"
	case Forfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Message returns the line announced to the player at settlement.
func (o Outcome) Message() string {
	switch o {
	case PlayerBust:
		return "Player busts! Dealer wins."
	case DealerBust:
		return "Dealer busts! Player wins."
	case PlayerWin:
		return "Player wins!"
	case DealerWin:
		return "Dealer wins."
	case Push:
		return "It's a tie."
	case Forfeit:
		return "Player leaves the table. Bet forfeited."
	default:
		return ""
	}
}

// PlayerWon reports whether the outcome pays the player.
func (o Outcome) PlayerWon() bool {
	return o == DealerBust || o == PlayerWin
}

// RoundResult describes a settled round.
type RoundResult struct {
	Round       int
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	Bet         int
	Payout      int
	Balance     int
	PlayerCards []deck.Card
	DealerCards []deck.Card
	Reshuffles  int
}

// Net returns the player's gain or loss for the round relative to the stake.
func (r RoundResult) Net() int {
	return r.Payout - r.Bet
}

// decide compares final totals in settlement order. A busted player loses
// before the dealer's hand is considered.
func decide(playerTotal, dealerTotal int) Outcome {
	switch {
	case playerTotal > BlackjackTotal:
		return PlayerBust
	case dealerTotal > BlackjackTotal:
		return DealerBust
	case playerTotal > dealerTotal:
		return PlayerWin
	case dealerTotal > playerTotal:
		return DealerWin
	default:
		return Push
	}
}
