package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// DealerStandsOn is the total at which the dealer stops drawing.
const DealerStandsOn = 17

// Player is the human seat: a hand plus money and the current wager.
type Player struct {
	Hand
	Name  string
	Money int
	Bet   int
}

// NewPlayer creates a player with an empty hand and the given bankroll.
func NewPlayer(name string, money int) *Player {
	return &Player{Name: name, Money: money}
}

// ReceiveCard adds a dealt card to the player's hand
func (p *Player) ReceiveCard(card deck.Card) {
	p.Add(card)
}

// PlaceBet moves amount from Money into Bet. The player's state is unchanged
// when the bet is rejected.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: bet must be positive, got %d", ErrInvalidBet, amount)
	}
	if amount > p.Money {
		return fmt.Errorf("%w: bet %d exceeds balance %d", ErrInsufficientFunds, amount, p.Money)
	}
	p.Money -= amount
	p.Bet = amount
	return nil
}

// Win credits the player's balance.
func (p *Player) Win(amount int) {
	p.Money += amount
}

// Broke reports whether the player has nothing left to bet.
func (p *Player) Broke() bool {
	return p.Money <= 0
}

// String returns the player's name and balance
func (p *Player) String() string {
	return fmt.Sprintf("%s (Money: %d)", p.Name, p.Money)
}

// Dealer is the house seat. It holds a hand and nothing else.
type Dealer struct {
	Hand
}

// NewDealer creates a dealer with an empty hand.
func NewDealer() *Dealer {
	return &Dealer{}
}

// ReceiveCard adds a dealt card to the dealer's hand
func (d *Dealer) ReceiveCard(card deck.Card) {
	d.Add(card)
}

// ShouldHit applies the fixed stand-on-17 policy.
func (d *Dealer) ShouldHit() bool {
	return d.Value() < DealerStandsOn
}

// String returns "Dealer"
func (d *Dealer) String() string {
	return "Dealer"
}
