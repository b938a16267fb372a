package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

const (
	// BlackjackTotal is the best possible hand total.
	BlackjackTotal = 21
	// aceReduction is the difference between an ace counted high and low.
	aceReduction = 10
)

// Hand is an ordered set of cards held by a player or the dealer.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Reset empties the hand for a new round
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the blackjack total. Aces start at 11 and are dropped to 1 one
// at a time, only while the total is over 21. The result can still exceed 21
// when no ace is left to drop.
func (h *Hand) Value() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether at least one ace is still counted as 11.
func (h *Hand) IsSoft() bool {
	_, softAces := h.evaluate()
	return softAces > 0
}

// IsBust reports whether the hand total exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > BlackjackTotal
}

func (h *Hand) evaluate() (total, softAces int) {
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			softAces++
		}
	}
	for total > BlackjackTotal && softAces > 0 {
		total -= aceReduction
		softAces--
	}
	return total, softAces
}

// String returns the cards comma-joined, e.g. "10♠, A♥".
func (h *Hand) String() string {
	return joinCards(h.cards)
}

// VisibleCards returns every card except the last, which is the dealer's hole
// card while the player is still acting.
func (h *Hand) VisibleCards() []deck.Card {
	if len(h.cards) == 0 {
		return nil
	}
	out := make([]deck.Card, len(h.cards)-1)
	copy(out, h.cards)
	return out
}

// HiddenCard is shown in place of the dealer's hole card.
const HiddenCard = "Hidden Card"

func joinCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
