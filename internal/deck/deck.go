// Package deck provides playing cards and a single 52-card blackjack deck.
package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/randutil"
)

// Size is the number of cards in a full deck.
const Size = 52

var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered pile of cards. Cards are dealt from the end.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck shuffled with rng. The caller owns seeding;
// see randutil.New.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reshuffle()
	return d
}

// NewStacked creates a deck holding exactly cards in the given order. The last
// card is dealt first. Reshuffling a stacked deck replaces it with a full
// shuffled deck drawn from rng, or from a fixed seed when rng is nil.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		rng = randutil.New(1)
	}
	stacked := make([]Card, len(cards), max(len(cards), Size))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

// Standard returns the 52 cards of a deck in suit-major order, unshuffled.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, MustCard(rank, suit))
		}
	}
	return cards
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the card at the end of the deck.
func (d *Deck) Deal() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// Reshuffle discards whatever is left and replaces it with a fresh shuffled
// 52-card deck.
func (d *Deck) Reshuffle() {
	d.cards = append(d.cards[:0], Standard()...)
	d.Shuffle()
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
