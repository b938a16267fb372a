package deck

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// Suits lists every suit in deck-building order.
var Suits = []Suit{Spades, Clubs, Diamonds, Hearts}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// IsRed returns true for Diamonds and Hearts
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Hearts
}

// Rank represents a card rank. Number ranks hold their face value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck-building order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the rank as printed on the card
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// points is the blackjack value of the rank with aces counted high.
func (r Rank) points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// Card is an immutable playing card. Its blackjack value is fixed when the
// card is created.
type Card struct {
	rank  Rank
	suit  Suit
	value int
}

// NewCard creates a card, rejecting ranks and suits outside the standard deck.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, int(rank))
	}
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	return Card{rank: rank, suit: suit, value: rank.points()}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit. It is meant
// for fixed card tables and tests.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card suit
func (c Card) Suit() Suit { return c.suit }

// Value returns the blackjack value: 2-10 for number cards, 10 for faces and
// 11 for an ace.
func (c Card) Value() int { return c.value }

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool { return c.rank == Ace }

// IsRed returns true if the card is red
func (c Card) IsRed() bool { return c.suit.IsRed() }

// String returns the card as rank followed by suit symbol, e.g. "10♠"
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// ParseCard parses a card such as "10♠", "A♥", "Ts" or "qd".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}

	suitRune, size := utf8.DecodeLastRuneInString(s)
	suit, err := parseSuit(suitRune)
	if err != nil {
		return Card{}, err
	}
	rank, err := parseRank(s[:len(s)-size])
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit)
}

// ParseCards parses a space or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case '♠', 's', 'S':
		return Spades, nil
	case '♣', 'c', 'C':
		return Clubs, nil
	case '♦', 'd', 'D':
		return Diamonds, nil
	case '♥', 'h', 'H':
		return Hearts, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, r)
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}
