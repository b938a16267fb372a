package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBet(t *testing.T) {
	t.Parallel()

	t.Run("accepted bet debits money", func(t *testing.T) {
		p := NewPlayer("Alice", 100)
		require.NoError(t, p.PlaceBet(40))
		assert.Equal(t, 60, p.Money)
		assert.Equal(t, 40, p.Bet)
	})

	t.Run("whole balance is allowed", func(t *testing.T) {
		p := NewPlayer("Alice", 100)
		require.NoError(t, p.PlaceBet(100))
		assert.Equal(t, 0, p.Money)
		assert.True(t, p.Broke())
	})

	t.Run("bet above balance is rejected", func(t *testing.T) {
		p := NewPlayer("Alice", 100)
		err := p.PlaceBet(150)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, 100, p.Money)
		assert.Equal(t, 0, p.Bet)
	})

	t.Run("non-positive bet is rejected", func(t *testing.T) {
		p := NewPlayer("Alice", 100)
		assert.ErrorIs(t, p.PlaceBet(0), ErrInvalidBet)
		assert.ErrorIs(t, p.PlaceBet(-5), ErrInvalidBet)
		assert.Equal(t, 100, p.Money)
	})
}

func TestPlayerWin(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", 100)
	require.NoError(t, p.PlaceBet(25))
	p.Win(50)
	assert.Equal(t, 125, p.Money)
	assert.Equal(t, "Alice (Money: 125)", p.String())
}

func TestPlayerAndDealerShareHandLogic(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", 100)
	d := NewDealer()
	for _, c := range []deck.Card{
		deck.MustCard(deck.Ace, deck.Spades),
		deck.MustCard(deck.Ace, deck.Hearts),
		deck.MustCard(deck.Nine, deck.Clubs),
	} {
		p.ReceiveCard(c)
		d.ReceiveCard(c)
	}
	assert.Equal(t, 21, p.Value())
	assert.Equal(t, p.Value(), d.Value())
}

func TestDealerShouldHit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  bool
	}{
		{"10♠ 6♥", true},
		{"10♠ 7♥", false},
		{"A♠ 6♥", false},
		{"9♠ 8♥", false},
		{"2♠ 3♥", true},
		{"K♠ Q♥", false},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			d := NewDealer()
			for _, c := range cards(t, tt.cards) {
				d.ReceiveCard(c)
			}
			assert.Equal(t, tt.want, d.ShouldHit())
		})
	}
}
