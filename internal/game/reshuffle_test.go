package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshufflePolicyOnCardCount(t *testing.T) {
	t.Parallel()

	d := deck.New(randutil.New(1))
	g := newTestGame(d, scripted(), &recordingView{})

	for i := 0; i < 42; i++ {
		_, err := d.Deal()
		require.NoError(t, err)
	}
	assert.Equal(t, 10, d.Remaining())
	assert.False(t, g.ShouldReshuffle(), "ten cards is still enough")

	_, err := d.Deal()
	require.NoError(t, err)
	assert.True(t, g.ShouldReshuffle())

	assert.True(t, g.checkReshuffle())
	assert.Equal(t, deck.Size, d.Remaining())
}

func TestReshufflePolicyOnRoundCount(t *testing.T) {
	t.Parallel()

	view := &recordingView{}
	cfg := DefaultConfig()
	cfg.ReshuffleRounds = 2
	g := New(cfg, deck.New(randutil.New(8)), scripted("1", "s", "1", "s", "1", "s"), view,
		WithLogger(quietLogger()))

	for i := 0; i < 2; i++ {
		_, err := g.PlayRound()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, g.RoundsPlayed())
	assert.Equal(t, 0, view.reshuffles)
	assert.True(t, g.ShouldReshuffle())

	result, err := g.PlayRound()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Reshuffles)
	assert.Equal(t, 1, view.reshuffles)
	assert.Equal(t, 1, g.RoundsPlayed(), "counter resets on reshuffle, then counts this round")
}

func TestReshuffleBeforeInitialDealOnShortDeck(t *testing.T) {
	t.Parallel()

	view := &recordingView{}
	short := exactOrder(cards(t, "10♠ 9♦ 8♥ 8♣ 2♠")...)
	g := newTestGame(short, scripted("10", "s"), view)

	result, err := g.PlayRound()
	require.NoError(t, err)

	assert.Equal(t, 1, view.reshuffles)
	assert.GreaterOrEqual(t, result.Reshuffles, 1)
	assert.LessOrEqual(t, g.Deck().Remaining(), deck.Size-4)
}

func TestReshuffleDuringDealerTurn(t *testing.T) {
	t.Parallel()

	view := &recordingView{}
	// Ten cards exactly: no reshuffle before the deal, but the first dealer
	// draw drops the deck below the minimum.
	d := exactOrder(cards(t, "10♠ 2♦ 9♥ 3♣ 4♠ 2♣ 2♥ 2♦ 2♠ 3♠")...)
	g := newTestGame(d, scripted("10", "s"), view)

	result, err := g.PlayRound()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, view.reshuffles, 1)
	assert.Equal(t, view.reshuffles, result.Reshuffles)
	assert.GreaterOrEqual(t, result.DealerTotal, DealerStandsOn)
	assert.Equal(t, 1, g.RoundsPlayed())
}

func TestEmptyDeckIsFatal(t *testing.T) {
	t.Parallel()

	// Ten cards of low value: the player can keep hitting past the end of the
	// deck without busting.
	d := exactOrder(cards(t, "2♠ 10♦ 2♥ 10♣ 2♦ 2♣ A♠ A♥ A♦ A♣")...)
	answers := []string{"10"}
	for i := 0; i < 7; i++ {
		answers = append(answers, "h")
	}
	g := newTestGame(d, scripted(answers...), &recordingView{})

	_, err := g.PlayRound()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}
