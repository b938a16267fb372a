package game

import (
	"io"

	"github.com/lox/blackjack/internal/deck"
)

// scriptedInput answers prompts from a fixed list and then reports EOF.
type scriptedInput struct {
	answers []string
	prompts []string
}

func scripted(answers ...string) *scriptedInput {
	return &scriptedInput{answers: answers}
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	line := s.answers[0]
	s.answers = s.answers[1:]
	return line, nil
}

// recordingView keeps everything the game reports.
type recordingView struct {
	tables     int
	hidden     []string
	reshuffles int
	errors     []error
	messages   []string
	results    []RoundResult
}

func (v *recordingView) ShowTable(player *Player, dealer *Dealer, revealDealer bool) {
	v.tables++
	if !revealDealer {
		v.hidden = append(v.hidden, hiddenLine(dealer))
	}
}

func (v *recordingView) ShowReshuffle()         { v.reshuffles++ }
func (v *recordingView) ShowError(err error)    { v.errors = append(v.errors, err) }
func (v *recordingView) ShowMessage(msg string) { v.messages = append(v.messages, msg) }
func (v *recordingView) ShowResult(r RoundResult) {
	v.results = append(v.results, r)
}

// hiddenLine renders the dealer's hand the way the player sees it before the
// reveal.
func hiddenLine(d *Dealer) string {
	visible := joinCards(d.VisibleCards())
	if visible == "" {
		return HiddenCard
	}
	return visible + ", " + HiddenCard
}

type recordingObserver struct {
	results []RoundResult
}

func (o *recordingObserver) Record(r RoundResult) {
	o.results = append(o.results, r)
}

func cards(t interface{ Fatalf(string, ...any) }, s string) []deck.Card {
	cs, err := deck.ParseCards(s)
	if err != nil {
		t.Fatalf("bad cards %q: %v", s, err)
	}
	return cs
}

// fillerCards keeps a scripted deck at the reshuffle minimum once every
// scripted card has been dealt.
const fillerCards = 10

// dealOrder builds a deck that deals the given cards in order, padded with
// filler underneath so the reshuffle policy does not fire before the deal.
func dealOrder(inOrder ...deck.Card) *deck.Deck {
	stack := make([]deck.Card, 0, len(inOrder)+fillerCards)
	for len(stack) < fillerCards {
		stack = append(stack, deck.MustCard(deck.Two, deck.Clubs))
	}
	for i := len(inOrder) - 1; i >= 0; i-- {
		stack = append(stack, inOrder[i])
	}
	return deck.NewStacked(nil, stack...)
}

// exactOrder builds a deck holding only the given cards, dealt in order.
func exactOrder(inOrder ...deck.Card) *deck.Deck {
	stack := make([]deck.Card, 0, len(inOrder))
	for i := len(inOrder) - 1; i >= 0; i-- {
		stack = append(stack, inOrder[i])
	}
	return deck.NewStacked(nil, stack...)
}
