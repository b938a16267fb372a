package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// State is a step of the round state machine.
type State int

const (
	AwaitingBet State = iota
	InitialDeal
	PlayerTurn
	DealerTurn
	Settlement
)

// String returns the state name
func (s State) String() string {
	switch s {
	case AwaitingBet:
		return "awaiting_bet"
	case InitialDeal:
		return "initial_deal"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Settlement:
		return "settlement"
	default:
		return "unknown"
	}
}

// Config holds the table settings for a game.
type Config struct {
	PlayerName    string
	StartingMoney int
	// ReshuffleRounds is the number of completed rounds after which the deck
	// is regenerated.
	ReshuffleRounds int
	// MinCards forces a reshuffle once fewer cards than this remain.
	MinCards int
}

// DefaultConfig returns the standard table: $100 bankroll, reshuffle every 5
// rounds or below 10 cards.
func DefaultConfig() Config {
	return Config{
		PlayerName:      "Player",
		StartingMoney:   100,
		ReshuffleRounds: 5,
		MinCards:        10,
	}
}

// Validate checks that the settings describe a playable table.
func (c Config) Validate() error {
	if c.StartingMoney <= 0 {
		return fmt.Errorf("starting money must be positive, got %d", c.StartingMoney)
	}
	if c.ReshuffleRounds <= 0 {
		return fmt.Errorf("reshuffle rounds must be positive, got %d", c.ReshuffleRounds)
	}
	// Four cards leave the deck before anyone acts.
	if c.MinCards < 4 || c.MinCards > deck.Size {
		return fmt.Errorf("min cards must be between 4 and %d, got %d", deck.Size, c.MinCards)
	}
	return nil
}

// Option configures optional Game collaborators.
type Option func(*Game)

// WithLogger sets the logger used for round events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithObserver registers an observer that sees every settled round.
func WithObserver(o RoundObserver) Option {
	return func(g *Game) {
		g.observers = append(g.observers, o)
	}
}

// Game runs blackjack rounds for one player against the dealer.
type Game struct {
	deck   *deck.Deck
	player *Player
	dealer *Dealer
	input  Input
	view   View
	logger *log.Logger

	observers []RoundObserver

	state              State
	roundsPlayed       int
	reshuffleThreshold int
	minCards           int

	round      int // rounds started in this session, never reset
	reshuffles int // reshuffles during the current round
}

// New creates a game dealing from d. The deck is owned by the game from here on.
func New(cfg Config, d *deck.Deck, input Input, view View, opts ...Option) *Game {
	if d == nil {
		panic("deck is required")
	}
	if input == nil || view == nil {
		panic("input and view are required")
	}
	if err := cfg.Validate(); err != nil {
		panic("invalid game config: " + err.Error())
	}

	g := &Game{
		deck:               d,
		player:             NewPlayer(cfg.PlayerName, cfg.StartingMoney),
		dealer:             NewDealer(),
		input:              input,
		view:               view,
		logger:             log.New(io.Discard),
		reshuffleThreshold: cfg.ReshuffleRounds,
		minCards:           cfg.MinCards,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Player returns the player seat
func (g *Game) Player() *Player { return g.player }

// Deck returns the deck in play
func (g *Game) Deck() *deck.Deck { return g.deck }

// State returns the current round state
func (g *Game) State() State { return g.state }

// RoundsPlayed returns completed rounds since the last reshuffle.
func (g *Game) RoundsPlayed() int { return g.roundsPlayed }

// Run plays rounds until the player quits, runs out of money, or limit rounds
// have been played. A limit of zero means no limit. Quitting is not an error.
func (g *Game) Run(limit int) error {
	for played := 0; limit == 0 || played < limit; played++ {
		if g.player.Broke() {
			g.logger.Info("Player is out of money", "rounds", g.round)
			g.view.ShowMessage("You're out of money. Thanks for playing!")
			return nil
		}

		_, err := g.PlayRound()
		if errors.Is(err, ErrQuit) {
			g.logger.Info("Player left the table", "rounds", g.round, "money", g.player.Money)
			return nil
		}
		if err != nil {
			return err
		}
	}
	g.logger.Info("Round limit reached", "limit", limit)
	return nil
}

// PlayRound runs one full round from bet to settlement. It returns ErrQuit if
// the player leaves. Leaving after the bet settles the round as a Forfeit,
// which observers see like any other result.
func (g *Game) PlayRound() (RoundResult, error) {
	g.round++
	g.reshuffles = 0
	logger := g.logger.With("round", g.round)

	g.state = AwaitingBet
	g.player.Reset()
	g.dealer.Reset()

	if err := g.collectBet(); err != nil {
		return RoundResult{}, err
	}
	logger.Info("Bet placed", "bet", g.player.Bet, "money", g.player.Money)
	g.checkReshuffle()

	g.state = InitialDeal
	for i := 0; i < 2; i++ {
		if err := g.dealTo(g.player, "player"); err != nil {
			return RoundResult{}, err
		}
		if err := g.dealTo(g.dealer, "dealer"); err != nil {
			return RoundResult{}, err
		}
	}
	logger.Debug("Initial deal", "player", g.player.String(), "hand", g.player.Hand.String())
	g.view.ShowTable(g.player, g.dealer, false)

	g.state = PlayerTurn
	busted, err := g.playerTurn(logger)
	if errors.Is(err, ErrQuit) {
		result := g.forfeit()
		logger.Info("Player left mid-round", "bet", result.Bet, "money", result.Balance)
		g.notify(result)
		return result, ErrQuit
	}
	if err != nil {
		return RoundResult{}, err
	}

	if !busted {
		g.state = DealerTurn
		if err := g.dealerTurn(logger); err != nil {
			return RoundResult{}, err
		}
	}

	result := g.settle()
	logger.Info("Round settled",
		"outcome", result.Outcome,
		"player_total", result.PlayerTotal,
		"dealer_total", result.DealerTotal,
		"payout", result.Payout,
		"money", result.Balance)

	g.view.ShowResult(result)
	g.notify(result)
	return result, nil
}

func (g *Game) notify(result RoundResult) {
	for _, o := range g.observers {
		o.Record(result)
	}
}

// collectBet prompts until a bet is accepted. Rejected bets never reach the
// deal.
func (g *Game) collectBet() error {
	for {
		line, err := g.input.ReadLine(BetPrompt(g.player.Money))
		if err != nil {
			if isQuit(err) {
				return ErrQuit
			}
			return fmt.Errorf("read bet: %w", err)
		}

		amount, err := ParseBet(line)
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		if err == nil {
			err = g.player.PlaceBet(amount)
		}
		if err != nil {
			g.logger.Debug("Bet rejected", "input", line, "error", err)
			g.view.ShowError(err)
			continue
		}
		return nil
	}
}

// playerTurn loops on hit/stand. It reports whether the player busted.
func (g *Game) playerTurn(logger *log.Logger) (bool, error) {
	for {
		line, err := g.input.ReadLine(ActionPrompt)
		if err != nil {
			if isQuit(err) {
				return false, ErrQuit
			}
			return false, fmt.Errorf("read action: %w", err)
		}

		action, err := ParseAction(line)
		if err != nil {
			logger.Debug("Ignoring action", "input", line)
			continue
		}

		switch action {
		case Hit:
			if err := g.dealTo(g.player, "player"); err != nil {
				return false, err
			}
			logger.Debug("Player hits", "hand", g.player.Hand.String(), "total", g.player.Value())
			g.view.ShowTable(g.player, g.dealer, false)
			if g.player.IsBust() {
				return true, nil
			}
		case Stand:
			logger.Debug("Player stands", "total", g.player.Value())
			return false, nil
		}
	}
}

// dealerTurn draws to 17, checking the reshuffle policy after every card.
func (g *Game) dealerTurn(logger *log.Logger) error {
	for g.dealer.ShouldHit() {
		if err := g.dealTo(g.dealer, "dealer"); err != nil {
			return err
		}
		logger.Debug("Dealer hits", "hand", g.dealer.Hand.String(), "total", g.dealer.Value())
		g.view.ShowTable(g.player, g.dealer, true)
		g.checkReshuffle()
	}
	return nil
}

func (g *Game) settle() RoundResult {
	outcome := decide(g.player.Value(), g.dealer.Value())

	payout := 0
	if outcome.PlayerWon() {
		payout = 2 * g.player.Bet
		g.player.Win(payout)
	}
	return g.finish(outcome, payout)
}

// forfeit closes a round the player walked away from. The stake is lost and
// the dealer never plays.
func (g *Game) forfeit() RoundResult {
	return g.finish(Forfeit, 0)
}

func (g *Game) finish(outcome Outcome, payout int) RoundResult {
	g.state = Settlement
	g.roundsPlayed++
	return RoundResult{
		Round:       g.round,
		Outcome:     outcome,
		PlayerTotal: g.player.Value(),
		DealerTotal: g.dealer.Value(),
		Bet:         g.player.Bet,
		Payout:      payout,
		Balance:     g.player.Money,
		PlayerCards: g.player.Cards(),
		DealerCards: g.dealer.Cards(),
		Reshuffles:  g.reshuffles,
	}
}

// ShouldReshuffle reports whether the reshuffle policy would fire now.
func (g *Game) ShouldReshuffle() bool {
	return g.roundsPlayed >= g.reshuffleThreshold || g.deck.Remaining() < g.minCards
}

// checkReshuffle regenerates the deck when the round count or the remaining
// card count crosses its threshold.
func (g *Game) checkReshuffle() bool {
	if !g.ShouldReshuffle() {
		return false
	}
	g.logger.Info("Reshuffling deck", "rounds_played", g.roundsPlayed, "remaining", g.deck.Remaining())
	g.deck.Reshuffle()
	g.roundsPlayed = 0
	g.reshuffles++
	g.view.ShowReshuffle()
	return true
}

// dealTo moves one card from the deck into h. An empty deck means the
// reshuffle policy failed and is not recoverable.
func (g *Game) dealTo(h cardReceiver, who string) error {
	card, err := g.deck.Deal()
	if err != nil {
		return fmt.Errorf("deal to %s: %w", who, err)
	}
	h.ReceiveCard(card)
	return nil
}

type cardReceiver interface {
	ReceiveCard(card deck.Card)
}
