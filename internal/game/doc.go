// Package game implements single-player blackjack against an automated dealer.
//
// The main type is Game, which owns the deck, the player and the dealer and
// drives each round through a fixed sequence of states:
//
//	AwaitingBet -> InitialDeal -> PlayerTurn -> DealerTurn -> Settlement
//
// A busted player skips DealerTurn. The dealer draws until its total reaches
// 17 and then stands.
//
// # Collaborators
//
// Game never touches the terminal directly. It reads answers through an Input
// and reports progress through a View:
//
//	g := game.New(game.DefaultConfig(), deck.New(randutil.New(42)), input, view,
//	    game.WithLogger(logger))
//	err := g.Run(0) // play until the player quits or runs out of money
//
// # Deterministic Testing
//
// Decks take an explicit *rand.Rand, so a fixed seed reproduces a session.
// deck.NewStacked lets tests fix the exact cards dealt:
//
//	d := deck.NewStacked(nil, filler, dealer2, player2, dealer1, player1)
//	g := game.New(cfg, d, input, view)
//	result, err := g.PlayRound()
//
// # Hand Values
//
// Hand.Value sums card values with aces at 11, then drops aces to 1 one at a
// time while the hand is over 21. Player and Dealer both embed a Hand.
package game
