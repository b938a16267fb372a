// Package statistics keeps in-memory results for one blackjack session.
package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/game"
)

// Session accumulates round results for the lifetime of the process. It is
// never persisted.
type Session struct {
	ID    string
	clock quartz.Clock

	StartedAt time.Time

	Rounds      int
	Wins        int
	Losses      int
	Pushes      int
	PlayerBusts int
	DealerBusts int
	Forfeits    int
	Reshuffles  int

	Wagered int
	SumNet  int
	SumNet2 int // sum of squares for variance

	StartingMoney int
	Money         int
	PeakMoney     int

	BestWinStreak int
	winStreak     int
}

// NewSession starts a session at the clock's current time. A nil clock uses
// the real wall clock.
func NewSession(startingMoney int, clock quartz.Clock) *Session {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Session{
		ID:            uuid.NewString(),
		clock:         clock,
		StartedAt:     clock.Now(),
		StartingMoney: startingMoney,
		Money:         startingMoney,
		PeakMoney:     startingMoney,
	}
}

// Record adds a settled round. It satisfies game.RoundObserver.
func (s *Session) Record(r game.RoundResult) {
	s.Rounds++
	s.Reshuffles += r.Reshuffles
	s.Wagered += r.Bet

	net := r.Net()
	s.SumNet += net
	s.SumNet2 += net * net

	switch r.Outcome {
	case game.PlayerWin, game.DealerBust:
		s.Wins++
		s.winStreak++
		if s.winStreak > s.BestWinStreak {
			s.BestWinStreak = s.winStreak
		}
	case game.Push:
		s.Pushes++
		s.winStreak = 0
	default:
		s.Losses++
		s.winStreak = 0
	}
	switch r.Outcome {
	case game.PlayerBust:
		s.PlayerBusts++
	case game.Forfeit:
		s.Forfeits++
	case game.DealerBust:
		s.DealerBusts++
	}

	s.Money = r.Balance
	if s.Money > s.PeakMoney {
		s.PeakMoney = s.Money
	}
}

// Net returns the change in bankroll since the session started.
func (s *Session) Net() int {
	return s.Money - s.StartingMoney
}

// WinRate returns wins as a fraction of rounds played
func (s *Session) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Mean returns the average net result per round
func (s *Session) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.SumNet) / float64(s.Rounds)
}

// Variance returns the sample variance of per-round results
func (s *Session) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (float64(s.SumNet2) - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of per-round results
func (s *Session) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Duration returns the time from session start to now.
func (s *Session) Duration() time.Duration {
	return s.clock.Since(s.StartedAt)
}

// Validate checks that the outcome counters add up.
func (s *Session) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcomes (%d wins, %d losses, %d pushes) do not add up to %d rounds",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	if s.PlayerBusts+s.Forfeits > s.Losses {
		return fmt.Errorf("player busts (%d) and forfeits (%d) exceed losses (%d)",
			s.PlayerBusts, s.Forfeits, s.Losses)
	}
	if s.DealerBusts > s.Wins {
		return fmt.Errorf("dealer busts (%d) exceed wins (%d)", s.DealerBusts, s.Wins)
	}
	return nil
}
