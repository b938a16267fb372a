package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/blackjack/internal/statistics"
)

// ShowSummary prints the end-of-session statistics in a bordered box.
func (t *Table) ShowSummary(s *statistics.Session) {
	if s.Rounds == 0 {
		fmt.Fprintln(t.w, t.styles.Info.Render("No rounds played."))
		return
	}

	var b strings.Builder
	row := func(label string, value any) {
		fmt.Fprintf(&b, "%-14s %v\n", label, value)
	}
	row("Rounds", s.Rounds)
	row("Won/Lost/Push", fmt.Sprintf("%d/%d/%d", s.Wins, s.Losses, s.Pushes))
	row("Win rate", fmt.Sprintf("%.1f%%", s.WinRate()*100))
	row("Busts", fmt.Sprintf("you %d, dealer %d", s.PlayerBusts, s.DealerBusts))
	if s.Forfeits > 0 {
		row("Forfeits", s.Forfeits)
	}
	row("Best streak", s.BestWinStreak)
	row("Wagered", s.Wagered)
	row("Net", fmt.Sprintf("%+d", s.Net()))
	row("Per round", fmt.Sprintf("%+.2f ± %.2f", s.Mean(), s.StdDev()))
	row("Peak money", s.PeakMoney)
	row("Final money", s.Money)
	row("Reshuffles", s.Reshuffles)
	fmt.Fprintf(&b, "%-14s %s", "Time played", s.Duration().Round(time.Second))

	fmt.Fprintln(t.w, t.styles.Label.Render("Session summary"))
	fmt.Fprintln(t.w, t.styles.Summary.Render(b.String()))
}
