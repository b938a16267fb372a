package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Table writes the game's progress to a terminal. It implements game.View.
type Table struct {
	w      io.Writer
	styles *Styles
}

// NewTable creates a table view writing to w. With color disabled, output is
// plain text regardless of the terminal.
func NewTable(w io.Writer, color bool) *Table {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Table{
		w:      w,
		styles: NewStyles(lipgloss.NewRenderer(w, opts...)),
	}
}

// ShowTitle prints the banner shown when the program starts.
func (t *Table) ShowTitle(title string) {
	fmt.Fprintln(t.w, t.styles.Title.Render(" "+title+" "))
	fmt.Fprintln(t.w)
}

// ShowTable prints both hands. The dealer's last card is hidden until
// revealDealer is set.
func (t *Table) ShowTable(player *game.Player, dealer *game.Dealer, revealDealer bool) {
	fmt.Fprintln(t.w, t.playerLine(player))
	if revealDealer {
		fmt.Fprintln(t.w, t.dealerLine(dealer))
	} else {
		fmt.Fprintln(t.w, t.hiddenDealerLine(dealer))
	}
	fmt.Fprintln(t.w)
}

// ShowReshuffle announces a fresh deck
func (t *Table) ShowReshuffle() {
	fmt.Fprintln(t.w, t.styles.Info.Render("Deck reshuffled!"))
}

// ShowError prints a recoverable input problem.
func (t *Table) ShowError(err error) {
	msg := err.Error()
	if errors.Is(err, game.ErrInsufficientFunds) {
		msg = "Insufficient funds!"
	}
	fmt.Fprintln(t.w, t.styles.Error.Render(msg))
}

// ShowMessage prints an informational line
func (t *Table) ShowMessage(msg string) {
	fmt.Fprintln(t.w, t.styles.Info.Render(msg))
}

// ShowResult prints the outcome, both hands fully revealed and the balance.
func (t *Table) ShowResult(r game.RoundResult) {
	fmt.Fprintln(t.w, t.outcomeStyle(r.Outcome).Render(r.Outcome.Message()))
	fmt.Fprintf(t.w, "%s %s %s\n",
		t.styles.Label.Render("Player's Hand:"),
		t.formatCards(r.PlayerCards),
		t.styles.Total.Render(fmt.Sprintf("(%d)", r.PlayerTotal)))
	fmt.Fprintf(t.w, "%s %s %s\n",
		t.styles.Label.Render("Dealer's Hand:"),
		t.formatCards(r.DealerCards),
		t.styles.Total.Render(fmt.Sprintf("(%d)", r.DealerTotal)))
	fmt.Fprintf(t.w, "%s %s\n",
		t.styles.Label.Render("Player's Money:"),
		t.styles.Money.Render(fmt.Sprintf("%d", r.Balance)))
	fmt.Fprintln(t.w)
}

func (t *Table) playerLine(p *game.Player) string {
	return fmt.Sprintf("%s %s %s",
		t.styles.Label.Render("Player's Hand:"),
		t.formatCards(p.Cards()),
		t.styles.Total.Render(totalLabel(&p.Hand)))
}

func (t *Table) dealerLine(d *game.Dealer) string {
	return fmt.Sprintf("%s %s %s",
		t.styles.Label.Render("Dealer's Hand:"),
		t.formatCards(d.Cards()),
		t.styles.Total.Render(totalLabel(&d.Hand)))
}

func (t *Table) hiddenDealerLine(d *game.Dealer) string {
	if d.Len() == 0 {
		return t.styles.Label.Render("Dealer's Hand:")
	}
	parts := t.renderCards(d.VisibleCards())
	parts = append(parts, t.styles.Hidden.Render(game.HiddenCard))
	return t.styles.Label.Render("Dealer's Hand:") + " " + strings.Join(parts, ", ")
}

func (t *Table) formatCards(cards []deck.Card) string {
	return strings.Join(t.renderCards(cards), ", ")
}

func (t *Table) renderCards(cards []deck.Card) []string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = t.styles.CardRed.Render(c.String())
		} else {
			parts[i] = t.styles.CardBlack.Render(c.String())
		}
	}
	return parts
}

func (t *Table) outcomeStyle(o game.Outcome) lipgloss.Style {
	switch {
	case o.PlayerWon():
		return t.styles.Win
	case o == game.Push:
		return t.styles.Push
	default:
		return t.styles.Lose
	}
}

// totalLabel returns "(21)", "(soft 17)" or "(24, bust)".
func totalLabel(h *game.Hand) string {
	v := h.Value()
	switch {
	case v > game.BlackjackTotal:
		return fmt.Sprintf("(%d, bust)", v)
	case h.IsSoft() && v < game.BlackjackTotal:
		return fmt.Sprintf("(soft %d)", v)
	default:
		return fmt.Sprintf("(%d)", v)
	}
}
