// Package display renders the blackjack table to a terminal with lipgloss.
package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for game display
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Total     lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Push      lipgloss.Style
	Money     lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Summary   lipgloss.Style
}

// NewStyles builds the style set against a renderer so the color profile of
// the output writer is respected.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
		Total: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Summary: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")),
	}
}
