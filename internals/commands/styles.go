package commands

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleHeadline is used for the final summary line
var StyleHeadline = lipgloss.NewStyle().
	Bold(true).
	MarginTop(1).
	Foreground(lipgloss.AdaptiveColor{Light: "#1b5e20", Dark: "#81c784"})

var styleSummaryBox = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderLeftForeground(lipgloss.Color("#66bb6a")).
	PaddingLeft(2)

// SummaryBox renders lines below a headline
func SummaryBox(headline string, lines ...string) string {
	if len(lines) == 0 {
		return StyleHeadline.Render(headline)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		StyleHeadline.Render(headline),
		styleSummaryBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
	)
}
