// Package render draws cards, hands and the table as colored text.
package render

import (
	"fmt"
	"strings"

	"witches-game/internal/game"
	"witches-game/internal/shared"

	"github.com/charmbracelet/lipgloss"
)

var colorMap = map[shared.Color]lipgloss.Style{
	shared.None:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")),
	shared.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#44AAFF")).Bold(true),
	shared.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3fb950")),
	shared.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")),
	shared.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#f0c862")),
}

var subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))

func style(c shared.Color) lipgloss.Style {
	if s, ok := colorMap[c]; ok {
		return s
	}
	return colorMap[shared.None]
}

// Cards draws cards side by side as small boxes with the rank inside. Large
// boxes also show the first three letters of the color.
func Cards(cards []shared.Card, large bool) string {
	top, bottom := "╔══╗", "╚══╝"
	if large {
		top, bottom = "╔═══╗", "╚═══╝"
	}

	var tops, names, ranks, bottoms strings.Builder
	for _, card := range cards {
		s := style(card.Color)
		tops.WriteString(s.Render(top))
		bottoms.WriteString(s.Render(bottom))
		if large {
			names.WriteString(s.Render(fmt.Sprintf("║%s║", card.Color.String()[:3])))
			ranks.WriteString(s.Render(fmt.Sprintf("║%02d ║", card.Rank)))
		} else {
			ranks.WriteString(s.Render(fmt.Sprintf("║%02d║", card.Rank)))
		}
	}

	rows := []string{tops.String()}
	if large {
		rows = append(rows, names.String())
	}
	rows = append(rows, ranks.String(), bottoms.String())
	return strings.Join(rows, "\n")
}

// Indices draws the hand position under each card, aligned with Cards.
func Indices(n int, large bool) string {
	width := 4
	if large {
		width = 5
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(fmt.Sprintf("%-*d", width, i))
	}
	return subtle.Render(b.String())
}

// Table draws every hand followed by the trick in progress.
func Table(g *game.Game, large bool) string {
	var b strings.Builder
	b.WriteString(subtle.Render("====== Players Hands ======"))
	b.WriteString("\n")
	for pid, hand := range g.Hands() {
		label := fmt.Sprintf("Player %d", pid)
		if pid == g.Agent() {
			label += " (you)"
		}
		b.WriteString(label + "\n")
		b.WriteString(Cards(hand, large) + "\n")
	}
	b.WriteString(subtle.Render("======     Table     ======"))
	b.WriteString("\n")
	b.WriteString(Cards(g.Table(), large))
	return b.String()
}

// Scoreboard draws cumulative totals, one line per seat.
func Scoreboard(s *game.Scoreboard, agent int) string {
	var b strings.Builder
	b.WriteString(subtle.Render(fmt.Sprintf("Scores after %d rounds", s.Rounds)))
	for pid, total := range s.Totals {
		marker := ""
		if pid == agent {
			marker = " (you)"
		}
		fmt.Fprintf(&b, "\nPlayer %d%s: %d", pid, marker, total)
	}
	return b.String()
}
