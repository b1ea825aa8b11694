// Package display renders a PublicInfo as a human-readable, color-coded
// board for the CLI. It is a stateless formatter, not the interactive
// game loop — that harness stays external per spec.md §1.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hanabi-pimc/internal/card"
	"github.com/lox/hanabi-pimc/internal/hanabi"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	colorStyles = map[card.Color]lipgloss.Style{
		card.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		card.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		card.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6CA0F6")),
		card.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		card.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
	}

	tokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	bustStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// Render formats pub as a multi-line board: fireworks, tokens, and each
// seat's hint state.
func Render(pub hanabi.PublicInfo) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Fireworks"))
	b.WriteString(": ")
	b.WriteString(renderFireworks(pub.Fireworks))
	b.WriteString("\n")

	b.WriteString(tokenStyle.Render(fmt.Sprintf("blue tokens: %d/%d  black tokens: %d/%d",
		pub.BlueTokens, hanabi.StartingBlueTokens, pub.BlackTokens, hanabi.StartingBlackTokens)))
	if pub.BlackTokens == 1 {
		b.WriteString("  " + bustStyle.Render("BUST"))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Player hints"))
	b.WriteString(": " + renderHints(pub.PlayerHints[:]) + "\n")
	b.WriteString(headerStyle.Render("Opponent hints"))
	b.WriteString(": " + renderHints(pub.OpponentHints[:]) + "\n")

	if pub.LastRound {
		b.WriteString(fmt.Sprintf("final round: turn %d/2\n", pub.LastRoundTurnsTaken))
	}

	return b.String()
}

func renderFireworks(fireworks [card.NumColors]int) string {
	parts := make([]string, 0, card.NumColors)
	for c := card.Color(0); c < card.NumColors; c++ {
		style, ok := colorStyles[c]
		label := fmt.Sprintf("%s:%d", c, fireworks[c])
		if ok {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func renderHints(hints []card.Hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, renderHint(h))
	}
	return strings.Join(parts, " ")
}

func renderHint(h card.Hint) string {
	if h.IsNone() {
		return "--"
	}

	colors := make([]string, 0, card.NumColors)
	for c := card.Color(0); c < card.NumColors; c++ {
		if h.ColorMask&(1<<uint8(c)) != 0 {
			colors = append(colors, c.String())
		}
	}
	ranks := make([]string, 0, card.NumRanks)
	for r := card.One; r <= card.Five; r++ {
		if h.RankMask&(1<<uint8(r-1)) != 0 {
			ranks = append(ranks, r.String())
		}
	}
	return fmt.Sprintf("[%s|%s]", strings.Join(colors, ""), strings.Join(ranks, ""))
}
