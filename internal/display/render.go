package display

import (
	"strings"

	"github.com/cardsmith/blackjack/internal/deck"
)

// RenderCard styles a single card: red suits red, black suits blue, hole
// cards as a green mask.
func RenderCard(c deck.Card) string {
	if c.IsHidden() {
		return HoleCardStyle.Render("■■")
	}
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// RenderHand renders a hand's cards separated by spaces, hole cards masked
func RenderHand(h *deck.Hand) string {
	parts := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		parts = append(parts, RenderCard(c))
	}
	return strings.Join(parts, " ")
}
