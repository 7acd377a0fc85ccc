package game

import "github.com/cardsmith/blackjack/internal/deck"

// BustProbability returns the chance that the next card busts the hand,
// counting busting cards over the remaining deck. The hypothetical total
// gets the same single-ace adjustment the hand itself would: when the hand
// holds an Ace and the projected total exceeds 21, the total is reduced by
// 10 before the bust test.
func BustProbability(d *deck.Deck, h *deck.Hand) float64 {
	value := h.LevelOffAce()
	if value > 21 {
		return 1.0
	}
	if d.Len() == 0 {
		return 0
	}

	busting := 0
	for _, c := range d.Cards() {
		sum := value + c.Value()
		if h.Contains(deck.Ace) && sum > 21 {
			sum -= 10
		}
		if sum > 21 {
			busting++
		}
	}
	return float64(busting) / float64(d.Len())
}
