package game

import "github.com/cardsmith/blackjack/internal/deck"

// DealerPlay drives the dealer's drawing policy against an already-revealed
// hand: stand on any 18 or better, stand on a hard 17, and on a soft 17
// draw only when hitSoft17 is set. Bust detection uses the hard sum; a hand
// that exceeds 21 is marked busted and play stops.
func DealerPlay(d *deck.Deck, hand *deck.Hand, hitSoft17 bool) error {
	for {
		total := hand.Sum()

		if total > 21 {
			hand.MarkBusted()
			return nil
		}
		if total > 17 {
			return nil
		}
		if total == 17 && !(hitSoft17 && hand.IsSoft()) {
			return nil
		}

		if _, err := hand.DrawFrom(d); err != nil {
			return err
		}
	}
}
