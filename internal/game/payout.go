package game

import (
	"github.com/cardsmith/blackjack/internal/deck"
)

// Result classifies a player's round outcome
type Result int

const (
	ResultWin Result = iota
	ResultWinDealerBust
	ResultBlackjack
	ResultLoss
	ResultBust
	ResultPush
)

func (r Result) String() string {
	return [...]string{"win", "win_dealer_bust", "blackjack", "loss", "bust", "push"}[r]
}

// Won reports whether the result pays the player
func (r Result) Won() bool {
	return r == ResultWin || r == ResultWinDealerBust || r == ResultBlackjack
}

// Outcome is the structured per-player result of a round; the presentation
// layer owns all formatting of it.
type Outcome struct {
	PlayerID int
	Result   Result
	// Delta is the balance change: -bet on a loss, +2*bet on a win, 0 on
	// a push
	Delta int
	// Balance is the player's balance after the delta is applied
	Balance int
	// Bankrupt is set when this round took the player out of the game
	Bankrupt bool
}

// resolveOutcome evaluates one player's hand against the final dealer
// hand. A busted player loses outright even if the dealer also busts. A
// blackjack always pays double, with no push against the dealer. The
// remaining comparison is on hard sums via CompareTo.
func resolveOutcome(p *Player, hand, dealerHand *deck.Hand) Outcome {
	bet := p.Bet.Sum()
	out := Outcome{PlayerID: p.ID}

	switch {
	case hand.Busted():
		out.Result = ResultBust
		out.Delta = -bet
	case dealerHand.Busted():
		out.Result = ResultWinDealerBust
		out.Delta = 2 * bet
	case hand.IsBlackjack():
		out.Result = ResultBlackjack
		out.Delta = 2 * bet
	default:
		switch cmp := dealerHand.CompareTo(hand); {
		case cmp > 0:
			out.Result = ResultLoss
			out.Delta = -bet
		case cmp < 0:
			out.Result = ResultWin
			out.Delta = 2 * bet
		default:
			out.Result = ResultPush
		}
	}

	return out
}
