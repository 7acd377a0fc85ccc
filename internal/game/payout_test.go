package game

import (
	"testing"

	"github.com/cardsmith/blackjack/internal/chips"
	"github.com/cardsmith/blackjack/internal/deck"
)

func playerWithBet(t *testing.T, bet int) *Player {
	t.Helper()
	p := NewPlayer(0, chips.FromAmount(500))
	p.Bet = chips.Bet(chips.IntoChips(bet))
	return p
}

func TestPayoutPlayerBusted(t *testing.T) {
	t.Parallel()
	p := playerWithBet(t, 100)
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen), deck.NewCard(deck.Clubs, deck.Five))
	hand.MarkBusted()
	dealer := deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Seven))

	out := resolveOutcome(p, hand, dealer)
	if out.Result != ResultBust || out.Delta != -100 {
		t.Errorf("got %s delta %d, want bust -100", out.Result, out.Delta)
	}
}

func TestPayoutBustedPlayerLosesEvenIfDealerBusts(t *testing.T) {
	t.Parallel()
	p := playerWithBet(t, 100)
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen), deck.NewCard(deck.Clubs, deck.Five))
	hand.MarkBusted()
	dealer := deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Seven), deck.NewCard(deck.Hearts, deck.Nine))
	dealer.MarkBusted()

	out := resolveOutcome(p, hand, dealer)
	if out.Result != ResultBust || out.Delta != -100 {
		t.Errorf("got %s delta %d, want bust -100", out.Result, out.Delta)
	}
}

func TestPayoutDealerBusted(t *testing.T) {
	t.Parallel()
	p := playerWithBet(t, 100)
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Five))
	dealer := deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Seven), deck.NewCard(deck.Hearts, deck.Nine))
	dealer.MarkBusted()

	out := resolveOutcome(p, hand, dealer)
	if out.Result != ResultWinDealerBust || out.Delta != 200 {
		t.Errorf("got %s delta %d, want win_dealer_bust +200", out.Result, out.Delta)
	}
}

func TestPayoutBlackjackAlwaysPaysDouble(t *testing.T) {
	t.Parallel()
	p := playerWithBet(t, 100)
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King))
	// dealer holds a higher hard sum; blackjack still wins
	dealer := deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ace), deck.NewCard(deck.Clubs, deck.Five), deck.NewCard(deck.Hearts, deck.Five))

	out := resolveOutcome(p, hand, dealer)
	if out.Result != ResultBlackjack || out.Delta != 200 {
		t.Errorf("got %s delta %d, want blackjack +200", out.Result, out.Delta)
	}
}

func TestPayoutComparisonOnHardSums(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		player     *deck.Hand
		dealer     *deck.Hand
		wantResult Result
		wantDelta  int
	}{
		{
			"dealer greater loses the bet",
			deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Eight)),
			deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Nine)),
			ResultLoss, -100,
		},
		{
			"dealer less pays double",
			deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine)),
			deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Eight)),
			ResultWin, 200,
		},
		{
			"equal hard sums push",
			deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine)),
			deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Nine)),
			ResultPush, 0,
		},
		{
			// hard sums, not leveled totals: player A+K+2 is hard 23,
			// beating the dealer's hard 19 despite playing as 13
			"leveled hand still compares by hard sum",
			deck.NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.King), deck.NewCard(deck.Clubs, deck.Two)),
			deck.NewHand(deck.NewCard(deck.Diamonds, deck.Ten), deck.NewCard(deck.Clubs, deck.Nine)),
			ResultWin, 200,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := playerWithBet(t, 100)
			out := resolveOutcome(p, test.player, test.dealer)
			if out.Result != test.wantResult || out.Delta != test.wantDelta {
				t.Errorf("got %s delta %d, want %s %d", out.Result, out.Delta, test.wantResult, test.wantDelta)
			}
		})
	}
}
