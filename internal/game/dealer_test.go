package game

import (
	"errors"
	"testing"

	"github.com/cardsmith/blackjack/internal/deck"
	"github.com/cardsmith/blackjack/internal/randutil"
)

func TestDealerStandsOnHard17(t *testing.T) {
	t.Parallel()
	for _, hitSoft17 := range []bool{true, false} {
		hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Seven))
		d := deck.New(randutil.New(1)) // empty: any draw would fail

		if err := DealerPlay(d, hand, hitSoft17); err != nil {
			t.Fatalf("hitSoft17=%v: %v", hitSoft17, err)
		}
		if hand.Len() != 2 {
			t.Errorf("hitSoft17=%v: dealer drew on hard 17", hitSoft17)
		}
		if hand.Busted() {
			t.Errorf("hitSoft17=%v: hard 17 is not a bust", hitSoft17)
		}
	}
}

func TestDealerHitsSoft17WhenConfigured(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.Stacked(randutil.New(1), deck.NewCard(deck.Clubs, deck.Two))

	if err := DealerPlay(d, hand, true); err != nil {
		t.Fatal(err)
	}
	if hand.Len() != 3 {
		t.Fatalf("dealer should draw on soft 17 when hitting soft 17, hand has %d cards", hand.Len())
	}
	if hand.Sum() != 19 || hand.Busted() {
		t.Errorf("dealer should stand on 19, sum=%d busted=%v", hand.Sum(), hand.Busted())
	}
}

func TestDealerStandsOnSoft17ByDefault(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.New(randutil.New(1))

	if err := DealerPlay(d, hand, false); err != nil {
		t.Fatal(err)
	}
	if hand.Len() != 2 {
		t.Error("dealer drew on soft 17 with hitSoft17 disabled")
	}
}

func TestDealerDrawsBelow17(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.Stacked(randutil.New(1), deck.NewCard(deck.Clubs, deck.Two))

	if err := DealerPlay(d, hand, false); err != nil {
		t.Fatal(err)
	}
	if hand.Sum() != 18 {
		t.Errorf("dealer finished on %d, want 18", hand.Sum())
	}
}

func TestDealerBustsOnHardSum(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.Stacked(randutil.New(1), deck.NewCard(deck.Clubs, deck.King))

	if err := DealerPlay(d, hand, false); err != nil {
		t.Fatal(err)
	}
	if !hand.Busted() {
		t.Error("dealer on hard 26 should be busted")
	}
}

func TestDealerEmptyDeck(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.New(randutil.New(1))

	if err := DealerPlay(d, hand, false); !errors.Is(err, deck.ErrEmptyDeck) {
		t.Errorf("DealerPlay returned %v, want ErrEmptyDeck", err)
	}
}
