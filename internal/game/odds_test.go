package game

import (
	"math"
	"testing"

	"github.com/cardsmith/blackjack/internal/deck"
	"github.com/cardsmith/blackjack/internal/randutil"
)

func TestBustProbabilityCertainBust(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Hearts, deck.Queen), deck.NewCard(deck.Clubs, deck.Five))
	d := deck.Build(randutil.New(1), 1)

	if got := BustProbability(d, hand); got != 1.0 {
		t.Errorf("BustProbability = %v for an already busted total, want 1", got)
	}
}

func TestBustProbabilityImpossibleBust(t *testing.T) {
	t.Parallel()
	// 10 plus any card is at most 21; note an ace projects as 11, so 11
	// is the smallest total an aceless hand can "bust" from
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Five), deck.NewCard(deck.Hearts, deck.Five))
	d := deck.Build(randutil.New(1), 1)

	if got := BustProbability(d, hand); got != 0 {
		t.Errorf("BustProbability = %v on 10, want 0", got)
	}
}

func TestBustProbabilityCountsBustingCards(t *testing.T) {
	t.Parallel()
	// on 16, anything above a five busts: a rigged shoe of one six and
	// three kings gives 3/4
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.Stacked(randutil.New(1),
		deck.NewCard(deck.Clubs, deck.Six),
		deck.NewCard(deck.Clubs, deck.King),
		deck.NewCard(deck.Diamonds, deck.King),
		deck.NewCard(deck.Hearts, deck.King),
	)

	got := BustProbability(d, hand)
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("BustProbability = %v, want 0.75", got)
	}
}

func TestBustProbabilityEmptyDeck(t *testing.T) {
	t.Parallel()
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.New(randutil.New(1))

	if got := BustProbability(d, hand); got != 0 {
		t.Errorf("BustProbability = %v on an empty deck, want 0", got)
	}
}

func TestBustProbabilityAceAdjustment(t *testing.T) {
	t.Parallel()
	// A+6 plays as 17; a king projects 27, leveled to 17 by the ace, so
	// it does not bust
	hand := deck.NewHand(deck.NewCard(deck.Spades, deck.Ace), deck.NewCard(deck.Hearts, deck.Six))
	d := deck.Stacked(randutil.New(1), deck.NewCard(deck.Clubs, deck.King))

	if got := BustProbability(d, hand); got != 0 {
		t.Errorf("BustProbability = %v for a soft hand, want 0", got)
	}
}
