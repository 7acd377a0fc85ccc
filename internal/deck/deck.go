package deck

import rand "math/rand/v2"

// Deck is an ordered collection of cards acting as a stack: cards are
// removed from the end of the slice, which is the top of the deck.
// Randomness is explicit so tests can inject a deterministic source.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// suits and ranks in the fixed enumeration order used by Build
var (
	suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// New creates an empty deck bound to the given RNG
func New(rng *rand.Rand) *Deck {
	return &Deck{rng: rng}
}

// Build creates a deck containing multiplier full 52-card sets in a fixed
// suit/rank enumeration order, all cards visible.
func Build(rng *rand.Rand, multiplier int) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52*multiplier),
		rng:   rng,
	}
	for i := 0; i < multiplier; i++ {
		for _, suit := range suits {
			for _, rank := range ranks {
				d.cards = append(d.cards, NewCard(suit, rank))
			}
		}
	}
	return d
}

// Stacked builds a deck containing exactly the given cards, last card on
// top. Useful for deterministic dealing in tests.
func Stacked(rng *rand.Rand, cards ...Card) *Deck {
	d := &Deck{rng: rng}
	d.cards = append(d.cards, cards...)
	return d
}

// Shuffle performs an in-place Fisher-Yates permutation
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reshuffle replaces the deck's contents with a freshly built deck of the
// given multiplier and shuffles it. Any remaining cards are discarded.
func (d *Deck) Reshuffle(multiplier int) {
	d.cards = Build(d.rng, multiplier).cards
	d.Shuffle()
}

// Draw pops the top card. Fails with ErrEmptyDeck when no cards remain.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// DealHand pops n cards from the top, building a new hand in the order
// drawn. Fails with ErrEmptyDeck if the deck runs out mid-deal; cards
// already popped are not returned to the deck.
func (d *Deck) DealHand(n int) (*Hand, error) {
	hand := NewHand()
	for i := 0; i < n; i++ {
		if _, err := hand.DrawFrom(d); err != nil {
			return nil, err
		}
	}
	return hand, nil
}

// Len returns the number of cards remaining
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a read-only view of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	return d.cards
}
