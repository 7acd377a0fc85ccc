package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Diamonds Suit = iota
	Hearts
	Clubs
	Spades
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Value returns the blackjack value of the rank: face value for 2-10,
// 10 for J/Q/K, and 11 for an Ace (the soft value; hands level a busted
// Ace down by 10).
func (r Rank) Value() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Card represents a playing card. The hidden flag is presentation-only:
// it never affects value computation, only how the card is rendered.
type Card struct {
	Suit   Suit
	Rank   Rank
	hidden bool
}

// NewCard creates a new visible card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Value returns the blackjack value of the card, hidden or not
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsHidden returns true if the card is face down
func (c Card) IsHidden() bool {
	return c.hidden
}

// Hide turns the card face down
func (c *Card) Hide() {
	c.hidden = true
}

// Reveal turns the card face up and returns it for convenience
func (c *Card) Reveal() Card {
	c.hidden = false
	return *c
}

// String returns the card as e.g. "♠A", or a masked token when face down.
// Coloring is the display layer's job.
func (c Card) String() string {
	if c.hidden {
		return "■■"
	}
	return fmt.Sprintf("%s%s", c.Suit, c.Rank)
}
