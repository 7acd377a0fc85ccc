package deck

import "strings"

// Hand is an ordered collection of cards owned by one party for the
// duration of a round, plus a terminal busted flag. Once busted the hand
// is settled for the round; no further draws change its outcome.
type Hand struct {
	cards  []Card
	busted bool
}

// NewHand creates an empty, unbusted hand
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: cards}
}

// DrawFrom pops one card from the deck and appends it to the hand,
// returning the drawn card. Fails with ErrEmptyDeck if the deck is empty.
func (h *Hand) DrawFrom(d *Deck) (Card, error) {
	card, err := d.Draw()
	if err != nil {
		return Card{}, err
	}
	h.cards = append(h.cards, card)
	return card, nil
}

// DrawFromHidden draws one card face down, used for the dealer's hole
// card. The card is returned as stored, i.e. hidden.
func (h *Hand) DrawFromHidden(d *Deck) (Card, error) {
	card, err := d.Draw()
	if err != nil {
		return Card{}, err
	}
	card.Hide()
	h.cards = append(h.cards, card)
	return card, nil
}

// Sum returns the hard total: every Ace counts as 11
func (h *Hand) Sum() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total
}

// LevelOffAce returns the hand total with at most one Ace converted from
// 11 to 1: if the hard sum busts and the hand contains an Ace, the total
// is reduced by 10, once, regardless of how many Aces are present.
func (h *Hand) LevelOffAce() int {
	sum := h.Sum()
	if h.IsBust(sum) && h.Contains(Ace) {
		return sum - 10
	}
	return sum
}

// IsBust reports whether a total exceeds 21
func (h *Hand) IsBust(total int) bool {
	return total > 21
}

// IsBlackjack reports a natural: exactly two cards summing to 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Sum() == 21
}

// Contains reports whether any card in the hand has the given rank
func (h *Hand) Contains(rank Rank) bool {
	for _, c := range h.cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// IsSoft reports whether the hand contains an Ace that can still count as
// 1, i.e. the hard sum minus 10 lands in [1,21].
func (h *Hand) IsSoft() bool {
	if !h.Contains(Ace) {
		return false
	}
	soft := h.Sum() - 10
	return soft > 0 && soft <= 21
}

// Check evaluates the hand's current state and reports whether the hand is
// resolved for the round: a blackjack is resolved without mutation; a hand
// whose leveled total busts is marked busted and resolved; anything else
// is unresolved. The caller owns any display of the result.
func (h *Hand) Check() bool {
	if h.IsBlackjack() {
		return true
	}
	total := h.LevelOffAce()
	if h.IsBust(total) {
		h.busted = true
		return true
	}
	return false
}

// Busted reports whether the hand has been marked busted
func (h *Hand) Busted() bool {
	return h.busted
}

// MarkBusted permanently marks the hand busted for the round
func (h *Hand) MarkBusted() {
	h.busted = true
}

// CompareTo orders two hands by their hard sums, returning <0, 0 or >0 as
// h is less than, equal to or greater than other. Note this compares the
// unleveled sums, not the soft-ace-adjusted totals; payout resolution
// relies on exactly this ordering.
func (h *Hand) CompareTo(other *Hand) int {
	return h.Sum() - other.Sum()
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns the hand's cards in draw order
func (h *Hand) Cards() []Card {
	return h.cards
}

// RevealAll turns every card in the hand face up
func (h *Hand) RevealAll() {
	for i := range h.cards {
		h.cards[i].Reveal()
	}
}

// RevealLast reveals the most recently drawn card and returns it. Fails
// with ErrEmptyDeck on an empty hand.
func (h *Hand) RevealLast() (Card, error) {
	if len(h.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return h.cards[len(h.cards)-1].Reveal(), nil
}

// String returns the hand as space-separated cards, hole cards masked
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
