package game

import "github.com/cardsmith/blackjack/internal/chips"

// Rules holds the configurable house rules. Everything beyond these is
// fixed table behavior.
type Rules struct {
	// HitSoft17 makes the dealer draw on a soft 17 instead of standing
	HitSoft17 bool
	// DeckMultiplier is how many 52-card sets the shoe is rebuilt with
	// each round
	DeckMultiplier int
	// Loadout is the starting chip rack handed to each player
	Loadout chips.Loadout
}

// DefaultRules returns the house defaults: dealer hits soft 17, two decks,
// Euro5 starting rack.
func DefaultRules() Rules {
	return Rules{
		HitSoft17:      true,
		DeckMultiplier: 2,
		Loadout:        chips.Euro5(),
	}
}
