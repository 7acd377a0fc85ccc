package deck

import "errors"

// ErrEmptyDeck is returned by any draw or deal operation when the deck has
// fewer cards than requested. Callers should rebuild the deck before dealing
// rather than recover mid-deal; cards popped before exhaustion are lost.
var ErrEmptyDeck = errors.New("deck is empty")
