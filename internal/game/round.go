package game

import (
	"errors"
	"fmt"

	"github.com/cardsmith/blackjack/internal/deck"
)

// State is the phase of a round's state machine
type State int

const (
	Dealing State = iota
	PlayerTurns
	DealerTurn
	Payout
	Done
)

func (s State) String() string {
	return [...]string{"dealing", "player_turns", "dealer_turn", "payout", "done"}[s]
}

// Move is a player's turn action
type Move int

const (
	Hit Move = iota
	DoubleDown
	Stand
)

func (m Move) String() string {
	if m < Hit || m > Stand {
		return "unknown"
	}
	return [...]string{"hit", "double_down", "stand"}[m]
}

// ErrInvalidMove is returned when a move is illegal in the current state;
// nothing changes and the caller should re-prompt.
var ErrInvalidMove = errors.New("invalid move")

// MoveResult reports the effect of an applied move
type MoveResult struct {
	Card     deck.Card // drawn card, zero value on Stand
	Drew     bool
	Busted   bool
	TurnOver bool
}

// Round is one round's worth of state: the dealer hand plus a hand arena
// indexed by seat, aligned with the table's player list. Hands and deck
// contents are round-scoped; player balances persist on the table.
type Round struct {
	table *Table
	deck  *deck.Deck
	rules Rules
	state State

	dealerHand *deck.Hand
	hands      []*deck.Hand
	moves      []int // per-seat move count, for double-down legality
}

// NewRound creates a round in the Dealing state
func NewRound(table *Table, d *deck.Deck, rules Rules) *Round {
	return &Round{
		table: table,
		deck:  d,
		rules: rules,
		hands: make([]*deck.Hand, len(table.Players)),
		moves: make([]int, len(table.Players)),
	}
}

// State returns the round's current phase
func (r *Round) State() State {
	return r.state
}

// DealerHand returns the dealer's hand; before the dealer turn the hole
// card is still hidden.
func (r *Round) DealerHand() *deck.Hand {
	return r.dealerHand
}

// DealerUpCard returns the dealer's visible first card
func (r *Round) DealerUpCard() deck.Card {
	return r.dealerHand.Cards()[0]
}

// HandOf returns the hand dealt to the given seat, nil for inactive seats
func (r *Round) HandOf(seat int) *deck.Hand {
	return r.hands[seat]
}

// Deal rebuilds and shuffles the shoe, gives the dealer one visible and one
// hidden card, and deals two visible cards to every active player.
func (r *Round) Deal() error {
	if r.state != Dealing {
		return fmt.Errorf("cannot deal in state %s", r.state)
	}

	r.deck.Reshuffle(r.rules.DeckMultiplier)

	r.dealerHand = deck.NewHand()
	if _, err := r.dealerHand.DrawFrom(r.deck); err != nil {
		return err
	}
	if _, err := r.dealerHand.DrawFromHidden(r.deck); err != nil {
		return err
	}

	for i, p := range r.table.Players {
		if !p.IsActive() {
			continue
		}
		hand, err := r.deck.DealHand(2)
		if err != nil {
			return err
		}
		r.hands[i] = hand
	}

	r.state = PlayerTurns
	return nil
}

// ApplyMove applies one move for the given seat. Hit draws a card and ends
// the turn if the hand resolves busted. DoubleDown is legal only as the
// very first action: it draws exactly one card and ends the turn whatever
// happens; the wager is unchanged. Stand ends the turn without drawing.
// An illegal move returns ErrInvalidMove and changes nothing.
func (r *Round) ApplyMove(seat int, m Move) (MoveResult, error) {
	if r.state != PlayerTurns {
		return MoveResult{}, fmt.Errorf("cannot act in state %s: %w", r.state, ErrInvalidMove)
	}
	hand := r.hands[seat]
	if hand == nil {
		return MoveResult{}, fmt.Errorf("seat %d has no hand: %w", seat, ErrInvalidMove)
	}

	switch m {
	case Hit:
		r.moves[seat]++
		card, err := hand.DrawFrom(r.deck)
		if err != nil {
			return MoveResult{}, err
		}
		resolved := hand.Check()
		return MoveResult{
			Card:     card,
			Drew:     true,
			Busted:   hand.Busted(),
			TurnOver: resolved,
		}, nil

	case DoubleDown:
		if r.moves[seat] > 0 {
			return MoveResult{}, fmt.Errorf("double down is only legal as the first action: %w", ErrInvalidMove)
		}
		r.moves[seat]++
		card, err := hand.DrawFrom(r.deck)
		if err != nil {
			return MoveResult{}, err
		}
		hand.Check()
		return MoveResult{
			Card:     card,
			Drew:     true,
			Busted:   hand.Busted(),
			TurnOver: true,
		}, nil

	case Stand:
		r.moves[seat]++
		return MoveResult{TurnOver: true}, nil

	default:
		return MoveResult{}, fmt.Errorf("unknown move %d: %w", int(m), ErrInvalidMove)
	}
}

// FinishPlayerTurns advances the round to the dealer turn
func (r *Round) FinishPlayerTurns() {
	if r.state == PlayerTurns {
		r.state = DealerTurn
	}
}

// PlayDealer reveals the hole card and runs the dealer policy to
// completion, then advances to Payout.
func (r *Round) PlayDealer() error {
	if r.state != DealerTurn {
		return fmt.Errorf("cannot play dealer in state %s", r.state)
	}
	if _, err := r.dealerHand.RevealLast(); err != nil {
		return err
	}
	if err := DealerPlay(r.deck, r.dealerHand, r.rules.HitSoft17); err != nil {
		return err
	}
	r.state = Payout
	return nil
}

// Resolve settles every active player against the final dealer hand,
// applies the balance deltas, flips freshly broke players to bankrupt and
// moves the round to Done.
func (r *Round) Resolve() ([]Outcome, error) {
	if r.state != Payout {
		return nil, fmt.Errorf("cannot resolve in state %s", r.state)
	}

	outcomes := make([]Outcome, 0, len(r.table.Players))
	for i, p := range r.table.Players {
		if !p.IsActive() || r.hands[i] == nil {
			continue
		}

		out := resolveOutcome(p, r.hands[i], r.dealerHand)
		p.SetBalance(p.BalanceValue() + out.Delta)
		out.Balance = p.BalanceValue()

		if out.Balance <= 0 {
			p.Bankrupt()
			out.Bankrupt = true
		}
		outcomes = append(outcomes, out)
	}

	r.state = Done
	return outcomes, nil
}
