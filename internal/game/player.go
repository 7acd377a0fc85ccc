package game

import (
	"github.com/cardsmith/blackjack/internal/chips"
)

// Player represents one seat at the table. Players are created once at game
// start and never removed; a bankrupt player goes inactive and is skipped
// in all subsequent betting and dealing but stays for final reporting.
type Player struct {
	ID      int
	Balance chips.Balance
	Bet     chips.Bet
	Active  bool
}

// NewPlayer creates an active player funded from the loadout
func NewPlayer(id int, loadout chips.Loadout) *Player {
	return &Player{
		ID:      id,
		Balance: loadout.Balance(),
		Active:  true,
	}
}

// BalanceValue returns the player's balance total
func (p *Player) BalanceValue() int {
	return p.Balance.Sum()
}

// IsActive returns true if the player still takes bets and hands
func (p *Player) IsActive() bool {
	return p.Active
}

// Bankrupt flips the player inactive
func (p *Player) Bankrupt() {
	p.Active = false
}

// SetBalance rewrites the balance as the greedy chip decomposition of a new
// total. Stacks are canonical by sum, not by chip multiset.
func (p *Player) SetBalance(amount int) {
	p.Balance = chips.Balance(chips.IntoChips(amount))
}

// Table holds the full player list for a game
type Table struct {
	Players []*Player
}

// NewTable seats n players, each funded from the loadout. IDs are 0-based
// seat order.
func NewTable(n int, loadout chips.Loadout) *Table {
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer(i, loadout)
	}
	return &Table{Players: players}
}

// ByID returns the player with the given id
func (t *Table) ByID(id int) (*Player, bool) {
	for _, p := range t.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ActiveCount returns the number of players still in the game
func (t *Table) ActiveCount() int {
	n := 0
	for _, p := range t.Players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// AllBankrupt reports whether every player has gone inactive
func (t *Table) AllBankrupt() bool {
	return t.ActiveCount() == 0
}
