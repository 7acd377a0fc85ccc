// Package chips models casino chip denominations and the stacks built from
// them. Amounts convert to chips with a greedy largest-first decomposition;
// the decomposition is canonical but not unique, so callers compare stacks
// by sum, never by chip-for-chip equality.
package chips

// Chip is an enumerated denomination
type Chip int

const (
	C1    Chip = 1
	C5    Chip = 5
	C10   Chip = 10
	C25   Chip = 25
	C100  Chip = 100
	C500  Chip = 500
	C1000 Chip = 1000
)

// denominations ordered largest first for greedy conversion
var denominations = []Chip{C1000, C500, C100, C25, C10, C5, C1}

// Value returns the chip's denomination
func (c Chip) Value() int {
	return int(c)
}

// All returns every denomination, largest first
func All() []Chip {
	out := make([]Chip, len(denominations))
	copy(out, denominations)
	return out
}

// IntoChips converts an amount into chips greedily, largest denomination
// first. The sum of the returned chips always equals the amount exactly.
// Negative amounts yield an empty stack.
func IntoChips(amount int) []Chip {
	var out []Chip
	for _, c := range denominations {
		for amount >= c.Value() {
			out = append(out, c)
			amount -= c.Value()
		}
	}
	return out
}

// Sum totals a stack of chips; order is irrelevant to the value
func Sum(stack []Chip) int {
	total := 0
	for _, c := range stack {
		total += c.Value()
	}
	return total
}

// Balance is the chip stack a player holds between rounds
type Balance []Chip

// Sum returns the balance's total value
func (b Balance) Sum() int {
	return Sum(b)
}

// Bet is the chip stack a player has wagered on the current round
type Bet []Chip

// Sum returns the bet's total value
func (b Bet) Sum() int {
	return Sum(b)
}
