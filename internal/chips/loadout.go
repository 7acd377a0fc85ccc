package chips

// Loadout is a starting rack of chips handed to each player at game start
type Loadout struct {
	stack []Chip
}

// Euro5 is the classic small-stakes rack: 4x100, 6x10, 8x5.
func Euro5() Loadout {
	return Loadout{stack: []Chip{
		C100, C100, C100, C100,
		C10, C10, C10, C10, C10, C10,
		C5, C5, C5, C5, C5, C5, C5, C5,
	}}
}

// FromAmount builds a loadout worth exactly amount via greedy conversion
func FromAmount(amount int) Loadout {
	return Loadout{stack: IntoChips(amount)}
}

// Custom builds a loadout from an explicit stack
func Custom(stack []Chip) Loadout {
	return Loadout{stack: stack}
}

// Balance returns a fresh balance containing the loadout's chips
func (l Loadout) Balance() Balance {
	out := make(Balance, len(l.stack))
	copy(out, l.stack)
	return out
}

// Sum returns the loadout's total value
func (l Loadout) Sum() int {
	return Sum(l.stack)
}
