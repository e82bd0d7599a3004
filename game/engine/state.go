package engine

// FoodSet is a bit-set over a grid's food index. Grids are limited to
// MaxFoods foods, so a uint64 always suffices.
type FoodSet uint64

// With returns the set with food i added.
func (f FoodSet) With(i int) FoodSet {
	return f | (1 << uint(i))
}

// Has reports whether food i is in the set.
func (f FoodSet) Has(i int) bool {
	return f&(1<<uint(i)) != 0
}

// Count returns the number of foods in the set.
func (f FoodSet) Count() int {
	n := 0
	for f != 0 {
		f &= f - 1
		n++
	}
	return n
}

// State is a node in the search space: where the agent is, how much
// energy it has left, and which foods it has eaten so far.
type State struct {
	Pos    Position
	Energy int
	Foods  FoodSet
}

// StateKey identifies a state for visited/cost bookkeeping. Two states
// with the same position and food set are the same node even when their
// remaining energy differs.
type StateKey struct {
	Pos   Position
	Foods FoodSet
}

// Key returns the identity of s in the search space.
func (s State) Key() StateKey {
	return StateKey{Pos: s.Pos, Foods: s.Foods}
}
