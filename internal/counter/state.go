// Package counter implements the counter state container: an immutable
// state snapshot, a fixed vocabulary of named transitions, and a small
// store that applies them atomically.
package counter

// State is a snapshot of the counter. Snapshots are values: transitions
// never modify one in place, they return a new snapshot. History is
// shared between snapshots and must be treated as read-only by callers;
// every transition that changes it allocates a fresh backing array, so
// slice identity doubles as a cheap change signal for derived views.
type State struct {
	// Value is the current counter value.
	Value int
	// Step is the magnitude applied by increment and decrement.
	Step int
	// History holds every value the counter has held, oldest first.
	// It is never empty and its last element always equals Value.
	History []int
	// LastAction is the label of the most recently applied transition,
	// or empty if none has been applied yet.
	LastAction string
	// TotalClicks counts the click-style transitions applied since the
	// last reset.
	TotalClicks int
}

// Initial returns the state a fresh counter starts in.
func Initial() State {
	return State{
		Value:   0,
		Step:    1,
		History: []int{0},
	}
}

// HistoryLen returns the number of entries in the history.
func (s State) HistoryLen() int {
	return len(s.History)
}

// appendHistory returns a copy of h with v appended. The copy keeps
// earlier snapshots valid and gives the new history a distinct backing
// array.
func appendHistory(h []int, v int) []int {
	next := make([]int, len(h), len(h)+1)
	copy(next, h)
	return append(next, v)
}

// popHistory returns a copy of h without its last entry. The caller
// guarantees len(h) > 1.
func popHistory(h []int) []int {
	next := make([]int, len(h)-1)
	copy(next, h[:len(h)-1])
	return next
}
