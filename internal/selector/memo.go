// Package selector provides derived, memoized read views over counter
// state. Each derived view caches its last input key and last output and
// recomputes only when the key changes, so repeated reads against an
// unchanged state slice are free.
package selector

import "github.com/dannynguyen3011/tally/internal/counter"

// cell is a single-slot memo: last-seen key, last output, and a count of
// how many times the body has actually run.
type cell[K comparable, V any] struct {
	valid    bool
	key      K
	out      V
	computed uint64
}

func (c *cell[K, V]) get(key K, compute func() V) V {
	if c.valid && c.key == key {
		return c.out
	}
	c.out = compute()
	c.key = key
	c.valid = true
	c.computed++
	return c.out
}

// histKey identifies a history slice by backing array and length.
// Transitions copy on write, so two equal keys always describe the same
// entries.
type histKey struct {
	head *int
	n    int
}

func keyOf(h []int) histKey {
	// History is never empty, so &h[0] is always addressable.
	return histKey{head: &h[0], n: len(h)}
}

// statsKey is the declared input tuple of the Stats view.
type statsKey struct {
	value, step, clicks, histLen int
	lastAction                   string
}

func statsKeyOf(s counter.State) statsKey {
	return statsKey{
		value:      s.Value,
		step:       s.Step,
		clicks:     s.TotalClicks,
		histLen:    len(s.History),
		lastAction: s.LastAction,
	}
}

// summaryKey is built from the outputs of the views Summary composes, so
// Summary recomputes only when one of its components did.
type summaryKey struct {
	value    int
	message  string
	emoji    string
	category Category
	canUndo  bool
	stats    Stats
}
