package selector

import (
	"math"

	"github.com/dannynguyen3011/tally/internal/counter"
)

// Range summarizes the spread of values the counter has visited.
type Range struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Range int `json:"range"`
}

// Stats aggregates the counter's bookkeeping fields into one view.
type Stats struct {
	CurrentValue  int     `json:"current_value"`
	CurrentStep   int     `json:"current_step"`
	TotalClicks   int     `json:"total_clicks"`
	HistoryLength int     `json:"history_length"`
	LastAction    string  `json:"last_action,omitempty"`
	AverageChange float64 `json:"average_change"`
}

// Summary composes the narrative views and Stats into a single read, so
// a consumer can render a full picture from one call.
type Summary struct {
	Value    int      `json:"value"`
	Message  string   `json:"message"`
	Emoji    string   `json:"emoji"`
	Category Category `json:"category"`
	CanUndo  bool     `json:"can_undo"`
	Stats    Stats    `json:"stats"`
}

// Views holds one memo cell per derived view. A Views is meant to be
// owned by a single consumer; it is not safe for concurrent use.
type Views struct {
	status   cell[int, Status]
	message  cell[int, string]
	emoji    cell[int, string]
	category cell[int, Category]
	canUndo  cell[histKey, bool]
	trend    cell[histKey, Trend]
	rng      cell[histKey, Range]
	stats    cell[statsKey, Stats]
	summary  cell[summaryKey, Summary]
}

// New creates an empty Views; every first read computes.
func New() *Views {
	return &Views{}
}

// Primitive reads. These are direct field accesses and are not memoized.

func (v *Views) Value(s counter.State) int        { return s.Value }
func (v *Views) Step(s counter.State) int         { return s.Step }
func (v *Views) History(s counter.State) []int    { return s.History }
func (v *Views) LastAction(s counter.State) string { return s.LastAction }
func (v *Views) TotalClicks(s counter.State) int  { return s.TotalClicks }

// Status reports whether the value is positive, negative or zero.
func (v *Views) Status(s counter.State) Status {
	return v.status.get(s.Value, func() Status { return statusOf(s.Value) })
}

// Message returns the narrative line for the value's band.
func (v *Views) Message(s counter.State) string {
	return v.message.get(s.Value, func() string { return bandOf(s.Value).message })
}

// Emoji returns the emoji for the value's band.
func (v *Views) Emoji(s counter.State) string {
	return v.emoji.get(s.Value, func() string { return bandOf(s.Value).emoji })
}

// Category buckets the value into a coarse tier.
func (v *Views) Category(s counter.State) Category {
	return v.category.get(s.Value, func() Category { return categoryOf(s.Value) })
}

// CanUndo reports whether an undo would change anything.
func (v *Views) CanUndo(s counter.State) bool {
	return v.canUndo.get(keyOf(s.History), func() bool { return len(s.History) > 1 })
}

// Trend reports the direction of the last two changes, or
// insufficient-data when fewer than three values exist.
func (v *Views) Trend(s counter.State) Trend {
	return v.trend.get(keyOf(s.History), func() Trend { return trendOf(s.History) })
}

// Range reports the minimum, maximum and spread over the full history.
func (v *Views) Range(s counter.State) Range {
	return v.rng.get(keyOf(s.History), func() Range {
		min, max := s.History[0], s.History[0]
		for _, n := range s.History[1:] {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		return Range{Min: min, Max: max, Range: max - min}
	})
}

// Stats aggregates value, step, clicks, history length, last action and
// the average change per transition (value over history length minus one,
// rounded to two decimals).
func (v *Views) Stats(s counter.State) Stats {
	return v.stats.get(statsKeyOf(s), func() Stats {
		avg := 0.0
		if n := len(s.History); n > 1 {
			avg = round2(float64(s.Value) / float64(n-1))
		}
		return Stats{
			CurrentValue:  s.Value,
			CurrentStep:   s.Step,
			TotalClicks:   s.TotalClicks,
			HistoryLength: len(s.History),
			LastAction:    s.LastAction,
			AverageChange: avg,
		}
	})
}

// Summary composes Message, Emoji, Category, CanUndo and Stats. Its memo
// key is built from those outputs, so it recomputes only when a
// component view produced something new.
func (v *Views) Summary(s counter.State) Summary {
	key := summaryKey{
		value:    s.Value,
		message:  v.Message(s),
		emoji:    v.Emoji(s),
		category: v.Category(s),
		canUndo:  v.CanUndo(s),
		stats:    v.Stats(s),
	}
	return v.summary.get(key, func() Summary {
		return Summary{
			Value:    key.value,
			Message:  key.message,
			Emoji:    key.emoji,
			Category: key.category,
			CanUndo:  key.canUndo,
			Stats:    key.stats,
		}
	})
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Computations reports how many times each derived view has actually run
// its body. Keys match the view names.
func (v *Views) Computations() map[string]uint64 {
	return map[string]uint64{
		"status":   v.status.computed,
		"message":  v.message.computed,
		"emoji":    v.emoji.computed,
		"category": v.category.computed,
		"canUndo":  v.canUndo.computed,
		"trend":    v.trend.computed,
		"range":    v.rng.computed,
		"stats":    v.stats.computed,
		"summary":  v.summary.computed,
	}
}
