package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, 0, s.Value)
	assert.Equal(t, 1, s.Step)
	assert.Equal(t, []int{0}, s.History)
	assert.Equal(t, "", s.LastAction)
	assert.Equal(t, 0, s.TotalClicks)
}

func TestApplyTransitionTable(t *testing.T) {
	tests := []struct {
		name        string
		start       State
		action      Action
		wantValue   int
		wantStep    int
		wantHistory []int
		wantLabel   string
		wantClicks  int
	}{
		{
			name:        "increment_uses_step",
			start:       State{Value: 2, Step: 3, History: []int{0, 2}},
			action:      Increment(),
			wantValue:   5,
			wantStep:    3,
			wantHistory: []int{0, 2, 5},
			wantLabel:   "increment",
			wantClicks:  1,
		},
		{
			name:        "decrement_uses_step",
			start:       State{Value: 2, Step: 3, History: []int{0, 2}},
			action:      Decrement(),
			wantValue:   -1,
			wantStep:    3,
			wantHistory: []int{0, 2, -1},
			wantLabel:   "decrement",
			wantClicks:  1,
		},
		{
			name:        "increment_by_amount",
			start:       State{Value: 0, Step: 1, History: []int{0}},
			action:      IncrementBy(5),
			wantValue:   5,
			wantStep:    1,
			wantHistory: []int{0, 5},
			wantLabel:   "incrementByAmount(5)",
			wantClicks:  1,
		},
		{
			name:        "decrement_by_amount",
			start:       State{Value: 5, Step: 1, History: []int{0, 5}},
			action:      DecrementBy(7),
			wantValue:   -2,
			wantStep:    1,
			wantHistory: []int{0, 5, -2},
			wantLabel:   "decrementByAmount(7)",
			wantClicks:  1,
		},
		{
			name:        "set_step_leaves_history",
			start:       State{Value: 5, Step: 1, History: []int{0, 5}},
			action:      SetStep(10),
			wantValue:   5,
			wantStep:    10,
			wantHistory: []int{0, 5},
			wantLabel:   "setStep(10)",
			wantClicks:  0,
		},
		{
			name:        "negative_step_is_allowed",
			start:       State{Value: 0, Step: -2, History: []int{0}},
			action:      Increment(),
			wantValue:   -2,
			wantStep:    -2,
			wantHistory: []int{0, -2},
			wantLabel:   "increment",
			wantClicks:  1,
		},
		{
			name:        "set_counter_value_appends",
			start:       State{Value: 5, Step: 1, History: []int{0, 5}},
			action:      SetValue(42),
			wantValue:   42,
			wantStep:    1,
			wantHistory: []int{0, 5, 42},
			wantLabel:   "setCounterValue(42)",
			wantClicks:  0,
		},
		{
			name:        "undo_pops_last_entry",
			start:       State{Value: 5, Step: 1, History: []int{0, 3, 5}},
			action:      Undo(),
			wantValue:   3,
			wantStep:    1,
			wantHistory: []int{0, 3},
			wantLabel:   "undo",
			wantClicks:  0,
		},
		{
			name:        "undo_on_initial_is_noop",
			start:       Initial(),
			action:      Undo(),
			wantValue:   0,
			wantStep:    1,
			wantHistory: []int{0},
			wantLabel:   "undo",
			wantClicks:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.start, tt.action)
			assert.Equal(t, tt.wantValue, got.Value)
			assert.Equal(t, tt.wantStep, got.Step)
			assert.Equal(t, tt.wantHistory, got.History)
			assert.Equal(t, tt.wantLabel, got.LastAction)
			assert.Equal(t, tt.wantClicks, got.TotalClicks)
		})
	}
}

func TestResetFromArbitraryState(t *testing.T) {
	s := State{
		Value:       -37,
		Step:        9,
		History:     []int{0, 4, -37},
		LastAction:  "decrementByAmount(41)",
		TotalClicks: 12,
	}
	got := Apply(s, Reset())

	assert.Equal(t, 0, got.Value)
	assert.Equal(t, 1, got.Step)
	assert.Equal(t, []int{0}, got.History)
	assert.Equal(t, 0, got.TotalClicks)
	assert.Equal(t, "reset", got.LastAction)
}

func TestHistoryLastAlwaysEqualsValue(t *testing.T) {
	actions := []Action{
		Increment(), Increment(), SetStep(4), Decrement(),
		IncrementBy(-3), SetValue(100), Undo(), DecrementBy(7),
		Undo(), Undo(), Undo(), Undo(), Undo(), Reset(), Increment(),
	}

	s := Initial()
	for _, a := range actions {
		s = Apply(s, a)
		require.NotEmpty(t, s.History)
		assert.Equal(t, s.Value, s.History[len(s.History)-1],
			"after %s", a.Label())
	}
}

func TestAdjacentDeltasMatchStep(t *testing.T) {
	const step = 4
	s := Apply(Initial(), SetStep(step))
	for i := 0; i < 10; i++ {
		if i%3 == 0 {
			s = Apply(s, Decrement())
		} else {
			s = Apply(s, Increment())
		}
	}

	for i := 1; i < len(s.History); i++ {
		delta := s.History[i] - s.History[i-1]
		assert.True(t, delta == step || delta == -step,
			"delta at %d is %d", i, delta)
	}
}

func TestUndoRestoresPreviousValue(t *testing.T) {
	s := Initial()
	s = Apply(s, IncrementBy(5))
	s = Apply(s, IncrementBy(9))
	before := s

	s = Apply(s, DecrementBy(3))
	s = Apply(s, Undo())

	assert.Equal(t, before.Value, s.Value)
	assert.Equal(t, before.History, s.History)
	assert.Equal(t, len(before.History), len(s.History))
}

func TestTotalClicksOnlyCountsClickKinds(t *testing.T) {
	s := Initial()
	s = Apply(s, Increment())    // click
	s = Apply(s, SetStep(3))     // not a click
	s = Apply(s, SetValue(9))    // not a click
	s = Apply(s, DecrementBy(2)) // click
	s = Apply(s, Undo())         // not a click
	assert.Equal(t, 2, s.TotalClicks)
}

// Undoing then re-appending must not write into a prior snapshot's
// backing array.
func TestSnapshotsDoNotAlias(t *testing.T) {
	a := Apply(Initial(), IncrementBy(5)) // [0 5]
	b := Apply(a, IncrementBy(3))         // [0 5 8]
	c := Apply(b, Undo())                 // [0 5]
	d := Apply(c, IncrementBy(9))         // [0 5 14]

	assert.Equal(t, []int{0, 5, 8}, b.History)
	assert.Equal(t, []int{0, 5}, c.History)
	assert.Equal(t, []int{0, 5, 14}, d.History)
}

// The scripted scenario from the state container's contract.
func TestDispatchScenario(t *testing.T) {
	s := Initial()

	s = Apply(s, IncrementBy(5))
	assert.Equal(t, 5, s.Value)
	assert.Equal(t, []int{0, 5}, s.History)
	assert.Equal(t, 1, s.TotalClicks)
	assert.Equal(t, "incrementByAmount(5)", s.LastAction)

	s = Apply(s, SetStep(10))
	assert.Equal(t, 10, s.Step)
	assert.Equal(t, 5, s.Value)
	assert.Equal(t, []int{0, 5}, s.History)

	s = Apply(s, Decrement())
	assert.Equal(t, -5, s.Value)
	assert.Equal(t, []int{0, 5, -5}, s.History)
	assert.Equal(t, 2, s.TotalClicks)

	s = Apply(s, Undo())
	assert.Equal(t, 5, s.Value)
	assert.Equal(t, []int{0, 5}, s.History)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "increment", Increment().Label())
	assert.Equal(t, "undo", Undo().Label())
	assert.Equal(t, "incrementByAmount(-4)", IncrementBy(-4).Label())
	assert.Equal(t, "setStep(0)", SetStep(0).Label())
}
