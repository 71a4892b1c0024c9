package counter

import "fmt"

// Kind names a transition.
type Kind string

const (
	KindIncrement         Kind = "increment"
	KindDecrement         Kind = "decrement"
	KindIncrementByAmount Kind = "incrementByAmount"
	KindDecrementByAmount Kind = "decrementByAmount"
	KindSetStep           Kind = "setStep"
	KindReset             Kind = "reset"
	KindUndo              Kind = "undo"
	KindSetCounterValue   Kind = "setCounterValue"
)

// Kinds lists every transition kind in dispatch-table order.
var Kinds = []Kind{
	KindIncrement,
	KindDecrement,
	KindIncrementByAmount,
	KindDecrementByAmount,
	KindSetStep,
	KindReset,
	KindUndo,
	KindSetCounterValue,
}

// Action is a named transition plus its integer payload. Amount is
// meaningful only for the parameterized kinds.
type Action struct {
	Kind   Kind
	Amount int
}

// Increment steps the counter up by the current step.
func Increment() Action { return Action{Kind: KindIncrement} }

// Decrement steps the counter down by the current step.
func Decrement() Action { return Action{Kind: KindDecrement} }

// IncrementBy adds n to the counter regardless of step.
func IncrementBy(n int) Action { return Action{Kind: KindIncrementByAmount, Amount: n} }

// DecrementBy subtracts n from the counter regardless of step.
func DecrementBy(n int) Action { return Action{Kind: KindDecrementByAmount, Amount: n} }

// SetStep changes the step without touching the value or history.
func SetStep(n int) Action { return Action{Kind: KindSetStep, Amount: n} }

// Reset restores the initial counter state.
func Reset() Action { return Action{Kind: KindReset} }

// Undo removes the most recent history entry when there is one to remove.
func Undo() Action { return Action{Kind: KindUndo} }

// SetValue jumps the counter to n.
func SetValue(n int) Action { return Action{Kind: KindSetCounterValue, Amount: n} }

// HasPayload reports whether the kind carries an integer payload.
func (k Kind) HasPayload() bool {
	switch k {
	case KindIncrementByAmount, KindDecrementByAmount, KindSetStep, KindSetCounterValue:
		return true
	}
	return false
}

// isClick reports whether the kind counts toward TotalClicks.
func (k Kind) isClick() bool {
	switch k {
	case KindIncrement, KindDecrement, KindIncrementByAmount, KindDecrementByAmount:
		return true
	}
	return false
}

// Label renders the action the way it appears in State.LastAction, with
// the payload embedded for parameterized kinds, e.g. "incrementByAmount(5)".
func (a Action) Label() string {
	if a.Kind.HasPayload() {
		return fmt.Sprintf("%s(%d)", a.Kind, a.Amount)
	}
	return string(a.Kind)
}
