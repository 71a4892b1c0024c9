package counter

// Apply is the transition function: it maps the current state and an
// action to the next state. It is pure and total over integer payloads;
// an unknown kind leaves everything but LastAction unchanged.
//
// Click-style kinds additionally bump TotalClicks. Undo on a single-entry
// history is a no-op that still records "undo" as the last action.
func Apply(s State, a Action) State {
	next := s
	next.LastAction = a.Label()
	if a.Kind.isClick() {
		next.TotalClicks = s.TotalClicks + 1
	}

	switch a.Kind {
	case KindIncrement:
		next.Value = s.Value + s.Step
		next.History = appendHistory(s.History, next.Value)

	case KindDecrement:
		next.Value = s.Value - s.Step
		next.History = appendHistory(s.History, next.Value)

	case KindIncrementByAmount:
		next.Value = s.Value + a.Amount
		next.History = appendHistory(s.History, next.Value)

	case KindDecrementByAmount:
		next.Value = s.Value - a.Amount
		next.History = appendHistory(s.History, next.Value)

	case KindSetStep:
		next.Step = a.Amount

	case KindReset:
		next = Initial()
		next.LastAction = a.Label()

	case KindUndo:
		if len(s.History) > 1 {
			next.History = popHistory(s.History)
			next.Value = next.History[len(next.History)-1]
		}

	case KindSetCounterValue:
		next.Value = a.Amount
		next.History = appendHistory(s.History, next.Value)
	}

	return next
}
