package counter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dannynguyen3011/tally/internal/errors"
)

// ParseAction maps an {actionName, payload?} pair onto an Action. It is
// the validation boundary: Apply itself never fails, so malformed input
// is rejected here with a UserError before anything is dispatched.
func ParseAction(name string, payload *int) (Action, error) {
	kind := Kind(name)
	known := false
	for _, k := range Kinds {
		if k == kind {
			known = true
			break
		}
	}
	if !known {
		return Action{}, errors.NewUserErrorWithField("action", name,
			"unknown action", "run 'tally actions' for the list of actions")
	}

	switch {
	case kind.HasPayload() && payload == nil:
		return Action{}, errors.NewUserErrorWithField("action", name,
			"action requires an integer payload",
			fmt.Sprintf("try '%s=5'", name))
	case !kind.HasPayload() && payload != nil:
		return Action{}, errors.NewUserErrorWithField("action", name,
			"action does not take a payload",
			fmt.Sprintf("use plain '%s'", name))
	}

	a := Action{Kind: kind}
	if payload != nil {
		a.Amount = *payload
	}
	return a, nil
}

// ParseActionString parses the compact CLI form: a bare action name,
// "name=N", or the label form "name(N)".
func ParseActionString(raw string) (Action, error) {
	name := raw
	var payload *int

	arg := ""
	switch {
	case strings.Contains(raw, "="):
		parts := strings.SplitN(raw, "=", 2)
		name, arg = parts[0], parts[1]
	case strings.HasSuffix(raw, ")"):
		if open := strings.Index(raw, "("); open > 0 {
			name, arg = raw[:open], raw[open+1:len(raw)-1]
		}
	}

	if arg != "" {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Action{}, errors.NewUserErrorWithField("payload", arg,
				"payload is not an integer", "use a whole number, e.g. 'incrementByAmount=5'")
		}
		payload = &n
	}

	return ParseAction(strings.TrimSpace(name), payload)
}
