package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dannynguyen3011/tally/internal/counter"
	"github.com/dannynguyen3011/tally/internal/errors"
	"github.com/dannynguyen3011/tally/internal/output"
)

var flagTrace bool

// applyCmd dispatches a sequence of actions against one in-memory
// counter and prints the final derived state.
var applyCmd = &cobra.Command{
	Use:   "apply ACTION...",
	Short: "Dispatch a sequence of actions and print the result",
	Long: `Apply dispatches the given actions in order against a fresh counter
and prints the final summary. Parameterized actions take their payload
as 'name=N' or 'name(N)'.

Examples:
  tally apply increment increment decrement
  tally apply incrementByAmount=5 setStep=10 decrement undo
  tally apply setCounterValue=100 --trace`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&flagTrace, "trace", false,
		"Print one line per dispatched action")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	// Validate the whole script before dispatching anything, so a typo
	// in the last action does not leave a half-applied run.
	actions := make([]counter.Action, 0, len(args))
	for _, raw := range args {
		a, err := counter.ParseActionString(raw)
		if err != nil {
			return errors.Wrapf(err, "argument '%s'", raw)
		}
		actions = append(actions, a)
	}

	cli := ctx.CLIFormatter()
	trace := make([]output.TraceEntry, 0, len(actions))

	for i, a := range actions {
		s := ctx.Store.Dispatch(a)
		entry := output.TraceEntry{
			Step:   i + 1,
			Action: s.LastAction,
			Value:  s.Value,
			Trend:  ctx.Views.Trend(s),
		}
		trace = append(trace, entry)
		if flagTrace && !ctx.IsJSON() {
			cli.PrintTrace(entry.Step, entry.Action, entry.Value, entry.Trend)
		}
	}

	if ctx.IsJSON() {
		resp := output.ApplyResponse{
			Applied: len(actions),
			Result:  ctx.Summarize(),
		}
		if flagTrace {
			resp.Trace = trace
		}
		return ctx.Formatter.JSON(resp)
	}

	if flagTrace {
		cli.Println()
	}
	return printSummary(ctx)
}
