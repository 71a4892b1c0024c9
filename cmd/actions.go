package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dannynguyen3011/tally/internal/counter"
)

// actionDescriptions documents each transition for the actions command.
var actionDescriptions = map[counter.Kind]string{
	counter.KindIncrement:         "add the current step to the value",
	counter.KindDecrement:         "subtract the current step from the value",
	counter.KindIncrementByAmount: "add N to the value",
	counter.KindDecrementByAmount: "subtract N from the value",
	counter.KindSetStep:           "set the step to N (history unchanged)",
	counter.KindReset:             "restore the initial state",
	counter.KindUndo:              "drop the most recent history entry",
	counter.KindSetCounterValue:   "jump the value to N",
}

// actionsCmd lists the dispatchable action vocabulary.
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the dispatchable actions",
	RunE:  runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

type actionInfo struct {
	Name    string `json:"name"`
	Payload bool   `json:"payload"`
	Help    string `json:"help"`
}

func runActions(cmd *cobra.Command, args []string) error {
	infos := make([]actionInfo, 0, len(counter.Kinds))
	for _, k := range counter.Kinds {
		infos = append(infos, actionInfo{
			Name:    string(k),
			Payload: k.HasPayload(),
			Help:    actionDescriptions[k],
		})
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(infos)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Actions")
	for _, info := range infos {
		usage := info.Name
		if info.Payload {
			usage += "=N"
		}
		cli.Printf("  %-24s %s\n", usage, info.Help)
	}
	return nil
}
