package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dannynguyen3011/tally/internal/errors"
	"github.com/dannynguyen3011/tally/internal/tui"
)

// dashboardCmd launches the interactive counter.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Launch the interactive counter dashboard",
	Long: `Dashboard opens a live terminal UI for the counter. Keys dispatch
actions and every panel is read back through the derived views.

Keys:
  +/-   increment / decrement by the current step
  i, d  increment / decrement by a typed amount
  s     set the step
  v     set the value directly
  u     undo the last change
  r     reset
  q     quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	model := tui.NewCounterModel(tui.CounterConfig{
		Store:           ctx.Store,
		Views:           ctx.Views,
		RefreshInterval: ctx.Config.RefreshInterval.Std(),
		HistoryRows:     ctx.Config.HistoryRows,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.NewSystemErrorWithOp("dashboard", "terminal UI failed", err)
	}
	return nil
}
