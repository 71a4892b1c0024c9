// Package cmd provides the CLI commands for Tally.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dannynguyen3011/tally/internal/errors"
	"github.com/dannynguyen3011/tally/internal/output"
	"github.com/dannynguyen3011/tally/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagConfig string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "An interactive counter playground for the terminal",
	Long: `Tally is a terminal counter with history, single-step undo and live
derived views (trend, range, stats). State lives in memory only and is
dropped when the process exits.

Examples:
  tally dashboard
  tally apply incrementByAmount=5 setStep=10 decrement undo
  tally apply increment increment increment --trace
  tally actions`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.Debug = flagDebug
		if cmd.Flags().Changed("format") {
			opts.Format = output.Format(flagFormat)
		}
		if cmd.Flags().Changed("color") {
			opts.ColorMode = output.ColorMode(flagColor)
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the summary of a fresh counter.
		return printSummary(ctx)
	},
}

// printSummary renders every derived view of the current state.
func printSummary(ctx *runtime.Context) error {
	resp := ctx.Summarize()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.PrintSummary(resp.Summary, resp.Status, resp.Trend, resp.Range)
	cli.PrintHistory(resp.History, ctx.Config.HistoryRows)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		Die(err)
		return err
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file path (default: $XDG_CONFIG_HOME/tally/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.Version = Version
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("tally %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// errorResponse builds the JSON error payload, including the suggestion
// for user errors.
func errorResponse(err error) output.ErrorResponse {
	resp := output.ErrorResponse{Error: err.Error()}
	if ue, ok := errors.AsUserError(err); ok {
		resp.Suggestion = ue.Suggestion
	}
	return resp
}

// Die prints an error in the active output format.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.Formatter.JSON(errorResponse(err))
		return
	}
	if ctx != nil {
		ctx.CLIFormatter().Error(err)
		return
	}
	os.Stderr.WriteString("Error: " + err.Error() + "\n")
}
