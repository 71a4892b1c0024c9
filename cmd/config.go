package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dannynguyen3011/tally/internal/config"
	"github.com/dannynguyen3011/tally/internal/errors"
)

// configCmd prints the resolved configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"path":   path,
			"config": ctx.Config,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Configuration")
	cli.Muted("  " + path)

	data, err := yaml.Marshal(ctx.Config)
	if err != nil {
		return errors.NewSystemError("cannot render configuration", err)
	}
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		cli.Println("  " + line)
	}
	return nil
}
