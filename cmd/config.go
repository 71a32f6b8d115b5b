package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the parent of configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect kauri configuration",
	Long: `Provides commands for inspecting the kauri configuration.

The configuration is written by ` + "`kauri init`" + ` and records the store directory
and the key secrets are encrypted for.

Examples:
  kauri config show
  kauri config show --json`,
}

func init() {
	RootCmd.AddCommand(ConfigCmd)
}
