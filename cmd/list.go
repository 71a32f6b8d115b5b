package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the secrets in the store",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		result, err := workflows.List(cmd.Context(), deps)
		if err != nil {
			return printFailure(err)
		}

		if len(result.Names) == 0 {
			fmt.Fprintln(os.Stderr, ui.Hint("No secrets in "+ui.Path.Sprint(result.StorePath)+" yet, add one with "+ui.Code.Sprint("kauri new <name>")))
			return nil
		}

		out := cmd.OutOrStdout()
		for _, name := range result.Names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}
