package cmd

import (
	"fmt"

	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

var readCopy bool

func init() {
	readCmd.Flags().BoolVarP(&readCopy, "copy", "c", false, "copy the secret to the clipboard instead of printing it")
	RootCmd.AddCommand(readCmd)
}

// resetReadCommandState resets the read command's global state for testing.
func resetReadCommandState() {
	readCopy = false
}

// read runs without a spinner: gpg may need the terminal for a passphrase.
var readCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Decrypt a secret and print or copy it",
	Long: `Decrypts a secret with gpg and prints it to stdout.

With --copy the secret is placed on the system clipboard and nothing secret
is printed.

Examples:
  kauri read mail
  kauri read web/github --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting read command for %s", args[0])
		Logger.Debugf("Flags: copy=%t", readCopy)

		result, err := workflows.Read(cmd.Context(), deps, workflows.ReadOptions{
			Name: args[0],
			Copy: readCopy,
		})
		if err != nil {
			return printFailure(err)
		}

		out := cmd.OutOrStdout()
		if result.Copied {
			fmt.Fprintln(out, ui.Done("Copied "+ui.Highlight.Sprint(result.Name)+" to the clipboard"))
			return nil
		}

		fmt.Fprintln(out, result.Secret)
		return nil
	},
}
