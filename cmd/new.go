package cmd

import (
	"fmt"

	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/utils"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

var newForce bool

func init() {
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite an existing secret")
	RootCmd.AddCommand(newCmd)
}

// resetNewCommandState resets the new command's global state for testing.
func resetNewCommandState() {
	newForce = false
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Add a secret to the store",
	Long: `Prompts for a secret twice and stores it encrypted for the configured key.

Names may contain '/' to group secrets, e.g. web/github. When stdin is not a
terminal, the secret and its confirmation are read as two lines.

Examples:
  kauri new mail
  kauri new web/github --force
  printf 'hunter2\nhunter2\n' | kauri new mail`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		ctx := cmd.Context()
		Logger.Infof("Starting new command for %s", name)
		Logger.Debugf("Flags: force=%t", newForce)

		pre, err := workflows.NewPreCheck(ctx, deps, name, newForce)
		if err != nil {
			return printFailure(err)
		}
		if pre.Exists {
			Logger.WarnfUser("%s already exists and will be overwritten", ui.Highlight.Sprint(name))
		}

		prompter := utils.NewSecretPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		secret, err := prompter.Prompt(fmt.Sprintf("Enter secret for %s: ", name))
		if err != nil {
			return printFailure(err)
		}
		confirmation, err := prompter.Prompt(fmt.Sprintf("Retype secret for %s: ", name))
		if err != nil {
			return printFailure(err)
		}

		spinner, cleanup := startSpinner("Encrypting secret...")
		defer cleanup()

		result, err := workflows.New(ctx, deps, workflows.NewOptions{
			Name:         name,
			Secret:       secret,
			Confirmation: confirmation,
			Force:        newForce,
		})
		if err != nil {
			cleanup()
			return printFailure(err)
		}

		verb := "Saved"
		if result.Overwrote {
			verb = "Replaced"
		}
		spinner.FinalMSG = ui.Done(verb+" "+ui.Highlight.Sprint(result.Name)) + " " + ui.Muted.Sprint(result.Path)
		Logger.Infof("New command completed successfully")
		return nil
	},
}
