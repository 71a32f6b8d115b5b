package cmd

import (
	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

var initPath string

func init() {
	initCmd.Flags().StringVarP(&initPath, "path", "p", "", "store directory (defaults to $XDG_DATA_HOME/kauri/store)")
	RootCmd.AddCommand(initCmd)
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initPath = ""
}

var initCmd = &cobra.Command{
	Use:   "init <key-id>",
	Short: "Create a store and remember which key encrypts it",
	Long: `Creates the store directory and writes the kauri configuration.

The key identifier is looked up in your GnuPG key ring. If it names exactly
one key, that key's fingerprint is saved; otherwise the identifier is saved
as given and a warning is shown.

Running init again replaces the existing configuration.

Examples:
  kauri init alice@example.com
  kauri init 0123456789ABCDEF --path ~/secrets`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		Logger.Debugf("Flags: path=%q", initPath)

		spinner, cleanup := startSpinner("Initializing store...")
		defer cleanup()

		result, err := workflows.Init(cmd.Context(), deps, workflows.InitOptions{
			KeyID: args[0],
			Path:  initPath,
		})
		if err != nil {
			cleanup()
			return printFailure(err)
		}

		finalMessage := ui.Done("Store initialized at "+ui.Path.Sprint(result.StorePath)) + "\n"
		if result.Resolved {
			finalMessage += "    key:    " + ui.Highlight.Sprint(result.KeyID) + " " + ui.Muted.Sprint("resolved from "+result.RequestedKey) + "\n"
		} else {
			finalMessage += "    key:    " + ui.Highlight.Sprint(result.KeyID) + "\n"
		}
		finalMessage += "    config: " + ui.Path.Sprint(result.ConfigPath)

		if result.ResolveErr != nil {
			finalMessage += "\n" + ui.Caution("Could not resolve "+ui.Highlight.Sprint(result.RequestedKey)+
				" in your key ring, it will be passed to gpg as given") + "\n" +
				"    " + ui.Muted.Sprint(result.ResolveErr.Error())
		}
		if result.Reinitialized {
			finalMessage += "\n" + ui.Hint("Previous configuration was replaced")
		}

		spinner.FinalMSG = finalMessage
		Logger.Infof("Init command completed successfully")
		return nil
	},
}
