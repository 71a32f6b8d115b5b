package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		Logger.Debugf("Flags: json=%t", configShowJSON)

		result, err := workflows.ShowConfig(cmd.Context(), deps)
		if err != nil {
			return printFailure(err)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			output, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		fmt.Fprintln(out, ui.Info.Sprint("Configuration")+" "+ui.Muted.Sprint(result.ConfigPath)+":")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-10s %s\n", "Store:", ui.Path.Sprint(result.Config.Store.Path))
		fmt.Fprintf(out, "  %-10s %s\n", "Key:", ui.Success.Sprint(result.Config.Key.ID))
		if result.Config.Key.Requested != "" && result.Config.Key.Requested != result.Config.Key.ID {
			fmt.Fprintf(out, "  %-10s %s\n", "Requested:", result.Config.Key.Requested)
		}
		return nil
	},
}
