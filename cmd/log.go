package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/kauri/internal/audit"
	"github.com/PolarWolf314/kauri/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit   int
	logReverse bool
	logJSON    bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
	RootCmd.AddCommand(logCmd)
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the store's audit log",
	Long: `Displays when the store was initialized and when secrets were added, read
or copied. Secret values are never recorded.

Examples:
  kauri log              # full log
  kauri log -n 10        # last 10 entries
  kauri log --reverse    # most recent first
  kauri log --json       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	result, err := workflows.Log(cmd.Context(), deps, workflows.LogOptions{
		Limit:   logLimit,
		Reverse: logReverse,
	})
	if err != nil {
		return printFailure(err)
	}
	Logger.Debugf("Showing %d of %d entries", len(result.Entries), result.Total)

	if len(result.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "No audit log entries found.")
		return nil
	}

	out := cmd.OutOrStdout()
	if logJSON {
		return outputLogJSON(out, result.Entries)
	}

	for _, e := range result.Entries {
		detail := e.Entry
		if e.Operation == audit.OpInit {
			detail = e.Key
		}
		fmt.Fprintf(out, "%-19s  %-5s  %s\n", workflows.FormatDateTime(e.Timestamp), e.Operation, detail)
	}
	return nil
}

func outputLogJSON(out io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
