package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-log-timeline/internal/presentation/formatter"
)

var eventsOutput string

var eventsCmd = &cobra.Command{
	Use:   "events [source]",
	Short: "List the parsed events in timeline order",
	Long: `Events prints every parsed event sorted by time with its lane and color.
Malformed lines are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVarP(&eventsOutput, "output", "o", formatter.FormatTable,
		"Output format (table, csv, summary)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	switch eventsOutput {
	case formatter.FormatTable, formatter.FormatCSV, formatter.FormatSummary:
	default:
		return fmt.Errorf("unsupported output format %q for events (valid: table, csv, summary)", eventsOutput)
	}
	f, err := formatter.New(eventsOutput, 0)
	if err != nil {
		return err
	}

	report, err := buildReport(cmd, args, nil)
	if err != nil {
		return err
	}
	return f.Format(cmd.OutOrStdout(), report)
}
