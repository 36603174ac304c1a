package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/calcagent/internal/app"
	"github.com/doeshing/calcagent/internal/domain"
)

const (
	msgNoHistoryRecorded = "No calculation history yet."

	defaultHistoryListLimit = 10
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect calculation history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistorySearchCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := container.History.Recent(limit)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryListLimit, "Max entries to show")
	return cmd
}

func newHistorySearchCommand(container *app.Container) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search history for a keyword",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf("--query required")
			}
			entries, err := container.History.Search(query)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear calculation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), container.Formatter.HistoryCleared())
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export history to JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.History.ExportJSON(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", container.History.Count(), args[0])
			return nil
		},
	}
}

func printEntries(out io.Writer, entries []domain.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s = %s  (%s, %s)\n",
			i+1, entry.Query, entry.Result, entry.OperationType, humanize.Time(entry.Timestamp))
	}
}
