package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <case-id>",
	Short: "Show recorded reconciliation decisions for a case",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if evaluationLedger == nil {
		return errors.New("evaluation ledger not configured")
	}

	caseID := args[0]
	records, err := evaluationLedger.ListByCase(cmd.Context(), caseID)
	if err != nil {
		return fmt.Errorf("list evaluations: %w", err)
	}

	if len(records) == 0 {
		cmd.Printf("No recorded decisions for case %s.\n", caseID)
		return nil
	}

	for _, rec := range records {
		refresh := ""
		if rec.RefreshSearchIndex {
			refresh = " (index refreshed)"
		}
		cmd.Printf("%s  %-22s v%-6d %s%s\n",
			rec.EvaluatedAt.Format("2006-01-02 15:04:05"),
			rec.Result, rec.VersionID, rec.BlobName, refresh)
	}
	return nil
}
