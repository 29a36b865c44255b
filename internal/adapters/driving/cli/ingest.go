package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <case-id>",
	Short: "Reconcile, OCR and index a case's documents",
	Long: `Fetches the case manifest from the source of truth, removes
orphaned artifacts, then acquires, extracts and indexes every document
whose stored copy is missing or stale.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestOrchestrator == nil {
		return errors.New("ingest service not configured")
	}

	caseID := args[0]
	cmd.Printf("Ingesting case %s...\n", caseID)

	summary, err := ingestOrchestrator.IngestCase(cmd.Context(), caseID)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Case %s: %d acquired, %d unchanged, %d removed, %d errors.\n",
		summary.CaseID, summary.Acquired, summary.Unchanged, summary.Removed, summary.Errors)

	if summary.Errors > 0 {
		return fmt.Errorf("%d documents failed", summary.Errors)
	}
	return nil
}
