package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <case-id>",
	Short: "Remove stored artifacts the source no longer lists",
	Long: `Compares a case's stored artifacts against the current source
manifest and removes orphans. Does not acquire or index anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if reconciler == nil || caseSource == nil {
		return errors.New("sweep services not configured")
	}

	caseID := args[0]
	ctx := cmd.Context()

	manifest, err := caseSource.ListDocuments(ctx, caseID)
	if err != nil {
		return fmt.Errorf("list case documents: %w", err)
	}

	removed, err := reconciler.SweepCase(ctx, caseID, manifest, uuid.NewString())
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	if len(removed) == 0 {
		cmd.Println("No orphaned artifacts.")
		return nil
	}

	for _, r := range removed {
		cmd.Printf("Removed %s (v%d)\n", r.BlobName, r.VersionID)
	}
	cmd.Printf("%d orphaned artifacts removed.\n", len(removed))
	return nil
}
