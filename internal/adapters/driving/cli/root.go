// Package cli provides the cobra command-line interface for casedex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
	"github.com/caselight/casedex/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands drive, wired by Execute.
var (
	ingestOrchestrator driving.IngestOrchestrator
	reconciler         driving.DocumentReconciler
	caseSource         driven.CaseSource
	evaluationLedger   driven.EvaluationLedger
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "casedex",
	Short: "Mirror, OCR and index case documents",
	Long: `casedex keeps blob storage and a search index in step with a
case-management source: it mirrors case documents into storage, extracts
their text through an OCR service and publishes the recognised lines for
search.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Dependencies carries the services the CLI drives.
type Dependencies struct {
	Ingest     driving.IngestOrchestrator
	Reconciler driving.DocumentReconciler
	Source     driven.CaseSource
	Ledger     driven.EvaluationLedger
}

// Execute wires the services and runs the root command.
func Execute(deps Dependencies) error {
	ingestOrchestrator = deps.Ingest
	reconciler = deps.Reconciler
	caseSource = deps.Source
	evaluationLedger = deps.Ledger
	return rootCmd.Execute()
}
