package driving

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// IngestSummary reports the outcome of one case ingestion run.
type IngestSummary struct {
	// CaseID is the ingested case.
	CaseID string

	// Acquired counts documents fetched and re-indexed.
	Acquired int

	// Unchanged counts documents whose stored copy was already current.
	Unchanged int

	// Removed counts orphaned artifacts purged by the sweep.
	Removed int

	// Errors counts documents that failed and were skipped.
	Errors int
}

// IngestOrchestrator runs the full reconcile/extract/index pipeline.
type IngestOrchestrator interface {
	// IngestCase fetches the case manifest, sweeps orphans, then
	// evaluates and (re)indexes every listed document.
	IngestCase(ctx context.Context, caseID string) (*IngestSummary, error)

	// IngestDocument runs the pipeline for a single manifest entry.
	IngestDocument(ctx context.Context, caseID string, doc domain.CaseDocument) (domain.EvaluationResult, error)
}
