package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
	"github.com/caselight/casedex/internal/logger"
)

// Ensure Orchestrator implements the interface.
var _ driving.IngestOrchestrator = (*Orchestrator)(nil)

// Orchestrator runs the full pipeline for a case: fetch the manifest,
// sweep orphaned artifacts, then evaluate every listed document and, where
// acquisition is required, fetch, store, extract and index it.
//
// Reconciliation and extraction stay decoupled: the reconciler only
// decides whether to (re)acquire, the extractor/writer chain only runs
// once bytes are stored.
type Orchestrator struct {
	source     driven.CaseSource
	blobs      driven.BlobStore
	reconciler driving.DocumentReconciler
	extractor  driving.TextExtractor
	writer     driving.SearchWriter

	// Per-document locks close the compare-then-act window between
	// evaluation and upload when the same document is triggered twice.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOrchestrator creates an ingest orchestrator.
func NewOrchestrator(
	source driven.CaseSource,
	blobs driven.BlobStore,
	reconciler driving.DocumentReconciler,
	extractor driving.TextExtractor,
	writer driving.SearchWriter,
) *Orchestrator {
	return &Orchestrator{
		source:     source,
		blobs:      blobs,
		reconciler: reconciler,
		extractor:  extractor,
		writer:     writer,
		locks:      make(map[string]*sync.Mutex),
	}
}

// IngestCase runs the pipeline for every document in a case. Per-document
// failures are counted and skipped; manifest and sweep failures abort the
// run.
func (o *Orchestrator) IngestCase(ctx context.Context, caseID string) (*driving.IngestSummary, error) {
	correlationID := uuid.NewString()
	logger.Info("Ingesting case %s (correlation %s)", caseID, correlationID)

	manifest, err := o.source.ListDocuments(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("list case documents: %w", err)
	}

	removed, err := o.reconciler.SweepCase(ctx, caseID, manifest, correlationID)
	if err != nil {
		return nil, fmt.Errorf("sweep case: %w", err)
	}

	summary := &driving.IngestSummary{CaseID: caseID, Removed: len(removed)}

	// Orphan removal cascades into index cleanup.
	for _, orphan := range removed {
		docID, ok := domain.DocumentIDFromBlobName(orphan.BlobName)
		if !ok {
			logger.Warn("Cannot derive document id from %s, index entries not purged", orphan.BlobName)
			continue
		}
		if err := o.writer.RemoveResultsForDocument(ctx, docID); err != nil {
			return nil, fmt.Errorf("remove index entries for %s: %w", docID, err)
		}
	}

	for _, doc := range manifest {
		result, err := o.IngestDocument(ctx, caseID, doc)
		if err != nil {
			summary.Errors++
			logger.Warn("Failed to ingest %s/%s: %v", caseID, doc.ID, err)
			continue
		}
		switch result {
		case domain.AcquireDocument:
			summary.Acquired++
		case domain.DocumentUnchanged:
			summary.Unchanged++
		}
	}

	logger.Info("Case %s: %d acquired, %d unchanged, %d removed, %d errors",
		caseID, summary.Acquired, summary.Unchanged, summary.Removed, summary.Errors)
	return summary, nil
}

// IngestDocument runs the pipeline for one manifest entry. The document's
// lock is held from evaluation through upload, so two concurrent triggers
// for the same id cannot both observe "no match" and duplicate the work.
func (o *Orchestrator) IngestDocument(ctx context.Context, caseID string, doc domain.CaseDocument) (domain.EvaluationResult, error) {
	unlock := o.lockDocument(doc.ID)
	defer unlock()

	blobName := doc.ConvertedBlobName(caseID)
	eval, err := o.reconciler.EvaluateDocument(ctx, driving.EvaluateDocumentRequest{
		CaseID:        caseID,
		DocumentID:    doc.ID,
		BlobName:      blobName,
		VersionID:     doc.VersionID,
		CorrelationID: uuid.NewString(),
	})
	if err != nil {
		return 0, fmt.Errorf("evaluate document: %w", err)
	}

	if eval.RefreshSearchIndex {
		if err := o.writer.RemoveResultsForDocument(ctx, doc.ID); err != nil {
			return 0, fmt.Errorf("purge stale index entries: %w", err)
		}
	}

	if eval.Result != domain.AcquireDocument {
		return eval.Result, nil
	}

	data, err := o.source.FetchDocument(ctx, caseID, doc.ID)
	if err != nil {
		return 0, fmt.Errorf("fetch document: %w", err)
	}
	if err := o.blobs.Upload(ctx, blobName, doc.VersionID, data); err != nil {
		return 0, fmt.Errorf("upload blob: %w", err)
	}

	analysis, err := o.extractor.Extract(ctx, blobName)
	if err != nil {
		// Already a *domain.OcrError.
		return 0, err
	}

	if err := o.writer.StoreResults(ctx, analysis, caseID, doc.ID, doc.VersionID, blobName); err != nil {
		return 0, fmt.Errorf("store results: %w", err)
	}

	return domain.AcquireDocument, nil
}

// lockDocument serialises pipeline runs for one document id.
func (o *Orchestrator) lockDocument(documentID string) func() {
	o.mu.Lock()
	lock, ok := o.locks[documentID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[documentID] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
