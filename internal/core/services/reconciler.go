package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
	"github.com/caselight/casedex/internal/logger"
)

// Ensure Reconciler implements the interface.
var _ driving.DocumentReconciler = (*Reconciler)(nil)

// Reconciler is the document reconciliation engine. It compares
// source-of-truth version metadata against what blob storage currently
// holds and decides, per document, whether to acquire, keep or remove.
// It never uploads bytes itself; acquisition is delegated to the caller.
type Reconciler struct {
	blobs  driven.BlobStore
	ledger driven.EvaluationLedger
}

// NewReconciler creates a reconciler. The ledger is optional - if nil,
// decisions are not recorded.
func NewReconciler(blobs driven.BlobStore, ledger driven.EvaluationLedger) *Reconciler {
	return &Reconciler{blobs: blobs, ledger: ledger}
}

// EvaluateDocument compares the incoming version against storage and
// decides an action for one document. It issues at most one storage read
// and at most one storage delete.
func (r *Reconciler) EvaluateDocument(ctx context.Context, req driving.EvaluateDocumentRequest) (*domain.EvaluateDocumentResponse, error) {
	matches, err := r.blobs.ListBlobsByPrefix(ctx, req.BlobName)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}

	resp := &domain.EvaluateDocumentResponse{
		CaseID:     req.CaseID,
		DocumentID: req.DocumentID,
		VersionID:  req.VersionID,
	}

	switch {
	case len(matches) == 0:
		// First-time acquisition: nothing stored, nothing to purge.
		resp.Result = domain.AcquireDocument

	case matches[0].VersionID == req.VersionID:
		// At most one live blob per logical name; the first match decides.
		resp.Result = domain.DocumentUnchanged

	default:
		// Stale copy. Remove it and have the caller re-fetch; old index
		// entries must be purged before new ones are written.
		if _, err := r.blobs.DeleteBlob(ctx, req.BlobName); err != nil {
			return nil, fmt.Errorf("delete blob %s: %w", req.BlobName, err)
		}
		resp.Result = domain.AcquireDocument
		resp.RefreshSearchIndex = true
	}

	logger.Debug("Evaluated %s/%s v%d: %s", req.CaseID, req.DocumentID, req.VersionID, resp.Result)

	r.record(ctx, driven.EvaluationRecord{
		CaseID:             req.CaseID,
		DocumentID:         req.DocumentID,
		BlobName:           req.BlobName,
		VersionID:          req.VersionID,
		Result:             resp.Result.String(),
		RefreshSearchIndex: resp.RefreshSearchIndex,
		CorrelationID:      req.CorrelationID,
	})
	return resp, nil
}

// SweepCase reconciles a case's stored artifacts against the full
// incoming manifest. Artifacts the source no longer lists are orphans and
// are removed. Matching is case-insensitive exact comparison against the
// derived expected names, stricter than the single-document prefix path:
// sharing a prefix with a current artifact must not keep an orphan alive.
//
// The sweep does not checkpoint partial progress. Re-running it is safe:
// already-removed orphans do not reappear in the next listing.
func (r *Reconciler) SweepCase(ctx context.Context, caseID string, manifest []domain.CaseDocument, correlationID string) ([]domain.EvaluateExistingDocumentResponse, error) {
	stored, err := r.blobs.ListBlobsByPrefix(ctx, domain.ConversionPrefix(caseID))
	if err != nil {
		return nil, fmt.Errorf("list stored artifacts: %w", err)
	}
	if len(stored) == 0 {
		// New case: nothing stored, nothing to compare.
		return nil, nil
	}

	expected := make(map[string]struct{}, len(manifest))
	for _, doc := range manifest {
		expected[strings.ToLower(doc.ConvertedBlobName(caseID))] = struct{}{}
	}

	var removed []domain.EvaluateExistingDocumentResponse
	for _, blob := range stored {
		if _, ok := expected[strings.ToLower(blob.Name)]; ok {
			continue
		}

		logger.Debug("Removing orphan %s (case %s)", blob.Name, caseID)
		if _, err := r.blobs.DeleteBlob(ctx, blob.Name); err != nil {
			return nil, fmt.Errorf("delete orphan %s: %w", blob.Name, err)
		}

		resp := domain.EvaluateExistingDocumentResponse{
			CaseID:             caseID,
			BlobName:           blob.Name,
			VersionID:          blob.VersionID,
			RefreshSearchIndex: true,
			Result:             domain.DocumentRemovedInCms,
		}
		removed = append(removed, resp)

		r.record(ctx, driven.EvaluationRecord{
			CaseID:             caseID,
			BlobName:           blob.Name,
			VersionID:          blob.VersionID,
			Result:             resp.Result.String(),
			RefreshSearchIndex: true,
			CorrelationID:      correlationID,
		})
	}

	logger.Info("Sweep for case %s: %d stored, %d removed", caseID, len(stored), len(removed))
	return removed, nil
}

// record appends a decision to the ledger. Ledger failures are logged,
// not surfaced; audit must not fail reconciliation.
func (r *Reconciler) record(ctx context.Context, rec driven.EvaluationRecord) {
	if r.ledger == nil {
		return
	}
	rec.EvaluatedAt = time.Now()
	if err := r.ledger.Record(ctx, rec); err != nil {
		logger.Warn("Failed to record evaluation for %s: %v", rec.BlobName, err)
	}
}
