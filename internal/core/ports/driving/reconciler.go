package driving

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// EvaluateDocumentRequest carries the inputs for a single-document
// evaluation.
type EvaluateDocumentRequest struct {
	// CaseID is the case the document belongs to.
	CaseID string

	// DocumentID is the document to evaluate.
	DocumentID string

	// BlobName is the proposed stored artifact name for the document.
	BlobName string

	// VersionID is the incoming source version.
	VersionID int64

	// CorrelationID ties the evaluation to its triggering request.
	CorrelationID string
}

// DocumentReconciler decides, per document, whether a stored copy must be
// fetched, kept, or removed.
type DocumentReconciler interface {
	// EvaluateDocument compares the incoming version against storage and
	// decides an action for one document.
	EvaluateDocument(ctx context.Context, req EvaluateDocumentRequest) (*domain.EvaluateDocumentResponse, error)

	// SweepCase reconciles a case's stored artifacts against the full
	// incoming manifest, removing orphans.
	SweepCase(ctx context.Context, caseID string, manifest []domain.CaseDocument, correlationID string) ([]domain.EvaluateExistingDocumentResponse, error)
}
