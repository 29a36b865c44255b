package driven

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// CaseSource is the case-management system acting as source of truth.
// It supplies already-mapped manifests; fetching includes conversion to
// the stored artifact format.
type CaseSource interface {
	// ListDocuments returns the full document manifest for a case.
	ListDocuments(ctx context.Context, caseID string) ([]domain.CaseDocument, error)

	// FetchDocument retrieves the converted bytes for one document.
	FetchDocument(ctx context.Context, caseID, documentID string) ([]byte, error)
}
