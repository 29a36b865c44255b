package driving

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// SearchWriter publishes OCR output to the search index.
type SearchWriter interface {
	// StoreResults projects every line of every page into search records,
	// uploads them and flushes. When it returns nil, all lines are visible
	// to subsequent searches.
	StoreResults(ctx context.Context, analysis *domain.AnalyzeResult, caseID, documentID string, versionID int64, blobName string) error

	// RemoveResultsForDocument deletes all indexed lines for a document.
	RemoveResultsForDocument(ctx context.Context, documentID string) error
}
