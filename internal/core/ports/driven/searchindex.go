package driven

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// SearchIndex is the buffered search-index client. Uploads accumulate in
// the sender's buffer for throughput; Flush is the only durability point.
type SearchIndex interface {
	// UploadDocuments submits lines to the sender's buffer.
	UploadDocuments(ctx context.Context, lines []domain.SearchLine) error

	// Flush publishes everything buffered so far.
	Flush(ctx context.Context) error

	// DeleteByDocumentID removes every indexed line for a document.
	DeleteByDocumentID(ctx context.Context, documentID string) error
}
