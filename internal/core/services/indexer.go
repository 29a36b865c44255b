package services

import (
	"context"
	"fmt"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
	"github.com/caselight/casedex/internal/logger"
)

// Ensure Indexer implements the interface.
var _ driving.SearchWriter = (*Indexer)(nil)

// Indexer is the search indexing writer. It projects OCR output into
// search records, submits them through the buffered index client and
// flushes before returning. Batching is for throughput only; the flush is
// the sole durability guarantee point.
type Indexer struct {
	index driven.SearchIndex
}

// NewIndexer creates an indexer over the given index client.
func NewIndexer(index driven.SearchIndex) *Indexer {
	return &Indexer{index: index}
}

// StoreResults projects every line of every page into a flat sequence,
// uploads the whole sequence, then flushes. Once it returns nil, all
// lines are visible to subsequent searches. Upload and flush failures
// propagate; no partial-success tracking is attempted.
func (i *Indexer) StoreResults(ctx context.Context, analysis *domain.AnalyzeResult, caseID, documentID string, versionID int64, blobName string) error {
	if analysis == nil {
		return fmt.Errorf("%w: nil analysis", domain.ErrInvalidInput)
	}

	var lines []domain.SearchLine
	for p := range analysis.Pages {
		page := &analysis.Pages[p]
		for l := range page.Lines {
			lines = append(lines, ProjectSearchLine(caseID, documentID, versionID, blobName, page, &page.Lines[l], l))
		}
	}
	if len(lines) == 0 {
		return nil
	}

	if err := i.index.UploadDocuments(ctx, lines); err != nil {
		return fmt.Errorf("upload documents: %w", err)
	}
	if err := i.index.Flush(ctx); err != nil {
		return fmt.Errorf("flush index: %w", err)
	}

	logger.Debug("Indexed %d lines for document %s", len(lines), documentID)
	return nil
}

// RemoveResultsForDocument deletes all indexed lines for a document.
// Called when reconciliation signals an index refresh.
func (i *Indexer) RemoveResultsForDocument(ctx context.Context, documentID string) error {
	if err := i.index.DeleteByDocumentID(ctx, documentID); err != nil {
		return fmt.Errorf("delete indexed lines: %w", err)
	}
	return nil
}
