package driving

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// TextExtractor drives an OCR read job to completion for a stored blob.
type TextExtractor interface {
	// Extract obtains an access link for blobName, submits it for
	// recognition and polls until a terminal state. Any failure surfaces
	// as a *domain.OcrError.
	Extract(ctx context.Context, blobName string) (*domain.AnalyzeResult, error)
}
