package driven

import (
	"context"

	"github.com/caselight/casedex/internal/core/domain"
)

// OcrEngine is the asynchronous read service that recognises text.
// Submission returns an operation location; results are polled separately.
type OcrEngine interface {
	// SubmitRead submits the document behind url for recognition and
	// returns the operation location identifying the job.
	SubmitRead(ctx context.Context, url string) (string, error)

	// GetReadResult polls the read job identified by operationID.
	GetReadResult(ctx context.Context, operationID string) (*domain.ReadResult, error)
}
