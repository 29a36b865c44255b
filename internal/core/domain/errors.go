package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedOperationLocation indicates the OCR engine returned an
	// operation location the engine's id cannot be parsed from.
	ErrMalformedOperationLocation = errors.New("malformed operation location")
)

// Stages of the OCR extraction pipeline, recorded on OcrError.
const (
	OcrStageLink    = "link"
	OcrStageSubmit  = "submit"
	OcrStagePoll    = "poll"
	OcrStageStatus  = "status"
	OcrStageTimeout = "timeout"
)

// OcrError is the single failure shape the extraction pipeline surfaces.
// Whatever fails between link issuance and the final poll is wrapped here,
// so callers have exactly one type to branch on. The underlying transport
// or vendor error type is deliberately not exposed; only its message is
// carried.
type OcrError struct {
	// Stage names the pipeline step that failed.
	Stage string

	// Message is the original failure text.
	Message string
}

// NewOcrError wraps err as an extraction failure for the given stage.
func NewOcrError(stage string, err error) *OcrError {
	return &OcrError{Stage: stage, Message: err.Error()}
}

// Error implements the error interface.
func (e *OcrError) Error() string {
	return fmt.Sprintf("ocr %s: %s", e.Stage, e.Message)
}

// Timeout reports whether the failure was the poll deadline being reached
// rather than an engine-reported state.
func (e *OcrError) Timeout() bool {
	return e.Stage == OcrStageTimeout
}
