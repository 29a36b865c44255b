package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationStatus_Terminal(t *testing.T) {
	assert.False(t, OperationNotStarted.Terminal())
	assert.False(t, OperationRunning.Terminal())
	assert.True(t, OperationSucceeded.Terminal())
	assert.True(t, OperationFailed.Terminal())

	// Unknown statuses are treated as terminal so polling cannot hang on
	// a vendor status the pipeline has never seen.
	assert.True(t, OperationStatus("cancelled").Terminal())
}

func TestOcrError_CarriesOriginalMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewOcrError(OcrStageSubmit, cause)

	assert.Equal(t, OcrStageSubmit, err.Stage)
	assert.Equal(t, "connection refused", err.Message)
	assert.Equal(t, "ocr submit: connection refused", err.Error())
	assert.False(t, err.Timeout())
}

func TestOcrError_Timeout(t *testing.T) {
	err := &OcrError{Stage: OcrStageTimeout, Message: "no terminal status after 3 polls"}

	assert.True(t, err.Timeout())
}
