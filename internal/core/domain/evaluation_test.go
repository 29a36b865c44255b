package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationResult_String(t *testing.T) {
	assert.Equal(t, "AcquireDocument", AcquireDocument.String())
	assert.Equal(t, "DocumentUnchanged", DocumentUnchanged.String())
	assert.Equal(t, "DocumentRemovedInCms", DocumentRemovedInCms.String())
	assert.Equal(t, "Unknown", EvaluationResult(99).String())
}
