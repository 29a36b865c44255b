package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchLineID_Deterministic(t *testing.T) {
	first := SearchLineID("42", "D1", 1, 0)
	second := SearchLineID("42", "D1", 1, 0)

	assert.Equal(t, first, second)
}

func TestSearchLineID_Encoding(t *testing.T) {
	id := SearchLineID("42", "D1", 1, 0)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("42-D1-1-0")), id)
	assert.Equal(t, "NDItRDEtMS0w", id)

	decoded, err := base64.StdEncoding.DecodeString(id)
	assert.NoError(t, err)
	assert.Equal(t, "42-D1-1-0", string(decoded))
}

func TestSearchLineID_DistinctPerOrdinal(t *testing.T) {
	assert.NotEqual(t, SearchLineID("42", "D1", 1, 0), SearchLineID("42", "D1", 1, 1))
	assert.NotEqual(t, SearchLineID("42", "D1", 1, 0), SearchLineID("42", "D1", 2, 0))
	assert.NotEqual(t, SearchLineID("42", "D1", 1, 0), SearchLineID("42", "D2", 1, 0))
}
