package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caselight/casedex/internal/core/domain"
)

func projectorPage() *domain.Page {
	return &domain.Page{Number: 1, Height: 11.0, Width: 8.5, Unit: "inch", Lines: nil}
}

func projectorLine() *domain.Line {
	return &domain.Line{
		Text:        "IN THE DISTRICT COURT",
		Language:    "en",
		BoundingBox: []float64{1, 1, 5, 1, 5, 2, 1, 2},
		Appearance:  "print",
	}
}

func TestProjectSearchLine_FieldMapping(t *testing.T) {
	line := ProjectSearchLine("42", "D1", 2, "42/pdfs/Complaint-D1.pdf", projectorPage(), projectorLine(), 0)

	assert.Equal(t, domain.SearchLineID("42", "D1", 1, 0), line.ID)
	assert.Equal(t, "42", line.CaseID)
	assert.Equal(t, "D1", line.DocumentID)
	assert.Equal(t, int64(2), line.VersionID)
	assert.Equal(t, "42/pdfs/Complaint-D1.pdf", line.FileName)
	assert.Equal(t, 1, line.PageNumber)
	assert.Equal(t, 0, line.LineNumber)
	assert.Equal(t, 11.0, line.PageHeight)
	assert.Equal(t, 8.5, line.PageWidth)
	assert.Equal(t, "IN THE DISTRICT COURT", line.Text)
	assert.Equal(t, "en", line.Language)
	assert.Equal(t, []float64{1, 1, 5, 1, 5, 2, 1, 2}, line.BoundingBox)
}

func TestProjectSearchLine_Deterministic(t *testing.T) {
	first := ProjectSearchLine("42", "D1", 2, "blob", projectorPage(), projectorLine(), 3)
	second := ProjectSearchLine("42", "D1", 2, "blob", projectorPage(), projectorLine(), 3)

	assert.Equal(t, first, second)
	assert.Equal(t, []byte(first.ID), []byte(second.ID))
}

func TestProjectSearchLine_OrdinalDistinguishesIDs(t *testing.T) {
	page := projectorPage()
	line := projectorLine()

	first := ProjectSearchLine("42", "D1", 2, "blob", page, line, 0)
	second := ProjectSearchLine("42", "D1", 2, "blob", page, line, 1)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "NDItRDEtMS0w", first.ID)
	assert.Equal(t, "NDItRDEtMS0x", second.ID)
}
