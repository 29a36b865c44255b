package services

import (
	"github.com/caselight/casedex/internal/core/domain"
)

// ProjectSearchLine transforms one OCR line into its indexed record.
// Pure: no I/O, no side effects, and deterministic - identical inputs
// always yield an identical record, id included, which is what makes
// re-indexing an upsert instead of a duplication. page and line must be
// non-nil.
func ProjectSearchLine(caseID, documentID string, versionID int64, blobName string, page *domain.Page, line *domain.Line, lineOrdinal int) domain.SearchLine {
	return domain.SearchLine{
		ID:          domain.SearchLineID(caseID, documentID, page.Number, lineOrdinal),
		CaseID:      caseID,
		DocumentID:  documentID,
		VersionID:   versionID,
		FileName:    blobName,
		PageNumber:  page.Number,
		LineNumber:  lineOrdinal,
		PageHeight:  page.Height,
		PageWidth:   page.Width,
		Text:        line.Text,
		Language:    line.Language,
		BoundingBox: line.BoundingBox,
	}
}
