package domain

import (
	"encoding/base64"
	"fmt"
)

// SearchLine is one indexed line of recognised text. Records are written
// once and never mutated; re-running OCR on a new document version
// supersedes old lines, which is why stale lines are removed by document
// id rather than updated in place.
type SearchLine struct {
	// ID is the deterministic key, see SearchLineID.
	ID string

	// CaseID, DocumentID and VersionID locate the source document.
	CaseID     string
	DocumentID string
	VersionID  int64

	// FileName is the source display file name.
	FileName string

	// PageNumber is the 1-based page the line appears on.
	PageNumber int

	// LineNumber is the 0-based ordinal of the line on its page.
	LineNumber int

	// PageHeight and PageWidth are the page dimensions.
	PageHeight float64
	PageWidth  float64

	// Text, Language and BoundingBox are copied from the OCR line.
	Text        string
	Language    string
	BoundingBox []float64
}

// SearchLineID derives the stable identifier for a line: the base64
// encoding of "{caseID}-{documentID}-{pageNumber}-{lineOrdinal}".
// Reproducible from those four values alone, so re-indexing the same
// conceptual line upserts the same key instead of duplicating it.
func SearchLineID(caseID, documentID string, pageNumber, lineOrdinal int) string {
	raw := fmt.Sprintf("%s-%s-%d-%d", caseID, documentID, pageNumber, lineOrdinal)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}
