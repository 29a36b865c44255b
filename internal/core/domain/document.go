package domain

import (
	"fmt"
	"path"
	"strings"
)

// DocumentType classifies a case document. The source of truth supplies a
// code/name pair; documents it does not classify carry UnknownDocumentType.
type DocumentType struct {
	// Code is the source's short classification code.
	Code string

	// Name is the human-readable classification.
	Name string
}

// UnknownDocumentType is the sentinel used when the source provides no type.
var UnknownDocumentType = DocumentType{Code: "unknown", Name: "Unknown"}

// CaseDocument is one document as known to the case-management source.
// Instances are produced by the source mapping and never mutated; one is
// created per source-listed document per evaluation pass.
type CaseDocument struct {
	// ID is the stable document identifier in the source of truth.
	ID string

	// VersionID increases monotonically with each revision in the source.
	VersionID int64

	// FileName is the display file name, extension included.
	FileName string

	// Type is the document classification.
	Type DocumentType
}

// ConvertedExtension is the extension every converted artifact is stored under.
const ConvertedExtension = ".pdf"

// ConversionPrefix returns the blob prefix holding a case's converted artifacts.
func ConversionPrefix(caseID string) string {
	return caseID + "/pdfs"
}

// ConvertedBlobName derives the expected stored artifact name for the
// document: file name without extension, the document id and the fixed
// extension, under the case's conversion prefix.
func (d CaseDocument) ConvertedBlobName(caseID string) string {
	base := strings.TrimSuffix(d.FileName, path.Ext(d.FileName))
	return fmt.Sprintf("%s/%s-%s%s", ConversionPrefix(caseID), base, d.ID, ConvertedExtension)
}

// DocumentIDFromBlobName recovers the document id embedded in a converted
// artifact name by the ConvertedBlobName convention. Returns false when
// the name does not follow the convention.
func DocumentIDFromBlobName(name string) (string, bool) {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	idx := strings.LastIndex(base, "-")
	if idx < 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}

// BlobSearchResult describes one blob currently held in storage under a
// queried name prefix. Used only for comparison during reconciliation,
// never persisted.
type BlobSearchResult struct {
	// Name is the full blob name.
	Name string

	// VersionID is the document version the blob was stored for.
	VersionID int64
}
