package domain

// EvaluationResult is the reconciliation decision for one document.
// The set is closed; no other outcomes exist.
type EvaluationResult int

const (
	// AcquireDocument means the stored copy is missing or stale and the
	// caller must fetch the document bytes.
	AcquireDocument EvaluationResult = iota

	// DocumentUnchanged means the stored copy matches the source version.
	DocumentUnchanged

	// DocumentRemovedInCms means the source of truth no longer lists the
	// document and its stored artifact was removed.
	DocumentRemovedInCms
)

// String returns the decision name for logging and the evaluation ledger.
func (r EvaluationResult) String() string {
	switch r {
	case AcquireDocument:
		return "AcquireDocument"
	case DocumentUnchanged:
		return "DocumentUnchanged"
	case DocumentRemovedInCms:
		return "DocumentRemovedInCms"
	default:
		return "Unknown"
	}
}

// EvaluateDocumentResponse is the decision record for a single-document
// evaluation. It is an output, not stored state.
type EvaluateDocumentResponse struct {
	// CaseID is the case the document belongs to.
	CaseID string

	// DocumentID is the evaluated document.
	DocumentID string

	// VersionID is the incoming source version.
	VersionID int64

	// RefreshSearchIndex is true when stale index entries for the document
	// must be purged before new ones are written.
	RefreshSearchIndex bool

	// Result is the decision.
	Result EvaluationResult
}

// EvaluateExistingDocumentResponse is the decision record the case-wide
// sweep emits for each orphaned artifact it removes.
type EvaluateExistingDocumentResponse struct {
	// CaseID is the swept case.
	CaseID string

	// BlobName is the removed artifact.
	BlobName string

	// VersionID is the version the artifact was stored for.
	VersionID int64

	// RefreshSearchIndex is true; orphan removal always invalidates the index.
	RefreshSearchIndex bool

	// Result is always DocumentRemovedInCms.
	Result EvaluationResult
}
