package driven

import (
	"context"
	"time"
)

// EvaluationRecord is one reconciliation decision as persisted for audit.
type EvaluationRecord struct {
	// CaseID is the case the decision belongs to.
	CaseID string

	// DocumentID is the evaluated document; empty for sweep removals,
	// which are keyed by blob name instead.
	DocumentID string

	// BlobName is the artifact the decision concerns.
	BlobName string

	// VersionID is the version the decision was made against.
	VersionID int64

	// Result is the decision name.
	Result string

	// RefreshSearchIndex records whether index entries were invalidated.
	RefreshSearchIndex bool

	// CorrelationID ties the decision to its triggering request.
	CorrelationID string

	// EvaluatedAt is when the decision was made.
	EvaluatedAt time.Time
}

// EvaluationLedger persists reconciliation decisions for audit.
// Backed by SQLite.
type EvaluationLedger interface {
	// Record appends one decision.
	Record(ctx context.Context, rec EvaluationRecord) error

	// ListByCase returns a case's decisions, most recent first.
	ListByCase(ctx context.Context, caseID string) ([]EvaluationRecord, error)
}
