package driven

import (
	"context"
	"time"

	"github.com/caselight/casedex/internal/core/domain"
)

// UserDelegationKey is a short-lived signing key obtained from the storage
// account. Access links are signed with it so downstream services never
// handle account credentials.
type UserDelegationKey struct {
	// Value is the base64 signing key.
	Value string

	// SignedStart and SignedExpiry bound the key's validity.
	SignedStart  time.Time
	SignedExpiry time.Time
}

// BlobStore provides access to the container holding case artifacts.
// Implemented by the storage client adapter; the core never touches
// storage credentials directly.
type BlobStore interface {
	// ListBlobsByPrefix returns the blobs whose names start with prefix,
	// together with the document version each was stored for.
	ListBlobsByPrefix(ctx context.Context, prefix string) ([]domain.BlobSearchResult, error)

	// DeleteBlob removes a blob by name. Returns false when no blob with
	// that name existed.
	DeleteBlob(ctx context.Context, name string) (bool, error)

	// Upload stores data under name, tagged with the document version.
	Upload(ctx context.Context, name string, versionID int64, data []byte) error

	// GetUserDelegationKey fetches a delegation key valid between the two
	// instants.
	GetUserDelegationKey(ctx context.Context, notBefore, notAfter time.Time) (*UserDelegationKey, error)

	// AccountName returns the storage account name embedded in signed links.
	AccountName() string

	// ServiceURI returns the blob service base URI.
	ServiceURI() string
}
