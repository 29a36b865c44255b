package driving

import "context"

// AccessLinkIssuer produces time-boxed, read-scoped URLs for stored blobs.
type AccessLinkIssuer interface {
	// GenerateLink returns a delegated read URL for blobName, valid for
	// the issuer's configured expiry window.
	GenerateLink(ctx context.Context, blobName string) (string, error)
}
