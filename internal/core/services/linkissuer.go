package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
)

// Ensure LinkIssuer implements the interface.
var _ driving.AccessLinkIssuer = (*LinkIssuer)(nil)

// sasTimeFormat is the timestamp layout used in signed link parameters.
const sasTimeFormat = "2006-01-02T15:04:05Z"

// LinkIssuerConfig controls the validity window of issued links.
type LinkIssuerConfig struct {
	// Expiry is how long issued links stay valid.
	Expiry time.Duration

	// ClockSkew backdates the validity start so links survive small clock
	// differences between signer and storage.
	ClockSkew time.Duration
}

// DefaultLinkIssuerConfig returns the window used when none is configured.
func DefaultLinkIssuerConfig() LinkIssuerConfig {
	return LinkIssuerConfig{
		Expiry:    15 * time.Minute,
		ClockSkew: 2 * time.Minute,
	}
}

// LinkIssuer signs short-lived, read-scoped URLs for stored blobs using a
// just-in-time user delegation key, so downstream services never handle
// storage credentials. It has no retry policy of its own; a delegation
// key fetch failure propagates as-is.
type LinkIssuer struct {
	blobs  driven.BlobStore
	config LinkIssuerConfig
}

// NewLinkIssuer creates a link issuer. Zero config fields fall back to
// DefaultLinkIssuerConfig values.
func NewLinkIssuer(blobs driven.BlobStore, config LinkIssuerConfig) *LinkIssuer {
	defaults := DefaultLinkIssuerConfig()
	if config.Expiry <= 0 {
		config.Expiry = defaults.Expiry
	}
	if config.ClockSkew <= 0 {
		config.ClockSkew = defaults.ClockSkew
	}
	return &LinkIssuer{blobs: blobs, config: config}
}

// GenerateLink returns a delegated read URL for blobName, valid for the
// configured expiry window.
func (l *LinkIssuer) GenerateLink(ctx context.Context, blobName string) (string, error) {
	now := time.Now().UTC()
	start := now.Add(-l.config.ClockSkew)
	expiry := now.Add(l.config.Expiry)

	key, err := l.blobs.GetUserDelegationKey(ctx, start, expiry)
	if err != nil {
		return "", fmt.Errorf("get user delegation key: %w", err)
	}

	token, err := l.sign(key, blobName, start, expiry)
	if err != nil {
		return "", fmt.Errorf("sign link for %s: %w", blobName, err)
	}

	base := strings.TrimSuffix(l.blobs.ServiceURI(), "/")
	return fmt.Sprintf("%s/%s?%s", base, blobName, token), nil
}

// sign builds the read-only query token: HMAC-SHA256 over the canonical
// string-to-sign, keyed with the delegation key.
func (l *LinkIssuer) sign(key *driven.UserDelegationKey, blobName string, start, expiry time.Time) (string, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(key.Value)
	if err != nil {
		return "", fmt.Errorf("decode delegation key: %w", err)
	}

	canonical := strings.Join([]string{
		"r",
		start.Format(sasTimeFormat),
		expiry.Format(sasTimeFormat),
		"/blob/" + l.blobs.AccountName() + "/" + blobName,
	}, "\n")

	mac := hmac.New(sha256.New, keyBytes)
	mac.Write([]byte(canonical))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	params := url.Values{}
	params.Set("sp", "r")
	params.Set("st", start.Format(sasTimeFormat))
	params.Set("se", expiry.Format(sasTimeFormat))
	params.Set("sig", signature)
	return params.Encode(), nil
}
