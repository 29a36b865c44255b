package memory

import (
	"context"
	"encoding/base64"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// blob is one stored artifact.
type blob struct {
	versionID int64
	data      []byte
}

// BlobStore is an in-memory implementation of driven.BlobStore, used by
// tests and the local wiring.
type BlobStore struct {
	mu      sync.RWMutex
	account string
	uri     string
	blobs   map[string]blob
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore(account, serviceURI string) *BlobStore {
	return &BlobStore{
		account: account,
		uri:     serviceURI,
		blobs:   make(map[string]blob),
	}
}

// ListBlobsByPrefix returns stored blobs whose names start with prefix,
// in name order.
func (s *BlobStore) ListBlobsByPrefix(_ context.Context, prefix string) ([]domain.BlobSearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.BlobSearchResult
	for name, b := range s.blobs {
		if strings.HasPrefix(name, prefix) {
			results = append(results, domain.BlobSearchResult{Name: name, VersionID: b.versionID})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

// DeleteBlob removes a blob by name. Returns false when nothing was stored
// under that name.
func (s *BlobStore) DeleteBlob(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blobs[name]; !ok {
		return false, nil
	}
	delete(s.blobs, name)
	return true, nil
}

// Upload stores data under name, tagged with the document version.
func (s *BlobStore) Upload(_ context.Context, name string, versionID int64, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[name] = blob{versionID: versionID, data: append([]byte(nil), data...)}
	return nil
}

// GetUserDelegationKey returns a deterministic key bounded by the
// requested window.
func (s *BlobStore) GetUserDelegationKey(_ context.Context, notBefore, notAfter time.Time) (*driven.UserDelegationKey, error) {
	return &driven.UserDelegationKey{
		Value:        base64.StdEncoding.EncodeToString([]byte("memory-delegation-key")),
		SignedStart:  notBefore,
		SignedExpiry: notAfter,
	}, nil
}

// AccountName returns the configured account name.
func (s *BlobStore) AccountName() string { return s.account }

// ServiceURI returns the configured service URI.
func (s *BlobStore) ServiceURI() string { return s.uri }

// Data returns the stored bytes for a blob. Test helper.
func (s *BlobStore) Data(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b.data...), true
}
