package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
)

// Ensure SearchIndex implements the interface.
var _ driven.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is an in-memory implementation of driven.SearchIndex with
// real buffered-sender semantics: uploads land in a pending buffer and
// become searchable only on Flush. Records upsert by line id.
type SearchIndex struct {
	mu      sync.RWMutex
	pending []domain.SearchLine
	lines   map[string]domain.SearchLine
	flushes int
}

// NewSearchIndex creates an empty in-memory search index.
func NewSearchIndex() *SearchIndex {
	return &SearchIndex{lines: make(map[string]domain.SearchLine)}
}

// UploadDocuments buffers lines; nothing is searchable until Flush.
func (s *SearchIndex) UploadDocuments(_ context.Context, lines []domain.SearchLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, lines...)
	return nil
}

// Flush publishes everything buffered so far, upserting by line id.
func (s *SearchIndex) Flush(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.pending {
		s.lines[line.ID] = line
	}
	s.pending = nil
	s.flushes++
	return nil
}

// DeleteByDocumentID removes every published line for a document.
func (s *SearchIndex) DeleteByDocumentID(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, line := range s.lines {
		if line.DocumentID == documentID {
			delete(s.lines, id)
		}
	}
	return nil
}

// Search returns published lines whose text contains query,
// case-insensitively. Used by the local wiring and tests.
func (s *SearchIndex) Search(_ context.Context, query string) []domain.SearchLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var hits []domain.SearchLine
	for _, line := range s.lines {
		if strings.Contains(strings.ToLower(line.Text), needle) {
			hits = append(hits, line)
		}
	}
	return hits
}

// Count returns the number of published lines. Test helper.
func (s *SearchIndex) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Pending returns the number of buffered, unpublished lines. Test helper.
func (s *SearchIndex) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// Flushes returns how many times Flush ran. Test helper.
func (s *SearchIndex) Flushes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flushes
}
