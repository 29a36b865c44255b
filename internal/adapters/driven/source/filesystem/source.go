// Package filesystem implements driven.CaseSource over a local directory
// tree: one subdirectory per case, one file per document. Useful for
// local runs and integration testing; production deployments plug in the
// case-management API client instead.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CaseSource = (*Source)(nil)

// Source reads case manifests from a directory tree.
type Source struct {
	root string
}

// NewSource creates a filesystem case source rooted at root.
func NewSource(root string) *Source {
	return &Source{root: root}
}

// ListDocuments returns one CaseDocument per regular file under the
// case's directory. The file name is the document id and the modification
// time is the version, so touching a file bumps its version.
func (s *Source) ListDocuments(_ context.Context, caseID string) ([]domain.CaseDocument, error) {
	dir := filepath.Join(s.root, caseID)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading case directory: %w", err)
	}

	var docs []domain.CaseDocument
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		docs = append(docs, domain.CaseDocument{
			ID:        entry.Name(),
			VersionID: info.ModTime().Unix(),
			FileName:  entry.Name(),
			Type:      domain.UnknownDocumentType,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// FetchDocument reads the document's bytes.
func (s *Source) FetchDocument(_ context.Context, caseID, documentID string) ([]byte, error) {
	path := filepath.Join(s.root, caseID, documentID)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("document %s/%s: %w", caseID, documentID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return data, nil
}
