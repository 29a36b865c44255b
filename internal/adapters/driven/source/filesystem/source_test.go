package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caselight/casedex/internal/core/domain"
)

func writeCaseFile(t *testing.T, root, caseID, name, content string) {
	t.Helper()
	dir := filepath.Join(root, caseID)
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestListDocuments(t *testing.T) {
	root := t.TempDir()
	writeCaseFile(t, root, "42", "Complaint.docx", "complaint")
	writeCaseFile(t, root, "42", "Answer.docx", "answer")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "42", "attachments"), 0700))

	s := NewSource(root)
	docs, err := s.ListDocuments(context.Background(), "42")
	require.NoError(t, err)

	require.Len(t, docs, 2, "subdirectories are not documents")
	assert.Equal(t, "Answer.docx", docs[0].ID)
	assert.Equal(t, "Complaint.docx", docs[1].ID)
	assert.Equal(t, docs[1].ID, docs[1].FileName)
	assert.NotZero(t, docs[1].VersionID)
	assert.Equal(t, domain.UnknownDocumentType, docs[1].Type)
}

func TestListDocuments_TouchBumpsVersion(t *testing.T) {
	root := t.TempDir()
	writeCaseFile(t, root, "42", "Complaint.docx", "complaint")

	s := NewSource(root)
	ctx := context.Background()

	before, err := s.ListDocuments(ctx, "42")
	require.NoError(t, err)

	path := filepath.Join(root, "42", "Complaint.docx")
	newTime := time.Unix(before[0].VersionID+60, 0)
	require.NoError(t, os.Chtimes(path, newTime, newTime))

	after, err := s.ListDocuments(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, before[0].VersionID+60, after[0].VersionID)
}

func TestListDocuments_UnknownCase(t *testing.T) {
	s := NewSource(t.TempDir())

	_, err := s.ListDocuments(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchDocument(t *testing.T) {
	root := t.TempDir()
	writeCaseFile(t, root, "42", "Complaint.docx", "complaint bytes")

	s := NewSource(root)
	data, err := s.FetchDocument(context.Background(), "42", "Complaint.docx")
	require.NoError(t, err)
	assert.Equal(t, []byte("complaint bytes"), data)
}

func TestFetchDocument_Unknown(t *testing.T) {
	s := NewSource(t.TempDir())

	_, err := s.FetchDocument(context.Background(), "42", "missing.docx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
