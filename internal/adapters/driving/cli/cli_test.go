package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caselight/casedex/internal/core/domain"
	"github.com/caselight/casedex/internal/core/ports/driven"
	"github.com/caselight/casedex/internal/core/ports/driving"
)

// --- Mock implementations for command testing ---

type cliMockOrchestrator struct {
	summary *driving.IngestSummary
	err     error
	caseID  string
}

func (m *cliMockOrchestrator) IngestCase(_ context.Context, caseID string) (*driving.IngestSummary, error) {
	m.caseID = caseID
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

func (m *cliMockOrchestrator) IngestDocument(_ context.Context, _ string, _ domain.CaseDocument) (domain.EvaluationResult, error) {
	return 0, errors.New("not used")
}

type cliMockReconciler struct {
	removed []domain.EvaluateExistingDocumentResponse
	err     error
}

func (m *cliMockReconciler) EvaluateDocument(_ context.Context, _ driving.EvaluateDocumentRequest) (*domain.EvaluateDocumentResponse, error) {
	return nil, errors.New("not used")
}

func (m *cliMockReconciler) SweepCase(_ context.Context, _ string, _ []domain.CaseDocument, _ string) ([]domain.EvaluateExistingDocumentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.removed, nil
}

type cliMockSource struct {
	manifest []domain.CaseDocument
}

func (m *cliMockSource) ListDocuments(_ context.Context, _ string) ([]domain.CaseDocument, error) {
	return m.manifest, nil
}

func (m *cliMockSource) FetchDocument(_ context.Context, _, _ string) ([]byte, error) {
	return nil, errors.New("not used")
}

type cliMockLedger struct {
	records []driven.EvaluationRecord
}

func (m *cliMockLedger) Record(_ context.Context, _ driven.EvaluationRecord) error { return nil }

func (m *cliMockLedger) ListByCase(_ context.Context, _ string) ([]driven.EvaluationRecord, error) {
	return m.records, nil
}

// executeCommand runs the root command with the given args and returns
// its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, output, "casedex version dev")
}

func TestIngestCommand(t *testing.T) {
	orch := &cliMockOrchestrator{
		summary: &driving.IngestSummary{CaseID: "42", Acquired: 2, Unchanged: 1},
	}
	ingestOrchestrator = orch
	defer func() { ingestOrchestrator = nil }()

	output, err := executeCommand(t, "ingest", "42")
	require.NoError(t, err)

	assert.Equal(t, "42", orch.caseID)
	assert.Contains(t, output, "2 acquired, 1 unchanged")
}

func TestIngestCommand_DocumentFailuresFailTheCommand(t *testing.T) {
	ingestOrchestrator = &cliMockOrchestrator{
		summary: &driving.IngestSummary{CaseID: "42", Acquired: 1, Errors: 2},
	}
	defer func() { ingestOrchestrator = nil }()

	output, err := executeCommand(t, "ingest", "42")

	assert.ErrorContains(t, err, "2 documents failed")
	assert.Contains(t, output, "2 errors")
}

func TestIngestCommand_ServiceFailure(t *testing.T) {
	ingestOrchestrator = &cliMockOrchestrator{err: errors.New("cms unavailable")}
	defer func() { ingestOrchestrator = nil }()

	_, err := executeCommand(t, "ingest", "42")
	assert.ErrorContains(t, err, "ingest failed")
}

func TestIngestCommand_RequiresCaseID(t *testing.T) {
	ingestOrchestrator = &cliMockOrchestrator{}
	defer func() { ingestOrchestrator = nil }()

	_, err := executeCommand(t, "ingest")
	assert.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	reconciler = &cliMockReconciler{
		removed: []domain.EvaluateExistingDocumentResponse{
			{BlobName: "42/pdfs/orphan.pdf", VersionID: 3},
		},
	}
	caseSource = &cliMockSource{}
	defer func() {
		reconciler = nil
		caseSource = nil
	}()

	output, err := executeCommand(t, "sweep", "42")
	require.NoError(t, err)

	assert.Contains(t, output, "Removed 42/pdfs/orphan.pdf (v3)")
	assert.Contains(t, output, "1 orphaned artifacts removed")
}

func TestSweepCommand_NoOrphans(t *testing.T) {
	reconciler = &cliMockReconciler{}
	caseSource = &cliMockSource{}
	defer func() {
		reconciler = nil
		caseSource = nil
	}()

	output, err := executeCommand(t, "sweep", "42")
	require.NoError(t, err)
	assert.Contains(t, output, "No orphaned artifacts")
}

func TestHistoryCommand(t *testing.T) {
	evaluationLedger = &cliMockLedger{
		records: []driven.EvaluationRecord{{
			CaseID:             "42",
			BlobName:           "42/pdfs/Complaint-D1.pdf",
			VersionID:          2,
			Result:             "AcquireDocument",
			RefreshSearchIndex: true,
			EvaluatedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}},
	}
	defer func() { evaluationLedger = nil }()

	output, err := executeCommand(t, "history", "42")
	require.NoError(t, err)

	assert.Contains(t, output, "2026-08-01 12:00:00")
	assert.Contains(t, output, "AcquireDocument")
	assert.Contains(t, output, "(index refreshed)")
}

func TestHistoryCommand_Empty(t *testing.T) {
	evaluationLedger = &cliMockLedger{}
	defer func() { evaluationLedger = nil }()

	output, err := executeCommand(t, "history", "42")
	require.NoError(t, err)
	assert.Contains(t, output, "No recorded decisions for case 42")
}

func TestCommands_Unconfigured(t *testing.T) {
	_, err := executeCommand(t, "ingest", "42")
	assert.ErrorContains(t, err, "not configured")

	_, err = executeCommand(t, "sweep", "42")
	assert.ErrorContains(t, err, "not configured")

	_, err = executeCommand(t, "history", "42")
	assert.ErrorContains(t, err, "not configured")
}
