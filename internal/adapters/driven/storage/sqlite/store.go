package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/caselight/casedex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/caselight/casedex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.EvaluationLedger = (*Store)(nil)

// timeFormat is how evaluated_at is stored.
const timeFormat = "2006-01-02 15:04:05.999999999"

// Store is the SQLite-backed evaluation ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a ledger store at the specified data directory.
// If dataDir is empty, defaults to ~/.casedex/data/ledger.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".casedex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ledger.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends one reconciliation decision.
func (s *Store) Record(ctx context.Context, rec driven.EvaluationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations
			(case_id, document_id, blob_name, version_id, result, refresh_search_index, correlation_id, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.CaseID, rec.DocumentID, rec.BlobName, rec.VersionID, rec.Result,
		boolToInt(rec.RefreshSearchIndex), rec.CorrelationID, rec.EvaluatedAt.UTC().Format(timeFormat))

	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}
	return nil
}

// ListByCase returns a case's decisions, most recent first.
func (s *Store) ListByCase(ctx context.Context, caseID string) ([]driven.EvaluationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT case_id, document_id, blob_name, version_id, result, refresh_search_index, correlation_id, evaluated_at
		FROM evaluations
		WHERE case_id = ?
		ORDER BY id DESC
	`, caseID)
	if err != nil {
		return nil, fmt.Errorf("querying evaluations: %w", err)
	}
	defer rows.Close()

	var records []driven.EvaluationRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec driven.EvaluationRecord
		var refresh int
		// The driver returns DATETIME columns as time.Time.
		if err := rows.Scan(&rec.CaseID, &rec.DocumentID, &rec.BlobName, &rec.VersionID,
			&rec.Result, &refresh, &rec.CorrelationID, &rec.EvaluatedAt); err != nil {
			return nil, fmt.Errorf("scanning evaluation: %w", err)
		}
		rec.RefreshSearchIndex = refresh != 0
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}
	return records, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
