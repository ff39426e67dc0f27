// Package store persists reconciliation workspaces in SQLite. Each workspace
// is one row; the ledger snapshots, manual matches and row reviews are JSON
// columns so the stored shape stays readable by other tooling.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/ngnetgroupmall/KDV-Kontrol-PRO-Sistemi-sub002/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS workspaces (
	id              TEXT PRIMARY KEY,
	smmm_data       TEXT NOT NULL DEFAULT '[]',
	firma_data      TEXT NOT NULL DEFAULT '[]',
	smmm_full_data  TEXT,
	firma_full_data TEXT,
	mappings        TEXT,
	manual_matches  TEXT NOT NULL DEFAULT '{}',
	row_reviews     TEXT NOT NULL DEFAULT '{}',
	updated_at      TEXT NOT NULL
);`

// SQLiteStateRepository implements usecase.StateRepository on a local SQLite
// file.
type SQLiteStateRepository struct {
	db *sql.DB
}

// Open opens (and if needed creates) the workspace database. WAL mode keeps
// concurrent CLI invocations from tripping over each other.
func Open(path string) (*SQLiteStateRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStateRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *SQLiteStateRepository) Close() error {
	return r.db.Close()
}

// LoadState returns the stored workspace state, or a fresh empty state when
// the workspace has never been saved.
func (r *SQLiteStateRepository) LoadState(ctx context.Context, workspaceID string) (*domain.WorkspaceState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT smmm_data, firma_data, smmm_full_data, firma_full_data, mappings, manual_matches, row_reviews
		FROM workspaces WHERE id = ?`, workspaceID)

	var smmmData, firmaData, manualMatches, rowReviews string
	var smmmFull, firmaFull, mappings sql.NullString
	err := row.Scan(&smmmData, &firmaData, &smmmFull, &firmaFull, &mappings, &manualMatches, &rowReviews)
	if err == sql.ErrNoRows {
		return domain.NewWorkspaceState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace %s: %w", workspaceID, err)
	}

	state := domain.NewWorkspaceState()
	if err := json.Unmarshal([]byte(smmmData), &state.SmmmData); err != nil {
		return nil, fmt.Errorf("corrupt smmm_data for workspace %s: %w", workspaceID, err)
	}
	if err := json.Unmarshal([]byte(firmaData), &state.FirmaData); err != nil {
		return nil, fmt.Errorf("corrupt firma_data for workspace %s: %w", workspaceID, err)
	}
	if err := json.Unmarshal([]byte(manualMatches), &state.ManualMatches); err != nil {
		return nil, fmt.Errorf("corrupt manual_matches for workspace %s: %w", workspaceID, err)
	}
	if err := json.Unmarshal([]byte(rowReviews), &state.RowReviews); err != nil {
		return nil, fmt.Errorf("corrupt row_reviews for workspace %s: %w", workspaceID, err)
	}
	if state.ManualMatches == nil {
		state.ManualMatches = make(map[string]string)
	}
	if state.RowReviews == nil {
		state.RowReviews = make(map[string]domain.ReviewEntry)
	}
	if smmmFull.Valid {
		state.SmmmFullData = json.RawMessage(smmmFull.String)
	}
	if firmaFull.Valid {
		state.FirmaFullData = json.RawMessage(firmaFull.String)
	}
	if mappings.Valid {
		state.Mappings = json.RawMessage(mappings.String)
	}
	return state, nil
}

// SaveState upserts the whole workspace state.
func (r *SQLiteStateRepository) SaveState(ctx context.Context, workspaceID string, state *domain.WorkspaceState) error {
	smmmData, err := json.Marshal(state.SmmmData)
	if err != nil {
		return fmt.Errorf("failed to marshal smmm data: %w", err)
	}
	firmaData, err := json.Marshal(state.FirmaData)
	if err != nil {
		return fmt.Errorf("failed to marshal firma data: %w", err)
	}
	manualMatches, err := json.Marshal(state.ManualMatches)
	if err != nil {
		return fmt.Errorf("failed to marshal manual matches: %w", err)
	}
	rowReviews, err := json.Marshal(state.RowReviews)
	if err != nil {
		return fmt.Errorf("failed to marshal row reviews: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, smmm_data, firma_data, smmm_full_data, firma_full_data, mappings, manual_matches, row_reviews, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			smmm_data = excluded.smmm_data,
			firma_data = excluded.firma_data,
			smmm_full_data = excluded.smmm_full_data,
			firma_full_data = excluded.firma_full_data,
			mappings = excluded.mappings,
			manual_matches = excluded.manual_matches,
			row_reviews = excluded.row_reviews,
			updated_at = excluded.updated_at`,
		workspaceID, string(smmmData), string(firmaData),
		nullable(state.SmmmFullData), nullable(state.FirmaFullData), nullable(state.Mappings),
		string(manualMatches), string(rowReviews), now())
	if err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", workspaceID, err)
	}
	return nil
}

// SaveRowReviews replaces the row-review column in one transaction so a
// partial write can never be observed.
func (r *SQLiteStateRepository) SaveRowReviews(ctx context.Context, workspaceID string, reviews map[string]domain.ReviewEntry) error {
	payload, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to marshal row reviews: %w", err)
	}
	return r.updateColumn(ctx, workspaceID, "row_reviews", string(payload))
}

// SaveManualMatches replaces the manual-match column in one transaction.
func (r *SQLiteStateRepository) SaveManualMatches(ctx context.Context, workspaceID string, matches map[string]string) error {
	payload, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal manual matches: %w", err)
	}
	return r.updateColumn(ctx, workspaceID, "manual_matches", string(payload))
}

func (r *SQLiteStateRepository) updateColumn(ctx context.Context, workspaceID, column, payload string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO workspaces (id, updated_at) VALUES (?, ?)`,
		workspaceID, now()); err != nil {
		return fmt.Errorf("failed to ensure workspace %s: %w", workspaceID, err)
	}
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE workspaces SET %s = ?, updated_at = ? WHERE id = ?`, column),
		payload, now(), workspaceID); err != nil {
		return fmt.Errorf("failed to update workspace %s: %w", workspaceID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit workspace %s: %w", workspaceID, err)
	}
	return nil
}

func nullable(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
