package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the snapshot in a sqlite database: one row per item
// plus a single snapshot_meta row for the scalar fields. Save replaces the
// whole snapshot in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	row := s.db.QueryRowContext(ctx, `
		SELECT draft_text, next_id, filter FROM snapshot_meta WHERE id = 1`)
	if err := row.Scan(&snap.DraftText, &snap.NextID, &snap.Filter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("scan snapshot meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, completed, editing
		FROM items ORDER BY position ASC`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	snap.Items = make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Description, &it.Completed, &it.Editing); err != nil {
			return Snapshot{}, fmt.Errorf("scan item: %w", err)
		}
		snap.Items = append(snap.Items, it)
	}
	return snap, rows.Err()
}

func (s *SQLiteStore) Save(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	for position, it := range snap.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, description, completed, editing, position)
			VALUES (?, ?, ?, ?, ?)`,
			it.ID, it.Description, it.Completed, it.Editing, position,
		); err != nil {
			return fmt.Errorf("insert item %d: %w", it.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (id, draft_text, next_id, filter)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			draft_text = excluded.draft_text,
			next_id = excluded.next_id,
			filter = excluded.filter`,
		snap.DraftText, snap.NextID, snap.Filter,
	); err != nil {
		return fmt.Errorf("upsert snapshot meta: %w", err)
	}
	return tx.Commit()
}
