package storage

import (
	"context"
	"errors"
)

// ErrNoSnapshot signals that no prior state has been persisted; callers
// start from the default empty state.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// Item is the persisted shape of one todo entry.
type Item struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Editing     bool   `json:"editing"`
}

// Snapshot is the full persisted application state. It mirrors the domain
// state but stays a plain storage entity so backends never import the
// domain package.
type Snapshot struct {
	Items     []Item `json:"items"`
	DraftText string `json:"draft_text"`
	NextID    int    `json:"next_id"`
	Filter    string `json:"filter"`
}

// SnapshotStore persists one snapshot at a time, best effort. Save replaces
// the stored snapshot wholesale; Load returns ErrNoSnapshot when nothing
// has been stored yet.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Close() error
}
