package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/model"
	"todotui/internal/storage"
)

const saveTimeout = 2 * time.Second

// apply runs one event through the transition function, commits the result,
// executes the declared follow-up actions, and appends the snapshot push.
// One push per transition, no-op transitions included.
func (m Model) apply(ev Event) (Model, tea.Cmd) {
	next, actions := Transition(ev, m.State)
	m.State = next
	m.clampCursor()

	cmds := make([]tea.Cmd, 0, len(actions)+1)
	for _, action := range actions {
		switch a := action.(type) {
		case FocusItemInput:
			m.Mode = ModeEdit
			m.EditID = a.ID
			if idx := m.State.Find(a.ID); idx >= 0 {
				m.editInput.SetValue(m.State.Items[idx].Description)
				m.editInput.CursorEnd()
			}
			cmds = append(cmds, m.editInput.Focus())
		}
	}
	cmds = append(cmds, m.persistCmd())
	return m, tea.Batch(cmds...)
}

// applyAll folds a sequence of events, batching their commands.
func (m Model) applyAll(events ...Event) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(events))
	for _, ev := range events {
		var cmd tea.Cmd
		m, cmd = m.apply(ev)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// persistCmd pushes the current state to the snapshot store, fire and
// forget. Failures are logged and otherwise discarded.
func (m Model) persistCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	snap := SnapshotFromState(m.State)
	store := m.store
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := store.Save(ctx, snap); err != nil {
			logger.Warn("snapshot save failed", "error", err)
		}
		return nil
	}
}

func SnapshotFromState(s model.State) storage.Snapshot {
	items := make([]storage.Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, storage.Item{
			ID:          it.ID,
			Description: it.Description,
			Completed:   it.Completed,
			Editing:     it.Editing,
		})
	}
	return storage.Snapshot{
		Items:     items,
		DraftText: s.DraftText,
		NextID:    s.NextID,
		Filter:    string(s.Filter),
	}
}

func StateFromSnapshot(snap storage.Snapshot) (model.State, error) {
	items := make([]model.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, model.Item{
			ID:          it.ID,
			Description: it.Description,
			Completed:   it.Completed,
			Editing:     it.Editing,
		})
	}
	s := model.State{
		Items:     items,
		DraftText: snap.DraftText,
		NextID:    snap.NextID,
		Filter:    model.Filter(snap.Filter),
	}
	if err := s.Validate(); err != nil {
		return model.State{}, fmt.Errorf("restore snapshot: %w", err)
	}
	return s, nil
}

// LoadState restores the persisted state, falling back to the default
// empty state when nothing was stored or the snapshot does not validate.
func LoadState(ctx context.Context, store storage.SnapshotStore, logger *slog.Logger) model.State {
	snap, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			logger.Warn("snapshot load failed", "error", err)
		}
		return model.DefaultState()
	}
	s, err := StateFromSnapshot(snap)
	if err != nil {
		logger.Warn("snapshot rejected", "error", err)
		return model.DefaultState()
	}
	return s
}
