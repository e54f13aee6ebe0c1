package update

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/model"
	"todotui/internal/storage"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func asModel(t *testing.T, m tea.Model) Model {
	t.Helper()
	out, ok := m.(Model)
	if !ok {
		t.Fatalf("unexpected model type: %T", m)
	}
	return out
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.Mode != ModeCapture {
		t.Fatalf("expected capture mode, got %q", m.Mode)
	}
	if m.EditID != -1 {
		t.Fatalf("expected no edit target, got %d", m.EditID)
	}
	if m.Keys.Quit != "q" || m.Keys.Palette != "/" {
		t.Fatalf("unexpected key map: %+v", m.Keys)
	}
	if err := m.State.Validate(); err != nil {
		t.Fatalf("default state invalid: %v", err)
	}
}

func TestCaptureTypingAndSubmit(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(keyRunes("write tests"))
	next := asModel(t, updated)
	if next.State.DraftText != "write tests" {
		t.Fatalf("draft not synced: %q", next.State.DraftText)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)
	if len(next.State.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(next.State.Items))
	}
	it := next.State.Items[0]
	if it.ID != 0 || it.Description != "write tests" || it.Completed {
		t.Fatalf("unexpected item: %+v", it)
	}
	if next.State.DraftText != "" || next.State.NextID != 1 {
		t.Fatalf("draft not cleared: %+v", next.State)
	}
}

func TestEmptySubmitCreatesNothing(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := asModel(t, updated)
	if len(next.State.Items) != 0 || next.State.NextID != 0 {
		t.Fatalf("empty submit created item: %+v", next.State)
	}
}

func listModel(t *testing.T) Model {
	t.Helper()
	m := NewModelWithState(model.State{
		Items: []model.Item{
			{ID: 0, Description: "a"},
			{ID: 1, Description: "b"},
			{ID: 2, Description: "c"},
		},
		NextID: 3,
		Filter: model.FilterAll,
	})
	m.Mode = ModeList
	return m
}

func TestListCursorAndToggle(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("j"))
	next := asModel(t, updated)
	if next.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", next.Cursor)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	next = asModel(t, updated)
	if !next.State.Items[1].Completed {
		t.Fatalf("expected item 1 completed: %+v", next.State.Items)
	}

	updated, _ = next.Update(keyRunes("k"))
	next = asModel(t, updated)
	if next.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", next.Cursor)
	}
}

func TestDeleteKeyRemovesItemAtCursor(t *testing.T) {
	m := listModel(t)
	m.Cursor = 1
	updated, _ := m.Update(keyRunes("d"))
	next := asModel(t, updated)
	if len(next.State.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(next.State.Items))
	}
	if next.State.Items[0].ID != 0 || next.State.Items[1].ID != 2 {
		t.Fatalf("unexpected items: %+v", next.State.Items)
	}
}

func TestEditFlow(t *testing.T) {
	m := listModel(t)
	m.Cursor = 1
	updated, _ := m.Update(keyRunes("e"))
	next := asModel(t, updated)
	if next.Mode != ModeEdit || next.EditID != 1 {
		t.Fatalf("expected edit mode on item 1: mode=%q id=%d", next.Mode, next.EditID)
	}
	if !next.State.Items[1].Editing {
		t.Fatal("expected editing flag set")
	}
	if next.editInput.Value() != "b" {
		t.Fatalf("editor not seeded: %q", next.editInput.Value())
	}

	updated, _ = next.Update(keyRunes("!"))
	next = asModel(t, updated)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)
	if next.Mode != ModeList || next.EditID != -1 {
		t.Fatalf("expected back in list mode: %+v", next.Mode)
	}
	if next.State.Items[1].Description != "b!" {
		t.Fatalf("edit not committed: %q", next.State.Items[1].Description)
	}
	if next.State.Items[1].Editing {
		t.Fatal("editing flag should be cleared")
	}
}

func TestEditEscapeKeepsDescription(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("e"))
	next := asModel(t, updated)
	updated, _ = next.Update(keyRunes("zzz"))
	next = asModel(t, updated)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = asModel(t, updated)
	if next.State.Items[0].Description != "a" {
		t.Fatalf("escape should discard edit: %q", next.State.Items[0].Description)
	}
	if next.State.Items[0].Editing {
		t.Fatal("editing flag should be cleared on escape")
	}
}

func TestToggleAllAndClearCompleted(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("a"))
	next := asModel(t, updated)
	for _, it := range next.State.Items {
		if !it.Completed {
			t.Fatalf("expected all completed: %+v", next.State.Items)
		}
	}

	updated, _ = next.Update(keyRunes("C"))
	next = asModel(t, updated)
	if len(next.State.Items) != 0 {
		t.Fatalf("expected empty list after clear: %+v", next.State.Items)
	}
}

func TestFilterKeysAndCursorClamp(t *testing.T) {
	m := listModel(t)
	m.Cursor = 2
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next := asModel(t, updated)

	updated, _ = next.Update(keyRunes("2"))
	next = asModel(t, updated)
	if next.State.Filter != model.FilterActive {
		t.Fatalf("expected active filter, got %q", next.State.Filter)
	}
	if next.Cursor >= len(next.State.VisibleItems()) {
		t.Fatalf("cursor not clamped: %d", next.Cursor)
	}

	updated, _ = next.Update(keyRunes("1"))
	next = asModel(t, updated)
	if next.State.Filter != model.FilterAll {
		t.Fatalf("expected all filter, got %q", next.State.Filter)
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := asModel(t, updated)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add from palette"))
	next = asModel(t, updated)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)

	if next.Palette.Active {
		t.Fatal("expected palette closed")
	}
	if len(next.State.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(next.State.Items))
	}
	added := next.State.Items[3]
	if added.Description != "from palette" || added.ID != 3 {
		t.Fatalf("unexpected added item: %+v", added)
	}
	if !strings.Contains(next.Status.Text, "added") {
		t.Fatalf("unexpected status: %+v", next.Status)
	}
}

func TestPaletteUnknownCommandShowsError(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := asModel(t, updated)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = asModel(t, updated)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)

	if !next.Palette.Active {
		t.Fatal("palette should stay open on error")
	}
	if !strings.Contains(next.Palette.LastError, "unknown_command") {
		t.Fatalf("unexpected palette error: %q", next.Palette.LastError)
	}
}

func TestPaletteFilterCommand(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := asModel(t, updated)
	updated, _ = next.Update(keyRunes("filter completed"))
	next = asModel(t, updated)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = asModel(t, updated)
	if next.State.Filter != model.FilterCompleted {
		t.Fatalf("expected completed filter, got %q", next.State.Filter)
	}
}

func TestHelpToggle(t *testing.T) {
	m := listModel(t)
	updated, _ := m.Update(keyRunes("?"))
	next := asModel(t, updated)
	if !next.HelpVisible {
		t.Fatal("expected help visible")
	}
	updated, _ = next.Update(keyRunes("?"))
	next = asModel(t, updated)
	if next.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestQuitKey(t *testing.T) {
	m := listModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := asModel(t, updated)
	if !next.Quitting {
		t.Fatal("expected quitting flag")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestStatusMessages(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := asModel(t, updated)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	boom := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: boom})
	next = asModel(t, updated)
	if next.LastError == nil || !next.Status.IsError {
		t.Fatalf("unexpected error handling: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = asModel(t, updated)
	if next.Status.Text != "" {
		t.Fatalf("expected cleared status: %+v", next.Status)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := listModel(t)
	out := m.View()
	if !strings.Contains(out, "filter: All") {
		t.Fatalf("expected filter in header: %q", out)
	}
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected item %q in view", want)
		}
	}
}

func TestSnapshotStateRoundTrip(t *testing.T) {
	s := model.State{
		Items: []model.Item{
			{ID: 0, Description: "a", Completed: true},
			{ID: 2, Description: "b", Editing: true},
		},
		DraftText: "half",
		NextID:    3,
		Filter:    model.FilterActive,
	}
	restored, err := StateFromSnapshot(SnapshotFromState(s))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if restored.DraftText != s.DraftText || restored.NextID != s.NextID || restored.Filter != s.Filter {
		t.Fatalf("scalars lost: %+v", restored)
	}
	if len(restored.Items) != 2 || restored.Items[1] != s.Items[1] {
		t.Fatalf("items lost: %+v", restored.Items)
	}
}

func TestStateFromSnapshotRejectsCorrupt(t *testing.T) {
	snap := storage.Snapshot{
		Items:  []storage.Item{{ID: 0}, {ID: 0}},
		NextID: 1,
		Filter: "All",
	}
	if _, err := StateFromSnapshot(snap); err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestLoadStateFallsBackToDefault(t *testing.T) {
	store, err := storage.NewJSONStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	logger := slog.New(slog.DiscardHandler)

	s := LoadState(context.Background(), store, logger)
	if len(s.Items) != 0 || s.NextID != 0 || s.Filter != model.FilterAll {
		t.Fatalf("expected default state, got: %+v", s)
	}

	want := model.State{
		Items:  []model.Item{{ID: 0, Description: "persisted"}},
		NextID: 1,
		Filter: model.FilterAll,
	}
	if err := store.Save(context.Background(), SnapshotFromState(want)); err != nil {
		t.Fatalf("save: %v", err)
	}
	s = LoadState(context.Background(), store, logger)
	if len(s.Items) != 1 || s.Items[0].Description != "persisted" {
		t.Fatalf("expected restored state, got: %+v", s)
	}
}
