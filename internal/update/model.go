package update

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"todotui/internal/model"
	"todotui/internal/storage"
)

// Mode is the input mode of the list screen.
type Mode string

const (
	ModeCapture Mode = "capture" // draft input focused
	ModeList    Mode = "list"    // cursor over visible items
	ModeEdit    Mode = "edit"    // inline edit of one item
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Quit      string
	Help      string
	Palette   string
	Capture   string
	Edit      string
	Delete    string
	ToggleAll string
	ClearDone string
}

type CommandPaletteState struct {
	Active    bool
	Input     string
	LastError string
}

type Model struct {
	State       model.State
	Mode        Mode
	Cursor      int
	EditID      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	draftInput   textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model

	store     storage.SnapshotStore
	logger    *slog.Logger
	statusTTL time.Duration
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel() Model {
	m := Model{
		State:     model.DefaultState(),
		Mode:      ModeCapture,
		EditID:    -1,
		Keys:      defaultKeyMap(),
		logger:    slog.New(slog.DiscardHandler),
		statusTTL: 3 * time.Second,
	}
	m.initInputs()
	return m
}

func NewModelWithState(s model.State) Model {
	m := NewModel()
	m.State = s
	m.draftInput.SetValue(s.DraftText)
	return m
}

func NewModelWithConfig(s model.State, store storage.SnapshotStore, logger *slog.Logger, cfg RuntimeConfig) Model {
	m := NewModelWithState(s)
	m.store = store
	if logger != nil {
		m.logger = logger
	}
	if cfg.StatusTTLSeconds > 0 {
		m.statusTTL = time.Duration(cfg.StatusTTLSeconds) * time.Second
	}
	return m
}

func defaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit:      "q",
		Help:      "?",
		Palette:   "/",
		Capture:   "i",
		Edit:      "e",
		Delete:    "d",
		ToggleAll: "a",
		ClearDone: "C",
	}
}

func (m *Model) initInputs() {
	draft := textinput.New()
	draft.Prompt = "> "
	draft.Placeholder = "What needs to be done?"
	draft.CharLimit = 200
	draft.Focus()
	m.draftInput = draft

	edit := textinput.New()
	edit.Prompt = "✎ "
	edit.CharLimit = 200
	m.editInput = edit

	command := textinput.New()
	command.Prompt = ""
	command.Placeholder = "add buy milk"
	command.CharLimit = 200
	m.commandInput = command

	m.helpModel = help.New()
}

// visibleItems is the filtered slice the cursor moves over.
func (m Model) visibleItems() []model.Item {
	return m.State.VisibleItems()
}

func (m Model) itemAtCursor() (model.Item, bool) {
	visible := m.visibleItems()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Item{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	max := len(m.visibleItems()) - 1
	if m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
