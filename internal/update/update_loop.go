package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/model"
	"todotui/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.HelpVisible {
			switch typed.String() {
			case m.Keys.Help, "esc", m.Keys.Quit:
				m.HelpVisible = false
			}
			return m, nil
		}

		switch m.Mode {
		case ModeEdit:
			return m.handleEditKey(typed)
		case ModeCapture:
			return m.handleCaptureKey(typed)
		default:
			return m.handleListKey(typed)
		}

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, m.expireStatusCmd()
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "error", typed.Err)
			return m, m.expireStatusCmd()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		next, cmd := m.apply(SubmitDraft{})
		next.draftInput.SetValue("")
		return next, cmd
	case "esc":
		m.Mode = ModeList
		m.draftInput.Blur()
		m.clampCursor()
		return m, nil
	}
	var inputCmd tea.Cmd
	m.draftInput, inputCmd = m.draftInput.Update(msg)
	next, cmd := m.apply(SetDraftText{Text: m.draftInput.Value()})
	return next, tea.Batch(inputCmd, cmd)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		id := m.EditID
		next, cmd := m.applyAll(
			SetDescription{ID: id, Description: m.editInput.Value()},
			SetEditing{ID: id, Editing: false},
		)
		next.leaveEditMode()
		return next, cmd
	case "esc":
		next, cmd := m.apply(SetEditing{ID: m.EditID, Editing: false})
		next.leaveEditMode()
		return next, cmd
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) leaveEditMode() {
	m.Mode = ModeList
	m.EditID = -1
	m.editInput.SetValue("")
	m.editInput.Blur()
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit, "esc":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = true
		return m, nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.Palette.LastError = ""
		m.commandInput.SetValue("")
		cmd := m.commandInput.Focus()
		return m, cmd
	case m.Keys.Capture, "enter":
		m.Mode = ModeCapture
		cmd := m.draftInput.Focus()
		return m, cmd
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.visibleItems())-1 {
			m.Cursor++
		}
		return m, nil
	case " ":
		if it, ok := m.itemAtCursor(); ok {
			return m.apply(SetCompleted{ID: it.ID, Completed: !it.Completed})
		}
		return m, nil
	case m.Keys.Edit:
		if it, ok := m.itemAtCursor(); ok {
			return m.apply(SetEditing{ID: it.ID, Editing: true})
		}
		return m, nil
	case m.Keys.Delete:
		if it, ok := m.itemAtCursor(); ok {
			return m.apply(DeleteItem{ID: it.ID})
		}
		return m, nil
	case m.Keys.ToggleAll:
		return m.apply(SetAllCompleted{Completed: !m.State.AllCompleted()})
	case m.Keys.ClearDone:
		return m.apply(DeleteCompleted{})
	case "1":
		return m.apply(SetVisibilityFilter{Filter: model.FilterAll})
	case "2":
		return m.apply(SetVisibilityFilter{Filter: model.FilterActive})
	case "3":
		return m.apply(SetVisibilityFilter{Filter: model.FilterCompleted})
	}
	return m, nil
}

func (m Model) expireStatusCmd() tea.Cmd {
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}

func (m Model) View() string {
	listPane := m.renderListPane()

	sidePane := ""
	if m.Palette.Active {
		sidePane = views.RenderPalettePanel(views.PalettePanelData{
			InputView: m.commandInput.View(),
			LastError: m.Palette.LastError,
		})
	} else if m.HelpVisible {
		sidePane = m.renderHelpView()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todotui | filter: %s | %d active", m.State.Filter, m.State.ActiveCount()),
		ListPane:   listPane,
		SidePane:   sidePane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s capture | %s edit | %s delete | %s toggle all | %s clear done | 1/2/3 filter | %s cmd | %s help | %s quit",
			m.Keys.Capture, m.Keys.Edit, m.Keys.Delete, m.Keys.ToggleAll, m.Keys.ClearDone, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderListPane() string {
	visible := m.visibleItems()
	items := make([]views.ListItemData, 0, len(visible))
	for i, it := range visible {
		data := views.ListItemData{
			ID:          it.ID,
			Description: it.Description,
			Completed:   it.Completed,
			Editing:     m.Mode == ModeEdit && it.ID == m.EditID,
			Selected:    m.Mode == ModeList && i == m.Cursor,
		}
		if data.Editing {
			data.EditorView = m.editInput.View()
		}
		items = append(items, data)
	}

	parts := []string{
		views.RenderDraftBar(views.DraftBarData{
			InputView: m.draftInput.View(),
			Capturing: m.Mode == ModeCapture,
		}),
		views.RenderFilterBar(views.FilterBarData{
			Filter:         string(m.State.Filter),
			Filters:        filterNames(),
			ActiveCount:    m.State.ActiveCount(),
			CompletedCount: m.State.CompletedCount(),
		}),
		views.RenderListPanel(views.ListPanelData{
			Items:  items,
			Filter: string(m.State.Filter),
		}),
	}
	return joinLines(parts)
}

func filterNames() []string {
	filters := model.Filters()
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		out = append(out, string(f))
	}
	return out
}
