package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/commands"
	"todotui/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// executePaletteCommand parses the palette input and routes it through the
// same events the keyboard surface uses.
func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.logger.Debug("palette command", "raw", raw)

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Palette = CommandPaletteState{Active: true, LastError: err.Error()}
		m.commandInput.SetValue("")
		return m, nil
	}

	var events []Event
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			events = append(events,
				SetDraftText{Text: a.Description},
				SubmitDraft{},
			)
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Description)}, nil
		},
		Done: func(a commands.ToggleArgs) (commands.Result, error) {
			if a.All {
				events = append(events, SetAllCompleted{Completed: true})
				return commands.Result{Message: "all items done"}, nil
			}
			events = append(events, SetCompleted{ID: a.ID, Completed: true})
			return commands.Result{Message: fmt.Sprintf("done: #%d", a.ID)}, nil
		},
		Undone: func(a commands.ToggleArgs) (commands.Result, error) {
			if a.All {
				events = append(events, SetAllCompleted{Completed: false})
				return commands.Result{Message: "all items active"}, nil
			}
			events = append(events, SetCompleted{ID: a.ID, Completed: false})
			return commands.Result{Message: fmt.Sprintf("active again: #%d", a.ID)}, nil
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			events = append(events, SetDescription{ID: a.ID, Description: a.Description})
			return commands.Result{Message: fmt.Sprintf("edited: #%d", a.ID)}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			events = append(events, DeleteItem{ID: a.ID})
			return commands.Result{Message: fmt.Sprintf("deleted: #%d", a.ID)}, nil
		},
		Clear: func() (commands.Result, error) {
			events = append(events, DeleteCompleted{})
			return commands.Result{Message: "completed items cleared"}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			filter, parseErr := model.ParseFilter(a.Name)
			if parseErr != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("unknown filter: %s", a.Name),
				}
			}
			events = append(events, SetVisibilityFilter{Filter: filter})
			return commands.Result{Message: fmt.Sprintf("filter: %s", filter)}, nil
		},
	})
	if err != nil {
		m.Palette = CommandPaletteState{Active: true, LastError: err.Error()}
		m.commandInput.SetValue("")
		return m, nil
	}

	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	next, applyCmd := m.applyAll(events...)
	next.Status = StatusBar{Text: res.Message}
	return next, tea.Batch(applyCmd, next.expireStatusCmd())
}
