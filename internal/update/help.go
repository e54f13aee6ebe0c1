package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"todotui/internal/views"
)

const helpBody = `Items move through three surfaces: the draft bar captures new
entries, the list navigates and edits them, and the palette runs
textual commands against the same state.`

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.allBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		Body:     helpBody,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) allBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Capture + "/enter", Action: "capture a new item"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle done"},
		{Key: m.Keys.Edit, Action: "edit item inline"},
		{Key: m.Keys.Delete, Action: "delete item"},
		{Key: m.Keys.ToggleAll, Action: "toggle all done"},
		{Key: m.Keys.ClearDone, Action: "clear completed"},
		{Key: "1/2/3", Action: "filter all/active/completed"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle this help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	all := m.allBindings()
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
