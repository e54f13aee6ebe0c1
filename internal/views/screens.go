package views

import (
	"fmt"
	"strings"
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

type ListItemData struct {
	ID          int
	Description string
	Completed   bool
	Editing     bool
	Selected    bool
	EditorView  string
}

type ListPanelData struct {
	Items  []ListItemData
	Filter string
}

type DraftBarData struct {
	InputView string
	Capturing bool
}

type FilterBarData struct {
	Filter         string
	Filters        []string
	ActiveCount    int
	CompletedCount int
}

type PalettePanelData struct {
	InputView string
	LastError string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Body     string
}

func RenderListPanel(data ListPanelData) string {
	if len(data.Items) == 0 {
		return mutedStyle.Render(fmt.Sprintf("no %s items", strings.ToLower(data.Filter)))
	}
	lines := make([]string, 0, len(data.Items))
	for _, it := range data.Items {
		if it.Editing {
			lines = append(lines, fmt.Sprintf("> %s", it.EditorView))
			continue
		}
		box := mutedStyle.Render(boxUnchecked)
		text := it.Description
		if it.Completed {
			box = checkedStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		prefix := "  "
		if it.Selected {
			prefix = selectedStyle.Render("> ")
			text = selectedStyle.Render(text)
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, box, mutedStyle.Render(fmt.Sprintf("#%d", it.ID)), text))
	}
	return strings.Join(lines, "\n")
}

func RenderDraftBar(data DraftBarData) string {
	label := "new item"
	if data.Capturing {
		label = selectedStyle.Render("new item")
	}
	return fmt.Sprintf("%s %s", label, data.InputView)
}

func RenderFilterBar(data FilterBarData) string {
	tabs := make([]string, 0, len(data.Filters))
	for _, f := range data.Filters {
		if f == data.Filter {
			tabs = append(tabs, filterOnStyle.Render(f))
			continue
		}
		tabs = append(tabs, mutedStyle.Render(f))
	}
	counts := fmt.Sprintf("%d active / %d done", data.ActiveCount, data.CompletedCount)
	return strings.Join(tabs, "  ") + "   " + mutedStyle.Render(counts)
}

func RenderPalettePanel(data PalettePanelData) string {
	lines := []string{
		"command palette",
		"/ " + data.InputView,
	}
	if data.LastError != "" {
		lines = append(lines, errorStyle.Render(data.LastError))
	}
	lines = append(lines, mutedStyle.Render("add | done | undone | edit | delete | clear | filter"))
	return strings.Join(lines, "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("Help\n")
	if data.Body != "" {
		b.WriteString(RenderMarkdown(data.Body))
		b.WriteString("\n")
	}
	for _, binding := range data.Bindings {
		b.WriteString(binding)
		b.WriteString("\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimRight(b.String(), "\n")
}
