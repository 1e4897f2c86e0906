// Package tui provides terminal user interface components for scriptdex
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/monlor/scriptdex/internal/catalog"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Script catalog.ScriptRecord
}

// scriptItem implements list.Item for script display
type scriptItem struct {
	record catalog.ScriptRecord
}

func (i scriptItem) Title() string {
	return i.record.Path
}

func (i scriptItem) Description() string {
	return fmt.Sprintf("%s | %s | %s",
		i.record.Executor,
		strings.Join(i.record.SupportedOS, ", "),
		truncateText(i.record.Description, 50),
	)
}

func (i scriptItem) FilterValue() string {
	return i.record.Path
}

func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the script picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new script picker over every catalogued script,
// grouped under category headers
func NewPicker(categories []catalog.Category) Model {
	items := buildGroupedItems(categories)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = "Scriptdex - Select Script"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	// The list starts on the first category header; move to its first script.
	skipHeaders(&l, 1)

	return Model{
		list: l,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(scriptItem); ok {
				m.result = PickerResult{
					Action: ActionSelect,
					Script: item.record,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if key, ok := msg.(tea.KeyMsg); ok && isHeaderSelected(&m.list) {
		skipHeaders(&m.list, navigationDirection(key))
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Command  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive script picker
func RunPicker(categories []catalog.Category) (PickerResult, error) {
	if catalog.TotalScripts(categories) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(categories)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive picker that just lists scripts
func SimplePicker(categories []catalog.Category, links catalog.Links) string {
	var sb strings.Builder

	sb.WriteString("Scriptdex - Scripts\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if catalog.TotalScripts(categories) == 0 {
		sb.WriteString("No scripts found.\n")
		sb.WriteString("Add category directories with scripts and rerun scriptdex.\n")
		return sb.String()
	}

	i := 0
	for _, category := range categories {
		for _, script := range category.Scripts {
			i++
			sb.WriteString(fmt.Sprintf("%d. %s (%s)\n",
				i, script.Path, script.Executor))
			sb.WriteString(fmt.Sprintf("   OS: %s | %s\n",
				strings.Join(script.SupportedOS, ", "),
				truncateText(script.Description, 60)))
			sb.WriteString(fmt.Sprintf("   Run: %s\n\n", links.RemoteCommand(script)))
		}
	}

	return sb.String()
}
