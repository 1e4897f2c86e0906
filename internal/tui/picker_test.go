package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/monlor/scriptdex/internal/catalog"
)

func testCatalog() []catalog.Category {
	return []catalog.Category{
		{
			Name: "network",
			Scripts: []catalog.ScriptRecord{
				{
					Name:        "ddns.sh",
					Path:        "network/ddns.sh",
					Description: "Updates dynamic DNS records",
					Executor:    "bash",
					SupportedOS: []string{"Linux", "OpenWrt"},
				},
			},
		},
		{
			Name: "system",
			Scripts: []catalog.ScriptRecord{
				{
					Name:        "backup.sh",
					Path:        "system/backup.sh",
					Description: "Backs up /etc into a tarball",
					Executor:    "sh",
					SupportedOS: []string{"Linux"},
				},
			},
		},
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text   string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"a description that runs long", 10, "a descr..."},
		{"", 10, ""},
		{"exactly10!", 10, "exactly10!"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := truncateText(tt.text, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestScriptItemMethods(t *testing.T) {
	item := scriptItem{
		record: catalog.ScriptRecord{
			Name:        "ddns.sh",
			Path:        "network/ddns.sh",
			Description: "Updates dynamic DNS records",
			Executor:    "bash",
			SupportedOS: []string{"Linux", "OpenWrt"},
		},
	}

	t.Run("Title", func(t *testing.T) {
		if got := item.Title(); got != "network/ddns.sh" {
			t.Errorf("Title() = %q, want %q", got, "network/ddns.sh")
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := item.FilterValue(); got != "network/ddns.sh" {
			t.Errorf("FilterValue() = %q, want %q", got, "network/ddns.sh")
		}
	})

	t.Run("Description", func(t *testing.T) {
		desc := item.Description()
		if !strings.Contains(desc, "bash") {
			t.Error("Description should contain executor")
		}
		if !strings.Contains(desc, "Linux, OpenWrt") {
			t.Error("Description should contain OS list")
		}
		if !strings.Contains(desc, "Updates dynamic DNS records") {
			t.Error("Description should contain script summary")
		}
	})
}

func TestModelKeyHandling(t *testing.T) {
	t.Run("select with enter", func(t *testing.T) {
		m := NewPicker(testCatalog())
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model := newModel.(Model)

		if model.result.Action != ActionSelect {
			t.Errorf("Action = %v, want ActionSelect", model.result.Action)
		}
		if model.result.Script.Path != "network/ddns.sh" {
			t.Errorf("Script.Path = %q, want first script", model.result.Script.Path)
		}
		if !model.quitting {
			t.Error("Model should be quitting")
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("quit with q", func(t *testing.T) {
		m := NewPicker(testCatalog())
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
		if !model.quitting {
			t.Error("Model should be quitting")
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("quit with esc", func(t *testing.T) {
		m := NewPicker(testCatalog())
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
	})

	t.Run("window size update", func(t *testing.T) {
		m := NewPicker(testCatalog())
		newModel, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
		model := newModel.(Model)

		if model.width != 100 {
			t.Errorf("Width = %d, want 100", model.width)
		}
		if model.height != 50 {
			t.Errorf("Height = %d, want 50", model.height)
		}
		if cmd != nil {
			t.Error("Window size update should not return a command")
		}
	})
}

func TestModelInit(t *testing.T) {
	m := Model{}
	cmd := m.Init()
	if cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModelView(t *testing.T) {
	t.Run("normal view contains help", func(t *testing.T) {
		m := NewPicker(testCatalog())
		view := m.View()

		if !strings.Contains(view, "[enter] Command") {
			t.Error("View should contain command help")
		}
		if !strings.Contains(view, "[/] Filter") {
			t.Error("View should contain filter help")
		}
		if !strings.Contains(view, "[q] Quit") {
			t.Error("View should contain quit help")
		}
	})

	t.Run("quitting view is empty", func(t *testing.T) {
		m := NewPicker(testCatalog())
		m.quitting = true
		view := m.View()

		if view != "" {
			t.Errorf("Quitting view should be empty, got %q", view)
		}
	})
}

func TestModelResult(t *testing.T) {
	m := Model{
		result: PickerResult{
			Action: ActionSelect,
			Script: catalog.ScriptRecord{Path: "network/ddns.sh"},
		},
	}

	result := m.Result()
	if result.Action != ActionSelect {
		t.Errorf("Action = %v, want ActionSelect", result.Action)
	}
	if result.Script.Path != "network/ddns.sh" {
		t.Errorf("Script.Path = %q, want %q", result.Script.Path, "network/ddns.sh")
	}
}

func TestRunPickerEmptyCatalog(t *testing.T) {
	result, err := RunPicker(nil)
	if err != nil {
		t.Fatalf("RunPicker with empty catalog failed: %v", err)
	}

	if result.Action != ActionQuit {
		t.Errorf("Empty catalog should return ActionQuit, got %v", result.Action)
	}
}

func TestSimplePicker(t *testing.T) {
	links := catalog.Links{Repo: "example/scripts", Branch: "main"}

	t.Run("empty catalog", func(t *testing.T) {
		output := SimplePicker(nil, links)

		if !strings.Contains(output, "No scripts found") {
			t.Error("Should indicate no scripts found")
		}
		if !strings.Contains(output, "rerun scriptdex") {
			t.Error("Should show how to populate the catalog")
		}
	})

	t.Run("with scripts", func(t *testing.T) {
		output := SimplePicker(testCatalog(), links)

		if !strings.Contains(output, "Scriptdex") {
			t.Error("Should contain title")
		}
		if !strings.Contains(output, "network/ddns.sh") {
			t.Error("Should contain first script path")
		}
		if !strings.Contains(output, "system/backup.sh") {
			t.Error("Should contain second script path")
		}
		if !strings.Contains(output, "Linux, OpenWrt") {
			t.Error("Should contain OS list")
		}
		if !strings.Contains(output, "curl -sSL https://raw.githubusercontent.com/example/scripts/main/network/ddns.sh | bash") {
			t.Error("Should contain remote command")
		}
	})
}

func TestActionConstants(t *testing.T) {
	// Verify action constants have distinct values
	actions := []Action{ActionNone, ActionSelect, ActionQuit}
	seen := make(map[Action]bool)

	for _, a := range actions {
		if seen[a] {
			t.Errorf("Duplicate action value: %v", a)
		}
		seen[a] = true
	}
}
