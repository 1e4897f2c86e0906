// Package tui provides terminal user interface components for scriptdex.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces: the script picker behind the pick command and the setup wizard
// behind the init command.
//
// # Script Picker
//
// The picker displays every catalogued script and allows selection:
//
//	result, err := tui.RunPicker(categories)
//	switch result.Action {
//	case tui.ActionSelect:
//	    // Print the remote command for result.Script
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - Lists all scripts as category/name with executor, OS list, and summary
//   - Keyboard navigation (j/k or arrows)
//   - Fuzzy filtering with /
//   - Quick actions: Enter (print command), q (quit)
//
// SimplePicker renders the same listing as plain text for non-interactive
// terminals.
//
// # Setup Wizard
//
// The wizard walks through the generator settings step by step and returns
// a validated configuration:
//
//	cfg, err := tui.RunSetup(seed)
//	if cfg != nil {
//	    // Write cfg to scriptdex.toml
//	}
//
// A nil config means the wizard was cancelled with Esc or Ctrl+C.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
