package tui

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/monlor/scriptdex/internal/config"
)

// setupStep identifies the current step.
type setupStep int

const (
	stepRepo setupStep = iota
	stepBranch
	stepReadme
	stepAdvanced
	stepConfirm
)

// advancedField identifies a field in the advanced step.
type advancedField int

const (
	advIgnoreDirs advancedField = iota
	advSuffixes
	advFieldCount
)

// setupModel drives the multi-step configuration wizard.
type setupModel struct {
	step setupStep
	seed config.Config

	// Step 1: repository slug
	repoInput textinput.Model

	// Step 2: branch
	branchInput textinput.Model

	// Step 3: readme file name
	readmeInput textinput.Model

	// Step 4: advanced
	advCursor   advancedField
	ignoreInput textinput.Model
	suffixInput textinput.Model

	// Collected values
	selectedRepo   string
	selectedBranch string
	selectedReadme string

	width  int
	height int
}

// setupStyles
var (
	setupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	setupStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	setupActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	setupLabelStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	setupValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	setupDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func newSetupModel(seed config.Config) setupModel {
	ri := textinput.New()
	ri.Placeholder = "owner/scripts"
	ri.Focus()
	ri.CharLimit = 100
	ri.Width = 40
	ri.SetValue(seed.Repo)

	bi := textinput.New()
	bi.Placeholder = "main"
	bi.CharLimit = 100
	bi.Width = 40
	bi.SetValue(seed.Branch)

	rmi := textinput.New()
	rmi.Placeholder = "README.md"
	rmi.CharLimit = 100
	rmi.Width = 40
	rmi.SetValue(seed.Readme)

	ii := textinput.New()
	ii.Placeholder = "vendor, node_modules"
	ii.CharLimit = 256
	ii.Width = 60
	ii.SetValue(strings.Join(seed.IgnoreDirs, ", "))

	si := textinput.New()
	si.Placeholder = ".zsh, .fish"
	si.CharLimit = 256
	si.Width = 60
	si.SetValue(strings.Join(seed.ExtraSuffixes, ", "))

	return setupModel{
		step:        stepRepo,
		seed:        seed,
		repoInput:   ri,
		branchInput: bi,
		readmeInput: rmi,
		ignoreInput: ii,
		suffixInput: si,
	}
}

func (w *setupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, config, cmd).
// done=true with a non-nil config means the wizard completed successfully.
// done=true with a nil config means the wizard was cancelled.
func (w *setupModel) Update(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepRepo:
		return w.updateRepo(msg)
	case stepBranch:
		return w.updateBranch(msg)
	case stepReadme:
		return w.updateReadme(msg)
	case stepAdvanced:
		return w.updateAdvanced(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *setupModel) handleBack() (bool, *config.Config, tea.Cmd) {
	switch w.step {
	case stepRepo:
		// Esc at first step cancels the wizard
		return true, nil, nil
	case stepBranch:
		w.step = stepRepo
		w.branchInput.Blur()
		w.repoInput.Focus()
		return false, nil, textinput.Blink
	case stepReadme:
		w.step = stepBranch
		w.readmeInput.Blur()
		w.branchInput.Focus()
		return false, nil, textinput.Blink
	case stepAdvanced:
		w.step = stepReadme
		w.blurAdvancedInputs()
		w.readmeInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepReadme
		w.readmeInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *setupModel) updateRepo(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		repo := strings.TrimSpace(w.repoInput.Value())
		if config.ValidateRepoSlug(repo) != nil {
			return false, nil, nil
		}
		w.selectedRepo = repo
		w.step = stepBranch
		w.repoInput.Blur()
		w.branchInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.repoInput, cmd = w.repoInput.Update(msg)
	return false, nil, cmd
}

func (w *setupModel) updateBranch(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		branch := strings.TrimSpace(w.branchInput.Value())
		if branch == "" {
			return false, nil, nil
		}
		w.selectedBranch = branch
		w.step = stepReadme
		w.branchInput.Blur()
		w.readmeInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.branchInput, cmd = w.branchInput.Update(msg)
	return false, nil, cmd
}

func (w *setupModel) updateReadme(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			name := strings.TrimSpace(w.readmeInput.Value())
			if config.ValidateReadmeName(name) != nil {
				return false, nil, nil
			}
			w.selectedReadme = name
			w.step = stepConfirm
			w.readmeInput.Blur()
			return false, nil, nil
		case tea.KeyCtrlA:
			w.selectedReadme = strings.TrimSpace(w.readmeInput.Value())
			w.step = stepAdvanced
			w.readmeInput.Blur()
			return false, nil, w.focusCurrentField()
		}
	}

	var cmd tea.Cmd
	w.readmeInput, cmd = w.readmeInput.Update(msg)
	return false, nil, cmd
}

func (w *setupModel) activeInput() *textinput.Model {
	switch w.advCursor {
	case advIgnoreDirs:
		return &w.ignoreInput
	case advSuffixes:
		return &w.suffixInput
	}
	return nil
}

func (w *setupModel) blurAdvancedInputs() {
	w.ignoreInput.Blur()
	w.suffixInput.Blur()
}

func (w *setupModel) focusCurrentField() tea.Cmd {
	w.blurAdvancedInputs()
	if ti := w.activeInput(); ti != nil {
		ti.Focus()
		return textinput.Blink
	}
	return nil
}

func (w *setupModel) updateAdvanced(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			w.blurAdvancedInputs()
			w.step = stepConfirm
			return false, nil, nil
		case tea.KeyUp:
			w.advCursor = (w.advCursor - 1 + advFieldCount) % advFieldCount
			return false, nil, w.focusCurrentField()
		case tea.KeyDown:
			w.advCursor = (w.advCursor + 1) % advFieldCount
			return false, nil, w.focusCurrentField()
		case tea.KeyTab:
			w.advCursor = (w.advCursor + 1) % advFieldCount
			return false, nil, w.focusCurrentField()
		}
	}

	// Everything else is typed into the focused field
	if ti := w.activeInput(); ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return false, nil, cmd
	}
	return false, nil, nil
}

func (w *setupModel) updateConfirm(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, &config.Config{
				Repo:          w.selectedRepo,
				Branch:        w.selectedBranch,
				Readme:        w.selectedReadme,
				IgnoreDirs:    parseNameList(w.ignoreInput.Value()),
				ExtraSuffixes: parseSuffixList(w.suffixInput.Value()),
			}, nil
		case "n":
			// Restart the wizard from the seed values
			w.step = stepRepo
			w.repoInput.SetValue(w.seed.Repo)
			w.repoInput.Focus()
			w.branchInput.SetValue(w.seed.Branch)
			w.readmeInput.SetValue(w.seed.Readme)
			w.ignoreInput.SetValue(strings.Join(w.seed.IgnoreDirs, ", "))
			w.suffixInput.SetValue(strings.Join(w.seed.ExtraSuffixes, ", "))
			w.selectedRepo = ""
			w.selectedBranch = ""
			w.selectedReadme = ""
			w.advCursor = advIgnoreDirs
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *setupModel) View() string {
	var b strings.Builder

	b.WriteString(setupTitleStyle.Render("Scriptdex Setup"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepRepo:
		b.WriteString(setupLabelStyle.Render("Repository slug:"))
		b.WriteString("\n")
		b.WriteString(w.repoInput.View())
		b.WriteString("\n\n")
		b.WriteString(setupDimStyle.Render("GitHub owner/name the script links point at."))
	case stepBranch:
		b.WriteString(setupLabelStyle.Render("Branch:"))
		b.WriteString("\n")
		b.WriteString(w.branchInput.View())
		b.WriteString("\n\n")
		b.WriteString(setupDimStyle.Render("Branch used in the raw and blob URLs."))
	case stepReadme:
		b.WriteString(setupLabelStyle.Render("Readme file name:"))
		b.WriteString("\n")
		b.WriteString(w.readmeInput.View())
		b.WriteString("\n\n")
		b.WriteString(setupDimStyle.Render("Enter to confirm, Ctrl+A for extra options."))
	case stepAdvanced:
		b.WriteString(setupLabelStyle.Render("Extra options:"))
		b.WriteString("\n\n")
		b.WriteString(w.renderField(advIgnoreDirs, "Ignored dirs", "Directories excluded from the catalog, comma separated", &w.ignoreInput))
		b.WriteString("\n")
		b.WriteString(w.renderField(advSuffixes, "Extra suffixes", "Additional script extensions, comma separated", &w.suffixInput))
		b.WriteString("\n\n")
		b.WriteString(setupDimStyle.Render("Type to edit, Tab to switch, Enter to continue, Esc to go back."))
	case stepConfirm:
		b.WriteString(setupLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Repo:   %s\n", setupValueStyle.Render(w.selectedRepo)))
		b.WriteString(fmt.Sprintf("  Branch: %s\n", setupValueStyle.Render(w.selectedBranch)))
		b.WriteString(fmt.Sprintf("  Readme: %s\n", setupValueStyle.Render(w.selectedReadme)))
		if dirs := parseNameList(w.ignoreInput.Value()); len(dirs) > 0 {
			b.WriteString(fmt.Sprintf("  Ignore: %s\n", setupValueStyle.Render(strings.Join(dirs, ", "))))
		}
		if exts := parseSuffixList(w.suffixInput.Value()); len(exts) > 0 {
			b.WriteString(fmt.Sprintf("  Extra:  %s\n", setupValueStyle.Render(strings.Join(exts, ", "))))
		}
		b.WriteString("\n")
		b.WriteString(setupDimStyle.Render("Enter to write scriptdex.toml, n to start over, Esc to go back."))
	}

	return b.String()
}

func (w *setupModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Repository"},
		{2, "Branch"},
		{3, "Readme"},
		{4, "Confirm"},
	}

	currentStep := int(w.step) + 1
	switch w.step {
	case stepAdvanced:
		// The advanced screen belongs to the readme step
		currentStep = int(stepReadme) + 1
	case stepConfirm:
		currentStep = len(steps)
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == currentStep {
			parts = append(parts, setupActiveStepStyle.Render(label))
		} else {
			parts = append(parts, setupStepStyle.Render(label))
		}
	}

	return strings.Join(parts, setupDimStyle.Render(" > "))
}

func (w *setupModel) renderField(field advancedField, name, desc string, ti *textinput.Model) string {
	cursor := " "
	if w.advCursor == field {
		cursor = ">"
	}

	if w.advCursor == field {
		line := fmt.Sprintf("  %s %s: %s", cursor, name, ti.View())
		return selectedStyle.Render(line) + "\n" + setupDimStyle.Render("      "+desc)
	}

	val := strings.TrimSpace(ti.Value())
	if val == "" {
		val = "(not set)"
	}
	line := fmt.Sprintf("  %s %s: %s", cursor, name, val)
	return line + "\n" + setupDimStyle.Render("      "+desc)
}

// parseNameList splits a comma-separated list, dropping empty entries.
func parseNameList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// parseSuffixList splits a comma-separated extension list. Entries get their
// leading dot added when missing, so both "zsh" and ".zsh" are accepted.
func parseSuffixList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "." {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		out = append(out, part)
	}
	return out
}

// slugSanitizeRegex matches characters not valid in a repository name.
var slugSanitizeRegex = regexp.MustCompile(`[^a-z0-9_.-]`)

// SuggestRepoSlug proposes an owner/name slug for a repository root: the
// default owner plus a sanitized form of the root's directory name.
func SuggestRepoSlug(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	name := strings.ToLower(filepath.Base(abs))
	name = slugSanitizeRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")

	if name == "" {
		name = "scripts"
	}
	if len(name) > 100 {
		name = strings.TrimRight(name[:100], "-.")
	}

	owner, _, _ := strings.Cut(config.DefaultRepo, "/")
	return owner + "/" + name
}

// setupProgram adapts setupModel to the tea.Model interface.
type setupProgram struct {
	model  setupModel
	result *config.Config
}

func (p *setupProgram) Init() tea.Cmd {
	return p.model.Init()
}

func (p *setupProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		p.model.width = sizeMsg.Width
		p.model.height = sizeMsg.Height
	}

	done, cfg, cmd := p.model.Update(msg)
	if done {
		p.result = cfg
		return p, tea.Quit
	}
	return p, cmd
}

func (p *setupProgram) View() string {
	return p.model.View()
}

// RunSetup walks through the configuration wizard and returns the resulting
// config. A nil config with a nil error means the wizard was cancelled.
func RunSetup(seed config.Config) (*config.Config, error) {
	prog := &setupProgram{model: newSetupModel(seed)}

	p := tea.NewProgram(prog, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	if sp, ok := final.(*setupProgram); ok {
		return sp.result, nil
	}
	return nil, nil
}
