package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/rackline/internal/allocate"
	"github.com/firefly-engineering/rackline/internal/config"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepCapacities wizardStep = iota
	stepLevels
	stepPrefix
	stepFormat
	stepConfirm
)

// defaultCapacity prefills each capacity input.
const defaultCapacity = "10"

// defaultLevels prefills the level input.
const defaultLevels = "A, B, C, D"

// wizardModel drives the multi-step rack setup wizard.
type wizardModel struct {
	step wizardStep
	bins []allocate.BinCount

	// Step 1: per-type capacities
	capInputs []textinput.Model
	capCursor int

	// Step 2: levels
	levelsInput textinput.Model

	// Step 3: prefix
	prefixInput textinput.Model

	// Step 4: label format
	formatList list.Model

	// Collected values
	selectedLevels []string
	selectedFormat string

	width  int
	height int
}

// formatItem implements list.Item for label format selection.
type formatItem struct {
	format string
	label  string
	desc   string
}

func (f formatItem) Title() string       { return f.label }
func (f formatItem) Description() string { return f.desc }
func (f formatItem) FilterValue() string { return f.label }

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

func newWizardModel(bins []allocate.BinCount) wizardModel {
	capInputs := make([]textinput.Model, len(bins))
	for i := range bins {
		ci := textinput.New()
		ci.Placeholder = defaultCapacity
		ci.SetValue(defaultCapacity)
		ci.CharLimit = 4
		ci.Width = 8
		capInputs[i] = ci
	}
	if len(capInputs) > 0 {
		capInputs[0].Focus()
	}

	li := textinput.New()
	li.Placeholder = defaultLevels
	li.SetValue(defaultLevels)
	li.CharLimit = 64
	li.Width = 40

	pi := textinput.New()
	pi.Placeholder = config.DefaultPrefix
	pi.SetValue(config.DefaultPrefix)
	pi.CharLimit = 16
	pi.Width = 20

	return wizardModel{
		step:        stepCapacities,
		bins:        bins,
		capInputs:   capInputs,
		levelsInput: li,
		prefixInput: pi,
		formatList:  newFormatList(),
	}
}

func newFormatList() list.Model {
	items := []list.Item{
		formatItem{format: config.FormatSingle, label: "Single Part", desc: "One part per label, large type"},
		formatItem{format: config.FormatMulti, label: "Multiple Parts", desc: "Two parts per label, compact"},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 10)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, config, cmd).
// done=true with a non-nil config means the wizard completed successfully.
// done=true with a nil config means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepCapacities:
		return w.updateCapacities(msg)
	case stepLevels:
		return w.updateLevels(msg)
	case stepPrefix:
		return w.updatePrefix(msg)
	case stepFormat:
		return w.updateFormat(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *config.Config, tea.Cmd) {
	switch w.step {
	case stepCapacities:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepLevels:
		w.step = stepCapacities
		w.levelsInput.Blur()
		return false, nil, w.focusCapacity(w.capCursor)
	case stepPrefix:
		w.step = stepLevels
		w.prefixInput.Blur()
		w.levelsInput.Focus()
		return false, nil, textinput.Blink
	case stepFormat:
		w.step = stepPrefix
		w.prefixInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepFormat
		return false, nil, nil
	}
	return false, nil, nil
}

func (w *wizardModel) blurAllCapacities() {
	for i := range w.capInputs {
		w.capInputs[i].Blur()
	}
}

func (w *wizardModel) focusCapacity(i int) tea.Cmd {
	w.blurAllCapacities()
	if i >= 0 && i < len(w.capInputs) {
		w.capCursor = i
		w.capInputs[i].Focus()
		return textinput.Blink
	}
	return nil
}

// firstInvalidCapacity returns the index of the first capacity input that
// does not hold a positive number, or -1 when all are valid.
func (w *wizardModel) firstInvalidCapacity() int {
	for i := range w.capInputs {
		if _, ok := parseCapacity(w.capInputs[i].Value()); !ok {
			return i
		}
	}
	return -1
}

func (w *wizardModel) updateCapacities(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if len(w.capInputs) == 0 {
		w.step = stepLevels
		w.levelsInput.Focus()
		return false, nil, textinput.Blink
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			if _, ok := parseCapacity(w.capInputs[w.capCursor].Value()); !ok {
				return false, nil, nil
			}
			if w.capCursor < len(w.capInputs)-1 {
				return false, nil, w.focusCapacity(w.capCursor + 1)
			}
			if bad := w.firstInvalidCapacity(); bad >= 0 {
				return false, nil, w.focusCapacity(bad)
			}
			w.blurAllCapacities()
			w.step = stepLevels
			w.levelsInput.Focus()
			return false, nil, textinput.Blink
		case tea.KeyUp, tea.KeyShiftTab:
			next := (w.capCursor - 1 + len(w.capInputs)) % len(w.capInputs)
			return false, nil, w.focusCapacity(next)
		case tea.KeyDown, tea.KeyTab:
			next := (w.capCursor + 1) % len(w.capInputs)
			return false, nil, w.focusCapacity(next)
		}
	}

	var cmd tea.Cmd
	w.capInputs[w.capCursor], cmd = w.capInputs[w.capCursor].Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateLevels(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		levels := parseLevels(w.levelsInput.Value())
		if levels == nil {
			return false, nil, nil
		}
		w.selectedLevels = levels
		w.step = stepPrefix
		w.levelsInput.Blur()
		w.prefixInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.levelsInput, cmd = w.levelsInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updatePrefix(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if strings.TrimSpace(w.prefixInput.Value()) == "" {
			return false, nil, nil
		}
		w.step = stepFormat
		w.prefixInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.prefixInput, cmd = w.prefixInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateFormat(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if item, ok := w.formatList.SelectedItem().(formatItem); ok {
			w.selectedFormat = item.format
			w.step = stepConfirm
		}
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.formatList, cmd = w.formatList.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, w.buildConfig(), nil
		case "n":
			// Restart wizard
			w.step = stepCapacities
			for i := range w.capInputs {
				w.capInputs[i].SetValue(defaultCapacity)
			}
			w.levelsInput.SetValue(defaultLevels)
			w.prefixInput.SetValue(config.DefaultPrefix)
			w.formatList.Select(0)
			w.selectedLevels = nil
			w.selectedFormat = ""
			return false, nil, w.focusCapacity(0)
		}
	}
	return false, nil, nil
}

// buildConfig assembles the rack configuration from the collected answers.
// Each detected container type gets its own numbered rack, in detection
// order, so digits stay unique.
func (w *wizardModel) buildConfig() *config.Config {
	cfg := config.Default()
	cfg.Prefix = strings.TrimSpace(w.prefixInput.Value())
	cfg.Labels.Format = w.selectedFormat

	for i, bin := range w.bins {
		perLevel, _ := parseCapacity(w.capInputs[i].Value())
		cfg.Racks = append(cfg.Racks, config.RackConfig{
			Name:     fmt.Sprintf("Rack %02d", i+1),
			Levels:   append([]string(nil), w.selectedLevels...),
			Capacity: map[string]int{bin.Type: perLevel},
		})
	}

	return cfg
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Rack Setup"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepCapacities:
		b.WriteString(wizardLabelStyle.Render("Bins per level:"))
		b.WriteString("\n")
		for i := range w.bins {
			b.WriteString(w.renderCapacity(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("How many bins of each type fit on one level. Enter to accept, Tab to jump."))
	case stepLevels:
		b.WriteString(wizardLabelStyle.Render("Rack levels:"))
		b.WriteString("\n")
		b.WriteString(w.levelsInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Comma-separated level names in fill order."))
	case stepPrefix:
		b.WriteString(wizardLabelStyle.Render("Rack name prefix:"))
		b.WriteString("\n")
		b.WriteString(w.prefixInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Printed on every label, e.g. TR."))
	case stepFormat:
		b.WriteString(wizardLabelStyle.Render("Label format:"))
		b.WriteString("\n")
		b.WriteString(w.formatList.View())
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Prefix: %s\n", wizardValueStyle.Render(strings.TrimSpace(w.prefixInput.Value()))))
		b.WriteString(fmt.Sprintf("  Levels: %s\n", wizardValueStyle.Render(strings.Join(w.selectedLevels, ", "))))
		b.WriteString(fmt.Sprintf("  Format: %s\n", wizardValueStyle.Render(w.selectedFormat)))
		b.WriteString("  Racks:\n")
		for i, bin := range w.bins {
			perLevel, _ := parseCapacity(w.capInputs[i].Value())
			line := fmt.Sprintf("    Rack %02d  %s  %d per level", i+1, bin.Type, perLevel)
			b.WriteString(wizardValueStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to write the config, n to start over, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Capacities"},
		{2, "Levels"},
		{3, "Prefix"},
		{4, "Format"},
		{5, "Confirm"},
	}

	currentStep := int(w.step) + 1

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == currentStep {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func (w *wizardModel) renderCapacity(i int) string {
	bin := w.bins[i]
	cursor := " "
	if w.capCursor == i {
		cursor = ">"
	}

	if w.capCursor == i {
		line := fmt.Sprintf("  %s %s (%d items): %s", cursor, bin.Type, bin.Count, w.capInputs[i].View())
		return selectedStyle.Render(line)
	}
	return fmt.Sprintf("  %s %s (%d items): %s", cursor, bin.Type, bin.Count, strings.TrimSpace(w.capInputs[i].Value()))
}

// parseCapacity reads a per-level capacity. Capacities below one are
// rejected, matching the smallest level a bin type can occupy.
func parseCapacity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// parseLevels splits a comma or space separated list of level names.
// Returns nil when the list is empty or contains duplicates.
func parseLevels(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	seen := make(map[string]bool, len(fields))
	levels := make([]string, 0, len(fields))
	for _, f := range fields {
		if seen[f] {
			return nil
		}
		seen[f] = true
		levels = append(levels, f)
	}

	if len(levels) == 0 {
		return nil
	}
	return levels
}
