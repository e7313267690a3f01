package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/rackline/internal/allocate"
	"github.com/firefly-engineering/rackline/internal/config"
)

// Model is the bubbletea model for the setup wizard.
type Model struct {
	wizard   *wizardModel
	result   *config.Config
	quitting bool
}

// NewSetup creates a setup wizard over the detected container types.
func NewSetup(bins []allocate.BinCount) *Model {
	w := newWizardModel(bins)
	return &Model{wizard: &w}
}

func (m *Model) Init() tea.Cmd {
	return m.wizard.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.wizard.width = size.Width
		m.wizard.height = size.Height
		return m, nil
	}

	done, cfg, cmd := m.wizard.Update(msg)
	if done {
		m.result = cfg
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.wizard.View()
}

// Result returns the collected configuration, or nil if the wizard was
// cancelled.
func (m *Model) Result() *config.Config {
	return m.result
}

// RunSetup runs the interactive setup wizard. A nil configuration with a
// nil error means the user cancelled.
func RunSetup(bins []allocate.BinCount) (*config.Config, error) {
	m := NewSetup(bins)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(*Model).Result(), nil
}
