package result

import (
	"errors"
	"io"

	"github.com/bnema/f5m/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	outcomes []application.Outcome
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(outcomes []application.Outcome, opts RenderOptions) model {
	return model{
		outcomes: outcomes,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.outcomes, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out reconcile outcomes for a terminal.
func Render(outcomes []application.Outcome, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(outcomes, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
