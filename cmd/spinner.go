package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const reconcileSpinnerLabel = "Reconciling pool member..."

type reconcileDoneMsg struct {
	err error
}

type reconcileSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

func newReconcileSpinnerModel(label string, work tea.Cmd) reconcileSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return reconcileSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m reconcileSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m reconcileSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case reconcileDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m reconcileSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runReconcileSpinner runs work directly unless human output goes to an
// interactive stderr, in which case a spinner is drawn while it runs.
func runReconcileSpinner(cmd *cobra.Command, app *app, opts outputOptions, work func(context.Context) error) error {
	stderr := cmd.ErrOrStderr()
	if opts.asJSON || opts.verbose || !app.isTerminal(stderr) {
		return work(cmd.Context())
	}

	return runSpinner(cmd.Context(), stderr, reconcileSpinnerLabel, work)
}

func runSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return reconcileDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newReconcileSpinnerModel(label, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(reconcileSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
