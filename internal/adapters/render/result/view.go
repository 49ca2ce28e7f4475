package result

import (
	"fmt"

	"github.com/bnema/f5m/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	CheckMode bool
	// Title is printed above the outcomes when set.
	Title string
}

func renderView(outcomes []application.Outcome, opts RenderOptions, s styles) string {
	var lines []string
	if opts.Title != "" {
		lines = append(lines,
			s.title.Render(opts.Title),
			s.header.Render(summary(outcomes)),
		)
	}

	if len(outcomes) == 0 {
		lines = append(lines, s.empty.Render("No pool members to reconcile."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, outcome := range outcomes {
		lines = append(lines, renderOutcome(outcome, opts, s)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOutcome(outcome application.Outcome, opts RenderOptions, s styles) []string {
	verdict := s.unchanged.Render("unchanged")
	if outcome.Changed {
		verdict = s.changed.Render("changed")
	}

	head := fmt.Sprintf("%s %s %s: %s",
		s.member.Render(outcome.Pool),
		outcome.Member,
		outcome.State,
		verdict,
	)
	if opts.CheckMode {
		head += " " + s.checkMode.Render("(check mode)")
	}

	lines := []string{head}
	if deleted, ok := outcome.NodeDeleted(); ok {
		lines = append(lines, s.detail.Render("node deleted: "+yesNo(deleted)))
	}

	return lines
}

func summary(outcomes []application.Outcome) string {
	changed := 0
	for _, outcome := range outcomes {
		if outcome.Changed {
			changed++
		}
	}

	return fmt.Sprintf("members: %d, changed: %d", len(outcomes), changed)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
