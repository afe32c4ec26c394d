package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/escriba/internal/diff"
	"github.com/abhisek/escriba/internal/ui/theme"
)

var (
	diffRemoved = lipgloss.NewStyle().Foreground(theme.Error).Strikethrough(true)
	diffAdded   = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	diffLabel   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// RenderDiff renders both sides of an answer/model diff: the learner's
// line with changed tokens struck out, the model line with changed
// tokens highlighted.
func RenderDiff(r diff.Result) string {
	yours := diff.Render(r.Answer, markWith(diffRemoved))
	model := diff.Render(r.Model, markWith(diffAdded))

	out := diffLabel.Render("tú:     ") + yours
	if model != "" {
		out += "\n" + diffLabel.Render("modelo: ") + model
	}
	return out
}

// markWith adapts a style to the single-token signature diff.Render wants.
func markWith(s lipgloss.Style) func(string) string {
	return func(tok string) string { return s.Render(tok) }
}
