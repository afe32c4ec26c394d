package session

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/escriba/internal/drill"
	"github.com/abhisek/escriba/internal/progress"
	"github.com/abhisek/escriba/internal/ui/components"
	"github.com/abhisek/escriba/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	switch s.phase {
	case phaseAnswer:
		return s.renderAnswerView(width)
	case phaseGrading:
		return centeredDim(width, "\n\n\n  Corrigiendo tus respuestas...")
	case phaseResults:
		return s.renderResults(width)
	case phaseDrill:
		return s.renderDrill(width)
	case phaseDone:
		return s.renderDone(width)
	}
	return centeredDim(width, "\n\n\n  Preparando la ronda...")
}

func (s *SessionScreen) renderAnswerView(width int) string {
	p := s.prompts[s.idx]

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Frase %d de %d", s.idx+1, len(s.prompts)))
	bar := components.NewProgressBar("", float64(s.idx)/float64(len(s.prompts)), false, 20).View()
	gap := width - lipgloss.Width(counter) - lipgloss.Width(bar) - 4
	if gap > 0 {
		counter += strings.Repeat(" ", gap) + bar
	}
	b.WriteString(counter)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(p.Text)
	b.WriteString(question)
	b.WriteString("\n\n")

	if len(p.Chips) > 0 {
		chips := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("palabras: " + strings.Join(p.Chips, " · "))
		b.WriteString(chips)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func (s *SessionScreen) renderResults(width int) string {
	res := s.result

	var b strings.Builder
	b.WriteString("\n")

	headline := fmt.Sprintf("Puntos: %d   %s   %d de %d bien",
		res.Score, starString(progress.StarsFor(res.Wrong)), len(res.Items)-res.Wrong, len(res.Items))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(headline))
	b.WriteString("\n")

	if res.UsedFallback {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("(corrección local)"))
		b.WriteString("\n")
	}

	if res.Wrong > 0 {
		focus := fmt.Sprintf("Enfoque de hoy: %s", res.Focus.Label)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(focus))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, it := range res.Items {
		if it.OK {
			line := lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ") +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(truncate(it.Answer, width-6))
			b.WriteString("  " + line + "\n")
			continue
		}
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ ") +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(truncate(it.Prompt.Text, width-6)) + "\n")
		diffBlock := components.RenderDiff(it.Diff)
		for _, line := range strings.Split(diffBlock, "\n") {
			b.WriteString("    " + line + "\n")
		}
		if it.Why != "" {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(truncate(it.Why, width-8)) + "\n")
		}
		if it.Tip != "" {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.Secondary).Render(truncate(it.Tip, width-8)) + "\n")
		}
	}

	b.WriteString("\n")
	next := "Pulsa Enter para continuar"
	if s.engine != nil {
		next = "Pulsa Enter para practicar"
	}
	b.WriteString(centeredDim(width, next))

	return b.String()
}

var kindLabels = map[drill.Kind]string{
	drill.KindSpelling:  "Ortografía",
	drill.KindVerb:      "Formas verbales",
	drill.KindGender:    "Artículos y género",
	drill.KindOrder:     "Orden de palabras",
	drill.KindBe:        "Ser y estar",
	drill.KindConnector: "Conectores",
	drill.KindDetail:    "Frases completas",
	drill.KindUpgrade:   "Mejora tu frase",
}

func (s *SessionScreen) renderDrill(width int) string {
	var b strings.Builder

	label := kindLabels[s.gate.Kind]
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + label)
	dots := components.StreakDots(s.gate.Stats.Streak, s.gate.Target)
	gap := width - lipgloss.Width(header) - lipgloss.Width(dots) - 4
	if gap > 0 {
		header += strings.Repeat(" ", gap) + dots
	}
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.question == nil {
		return b.String()
	}

	if s.question.Variant == drill.VariantChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(s.question.Prompt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.drillInput.View()))
	}

	if s.inFeedback {
		fg := theme.Error
		if s.feedbackOK {
			fg = theme.Success
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(fg).
			Bold(true).
			Render(s.feedback))
	}

	return b.String()
}

func (s *SessionScreen) renderDone(width int) string {
	res := s.result
	out := s.outcome

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Ronda terminada — %d puntos  %s", res.Score, starString(out.Stars))))
	b.WriteString("\n\n")

	if out.NewBest {
		b.WriteString(centeredStyled(width, theme.Accent, "¡Nuevo récord personal!"))
		b.WriteString("\n")
	}

	switch {
	case out.Advanced:
		b.WriteString(centeredStyled(width, theme.Success, fmt.Sprintf("¡Nivel %d desbloqueado!", s.deps.State.Level)))
	case out.RetryRound:
		b.WriteString(centeredStyled(width, theme.Primary, "Repite la ronda para avanzar."))
	default:
		b.WriteString(centeredStyled(width, theme.Text, "Buen trabajo. Sigue practicando."))
	}
	b.WriteString("\n\n")

	prompt := "Pulsa Enter para volver"
	if out.RetryRound {
		prompt = "Pulsa Enter para repetir la ronda"
	}
	b.WriteString(centeredDim(width, prompt))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centeredStyled(width, theme.Text, "¿Terminar la sesión?"))
	b.WriteString("\n")
	b.WriteString(centeredDim(width, "Tu progreso queda guardado."))
	b.WriteString("\n\n")
	b.WriteString(centeredStyled(width, theme.Success, "[Y] Sí, salir"))
	b.WriteString("\n")
	b.WriteString(centeredStyled(width, theme.Primary, "[N] No, seguir"))
	return b.String()
}

func (s *SessionScreen) renderError(width int) string {
	hint := "Pulsa cualquier tecla para volver."
	if s.errRetry {
		hint = "Pulsa Enter para intentarlo de nuevo."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  %s", s.errMsg, hint))
}

func starString(stars int) string {
	if stars <= 0 {
		return "—"
	}
	return strings.TrimSpace(strings.Repeat("★ ", stars))
}

func centeredDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func centeredStyled(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

func truncate(s string, n int) string {
	if n < 4 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
