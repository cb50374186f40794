package interview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/theme"
)

func (s *InterviewScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	if snap.Analysis == nil {
		return theme.Hint.Render("No analysis loaded.")
	}

	var b strings.Builder

	b.WriteString(s.renderSummary(snap))
	b.WriteString("\n\n")
	b.WriteString(s.renderQuestions(snap))
	b.WriteString("\n")

	if snap.Stage == session.StageEvaluating {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("%s Evaluating your answers...", spinnerFrames[s.spinnerFrame])))
	} else {
		b.WriteString(s.renderSubmitRow(snap))
	}

	if snap.ErrorMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorLine.Render("✗ " + snap.ErrorMessage))
	}

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

// renderSummary shows what the analyzer found before the questions begin.
func (s *InterviewScreen) renderSummary(snap session.Session) string {
	a := snap.Analysis

	var patterns []string
	for _, p := range a.Patterns {
		if p.Present {
			patterns = append(patterns, p.Name)
		}
	}
	patternLine := "none detected"
	if len(patterns) > 0 {
		patternLine = strings.Join(patterns, ", ")
	}

	gradeStyle := lipgloss.NewStyle().Foreground(theme.GradeColor(a.Quality.Grade)).Bold(true)

	lines := []string{
		theme.Title.Align(lipgloss.Left).Render(a.RepositoryURL),
		"",
		fmt.Sprintf("%s %s",
			theme.Hint.Render("Patterns:"),
			theme.Body.Render(patternLine)),
		fmt.Sprintf("%s %s %s",
			theme.Hint.Render("Algorithm:"),
			theme.Body.Render(a.Algorithm.Label),
			theme.Hint.Render(fmt.Sprintf("(%.0f%% via %s)", a.Algorithm.Confidence*100, a.Algorithm.DetectedBy))),
		fmt.Sprintf("%s %s %s",
			theme.Hint.Render("Quality:"),
			theme.Body.Render(fmt.Sprintf("%.1f/10", a.Quality.Score)),
			gradeStyle.Render("["+a.Quality.Grade+"]")),
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

// renderQuestions lists every question with its answered state, expanding
// the focused one into an editable input.
func (s *InterviewScreen) renderQuestions(snap session.Session) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(
		fmt.Sprintf("Questions (%d/%d answered)", snap.AnsweredCount(), snap.QuestionCount())))
	b.WriteString("\n\n")

	for i, q := range snap.Analysis.Questions {
		focused := i == s.qIndex && !s.onSubmitRow

		marker := theme.Unanswered.Render("○")
		if strings.TrimSpace(snap.Answers[q.ID]) != "" {
			marker = theme.Answered.Render("●")
		}

		diffStyle := lipgloss.NewStyle().Foreground(theme.DifficultyColor(string(q.Difficulty)))

		label := fmt.Sprintf("%d. %s", i+1, q.Text)
		if focused {
			label = theme.Selected.Render("> " + label)
		} else {
			label = theme.Unselected.Render("  " + label)
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, label, diffStyle.Render("["+string(q.Difficulty)+"]")))

		if focused {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(s.input.View()))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *InterviewScreen) renderSubmitRow(snap session.Session) string {
	label := fmt.Sprintf("Submit %d answers for evaluation", snap.AnsweredCount())
	if s.onSubmitRow {
		return theme.Selected.Render("> [ " + label + " ]")
	}
	return theme.Unselected.Render("  [ " + label + " ]")
}
