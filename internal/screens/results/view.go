package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/ui/components"
	"github.com/devgrill/repogrill/internal/ui/theme"
)

const barWidth = 56

func (s *ResultsScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	if snap.Results == nil {
		return theme.Hint.Render("No results available.")
	}
	r := snap.Results

	var lines []string

	gradeStyle := lipgloss.NewStyle().Foreground(theme.GradeColor(r.Grade)).Bold(true)
	lines = append(lines,
		theme.Title.Align(lipgloss.Left).Render(fmt.Sprintf("Final Score: %.1f/10", r.FinalScore))+
			"  "+gradeStyle.Render("Grade "+r.Grade),
		"",
		components.NewScoreBar("Code Quality", r.ComponentScores.CodeQuality, barWidth).View(),
		components.NewScoreBar("Algorithm", r.ComponentScores.AlgorithmCorrectness, barWidth).View(),
		components.NewScoreBar("Answers", r.ComponentScores.AnswerEvaluation, barWidth).View(),
		"",
	)

	if len(r.AnswerScores) > 0 {
		lines = append(lines, theme.Subtitle.Align(lipgloss.Left).Render("Answer breakdown"), "")
		for i, a := range r.AnswerScores {
			lines = append(lines,
				theme.Body.Render(fmt.Sprintf("%d. %s", i+1, a.QuestionText)),
				theme.Hint.Render(fmt.Sprintf("   %.1f/%.1f marks · %.0f%% similarity",
					a.MarksObtained, a.MaxMarks, a.Similarity*100)),
			)
			if a.Feedback != "" {
				lines = append(lines, theme.Hint.Render("   "+a.Feedback))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, renderList("Strengths", r.Strengths, theme.Answered)...)
	lines = append(lines, renderList("Areas to improve", r.Improvements, theme.ErrorLine)...)
	lines = append(lines, renderList("Overall feedback", r.Feedback, theme.Body)...)

	// Simple line scrolling; the breakdown can outgrow small terminals.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	offset := s.scroll
	if offset > maxScroll {
		offset = maxScroll
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	content := lipgloss.NewStyle().Padding(1, 4).Render(strings.Join(lines[offset:end], "\n"))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

func renderList(title string, items []string, style lipgloss.Style) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{theme.Subtitle.Align(lipgloss.Left).Render(title), ""}
	for _, item := range items {
		out = append(out, style.Render("• "+item))
	}
	out = append(out, "")
	return out
}
