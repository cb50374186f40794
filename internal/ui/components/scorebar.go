package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/ui/theme"
)

// ScoreBar displays a labeled horizontal bar for a score on the 0-10 scale.
type ScoreBar struct {
	Label string
	Score float64
	Width int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, score float64, width int) ScoreBar {
	return ScoreBar{Label: label, Score: score, Width: width}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Width(22).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	scoreWidth := 7 // "  10.0"

	barWidth := s.Width - labelWidth - scoreWidth
	if barWidth < 4 {
		barWidth = 4
	}

	frac := s.Score / 10
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(s.color()).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %4.1f", s.Score))

	return result
}

func (s ScoreBar) color() color.Color {
	switch {
	case s.Score >= 8:
		return theme.Success
	case s.Score >= 6:
		return theme.Secondary
	case s.Score >= 4:
		return theme.Accent
	default:
		return theme.Error
	}
}
