package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/theme"
)

const banner = ` ___ ___ ___  ___   ___ ___ ___ _    _
| _ \ __| _ \/ _ \ / __| _ \_ _| |  | |
|   / _||  _/ (_) | (_ |   /| || |__| |__
|_|_\___|_|  \___/ \___|_|_\___|____|____|`

func (s *HomeScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(banner))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Width(width).
		Render("Submit a GitHub repository and get grilled on its design."))
	b.WriteString("\n\n\n")

	if snap.Stage == session.StageAnalyzing {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(spinnerFrames[s.spinnerFrame] + "  Analyzing " + snap.RepositoryURL + " ..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Repository URL: " + s.input.View()))
	b.WriteString("\n\n")

	if snap.ErrorMessage != "" {
		b.WriteString(theme.ErrorLine.Width(width).Align(lipgloss.Center).
			Render("✗ " + snap.ErrorMessage))
		b.WriteString("\n")
	}

	return b.String()
}
