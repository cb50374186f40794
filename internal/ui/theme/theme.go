package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — restrained, code-review feel
var (
	Primary   = lipgloss.Color("#F97316") // Ember Orange
	Secondary = lipgloss.Color("#38BDF8") // Sky Blue
	Accent    = lipgloss.Color("#FACC15") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0C0A09") // Near Black
	BgCard    = lipgloss.Color("#1C1917") // Warm Charcoal
	Border    = lipgloss.Color("#44403C") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorLine = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Answered = lipgloss.NewStyle().
			Foreground(Success)

	Unanswered = lipgloss.NewStyle().
			Foreground(TextDim)
)

// GradeColor maps a letter grade to its display color.
func GradeColor(grade string) color.Color {
	switch grade {
	case "A":
		return Success
	case "B":
		return Secondary
	case "C":
		return Accent
	case "D":
		return Primary
	default:
		return Error
	}
}

// DifficultyColor maps a question difficulty to its display color.
func DifficultyColor(difficulty string) color.Color {
	switch difficulty {
	case "easy":
		return Success
	case "medium":
		return Accent
	default:
		return Error
	}
}
