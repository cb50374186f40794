package results

import (
	tea "charm.land/bubbletea/v2"

	"github.com/devgrill/repogrill/internal/router"
	"github.com/devgrill/repogrill/internal/screen"
	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/layout"
)

// ResultsScreen shows the final assessment once evaluation completes.
type ResultsScreen struct {
	ctrl   *session.Controller
	scroll int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for the evaluated session.
func New(ctrl *session.Controller) *ResultsScreen {
	return &ResultsScreen{ctrl: ctrl}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "New session"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "r", "enter":
		s.ctrl.Reset()
		return s, func() tea.Msg { return router.PopToRootMsg{} }

	case "up":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down":
		s.scroll++
	}

	return s, nil
}
