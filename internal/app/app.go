package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/router"
	"github.com/devgrill/repogrill/internal/screen"
	"github.com/devgrill/repogrill/internal/screens/home"
	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *session.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(ctrl *session.Controller) AppModel {
	return AppModel{
		ctrl:   ctrl,
		router: router.New(home.New(ctrl)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Leaving a pushed screen abandons the session; a half-answered
			// interview has no meaning back on the home screen.
			if m.router.Depth() > 1 {
				m.ctrl.Reset()
				return m, m.router.PopToRoot()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stage := m.ctrl.Snapshot().Stage.String()
	header := layout.RenderHeader(title, stage, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}
	if m.router.Depth() > 1 {
		footerHints = append([]layout.KeyHint{{Key: "Esc", Description: "Abandon session"}}, footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctrl *session.Controller) error {
	p := tea.NewProgram(newAppModel(ctrl))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
