package home

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devgrill/repogrill/internal/router"
	"github.com/devgrill/repogrill/internal/screen"
	"github.com/devgrill/repogrill/internal/screens/interview"
	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/components"
	"github.com/devgrill/repogrill/internal/ui/layout"
)

// analyzeDoneMsg is sent when the analyze round trip settles.
type analyzeDoneMsg struct {
	Err error
}

// spinnerTickMsg animates the progress indicator while Analyzing.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// HomeScreen is the repository entry screen, the root of the stack.
type HomeScreen struct {
	ctrl         *session.Controller
	input        components.TextInput
	spinnerFrame int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctrl *session.Controller) *HomeScreen {
	return &HomeScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("https://github.com/owner/repo", 200),
	}
}

// Init resets the URL input. The router re-runs Init after a session
// reset unwinds the stack, so a fresh session always starts blank.
func (s *HomeScreen) Init() tea.Cmd {
	s.input = components.NewTextInput("https://github.com/owner/repo", 200)
	s.spinnerFrame = 0
	return s.input.Init()
}

func (s *HomeScreen) Title() string {
	return "Submit Repository"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Snapshot().Stage == session.StageAnalyzing {
		return nil
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzeDoneMsg:
		return s.handleAnalyzeDone(msg)

	case spinnerTickMsg:
		if s.ctrl.Snapshot().Stage == session.StageAnalyzing {
			s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// The stage guard, not the key handler, is what prevents a second
	// in-flight analysis; ignoring keys here just avoids visual noise.
	if s.ctrl.Snapshot().Stage == session.StageAnalyzing {
		return s, nil
	}

	if msg.String() == "enter" {
		return s.submit()
	}

	// Editing the URL withdraws any previous validation verdict.
	s.input.ClearInvalid()

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *HomeScreen) submit() (screen.Screen, tea.Cmd) {
	url := s.input.Value()
	ctrl := s.ctrl

	return s, tea.Batch(
		func() tea.Msg {
			return analyzeDoneMsg{Err: ctrl.SubmitRepository(context.Background(), url)}
		},
		spinnerTick(),
	)
}

func (s *HomeScreen) handleAnalyzeDone(msg analyzeDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The error message lives in the session snapshot; View shows it.
		// A rejected URL additionally flags the input itself.
		var vErr *session.ValidationError
		if errors.As(msg.Err, &vErr) {
			s.input.MarkInvalid(vErr.Message)
		}
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: interview.New(s.ctrl)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
