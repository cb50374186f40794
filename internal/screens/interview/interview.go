package interview

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devgrill/repogrill/internal/router"
	"github.com/devgrill/repogrill/internal/screen"
	"github.com/devgrill/repogrill/internal/screens/results"
	"github.com/devgrill/repogrill/internal/session"
	"github.com/devgrill/repogrill/internal/ui/components"
	"github.com/devgrill/repogrill/internal/ui/layout"
)

// evaluateDoneMsg is sent when the evaluate round trip settles.
type evaluateDoneMsg struct {
	Err error
}

// spinnerTickMsg animates the progress indicator while Evaluating.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// InterviewScreen shows the analysis summary and lets the user work
// through the generated questions. It is pushed once the session reaches
// Analyzed and stays active through evaluate failures, so in-progress
// answers are never lost to a flaky backend.
type InterviewScreen struct {
	ctrl         *session.Controller
	input        components.TextInput
	qIndex       int
	onSubmitRow  bool
	spinnerFrame int
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates the interview screen for the current analysis.
func New(ctrl *session.Controller) *InterviewScreen {
	return &InterviewScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("Type your answer...", 0),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	s.loadAnswer()
	return s.input.Init()
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.Snapshot().Stage == session.StageEvaluating {
		return nil
	}
	if s.onSubmitRow {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit answers"},
			{Key: "Tab", Description: "Back to questions"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Switch question"},
		{Key: "Tab", Description: "Submit row"},
		{Key: "Ctrl+R", Description: "Reset"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluateDoneMsg:
		return s.handleEvaluateDone(msg)

	case spinnerTickMsg:
		if s.ctrl.Snapshot().Stage == session.StageEvaluating {
			s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()
	if snap.Stage == session.StageEvaluating {
		return s, nil
	}

	switch msg.String() {
	case "ctrl+r":
		s.ctrl.Reset()
		return s, func() tea.Msg { return router.PopToRootMsg{} }

	case "tab":
		s.saveAnswer()
		s.onSubmitRow = !s.onSubmitRow
		return s, nil

	case "up":
		if !s.onSubmitRow && s.qIndex > 0 {
			s.saveAnswer()
			s.qIndex--
			s.loadAnswer()
		}
		return s, nil

	case "down":
		if !s.onSubmitRow && s.qIndex < snap.QuestionCount()-1 {
			s.saveAnswer()
			s.qIndex++
			s.loadAnswer()
		}
		return s, nil

	case "enter":
		if s.onSubmitRow {
			return s.submit()
		}
		// Enter on a question advances, wrapping onto the submit row.
		s.saveAnswer()
		if s.qIndex < snap.QuestionCount()-1 {
			s.qIndex++
			s.loadAnswer()
		} else {
			s.onSubmitRow = true
		}
		return s, nil
	}

	if s.onSubmitRow {
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.saveAnswer()
	return s, cmd
}

func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	s.saveAnswer()
	ctrl := s.ctrl

	return s, tea.Batch(
		func() tea.Msg {
			return evaluateDoneMsg{Err: ctrl.SubmitAnswers(context.Background())}
		},
		spinnerTick(),
	)
}

func (s *InterviewScreen) handleEvaluateDone(msg evaluateDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Back on the questions; the snapshot carries the error message
		// and the answers survived the failure.
		s.onSubmitRow = false
		s.loadAnswer()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(s.ctrl)}
	}
}

// currentQuestionID returns the ID of the focused question, or "".
func (s *InterviewScreen) currentQuestionID() string {
	snap := s.ctrl.Snapshot()
	if snap.Analysis == nil || s.qIndex >= len(snap.Analysis.Questions) {
		return ""
	}
	return snap.Analysis.Questions[s.qIndex].ID
}

// saveAnswer pushes the input buffer into the store.
func (s *InterviewScreen) saveAnswer() {
	if id := s.currentQuestionID(); id != "" {
		_ = s.ctrl.UpdateAnswer(id, s.input.Value())
	}
}

// loadAnswer pulls the focused question's stored answer into the input.
func (s *InterviewScreen) loadAnswer() {
	if id := s.currentQuestionID(); id != "" {
		s.input.SetValue(s.ctrl.Snapshot().Answers[id])
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
