package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/devgrill/repogrill/internal/assess"
	"github.com/devgrill/repogrill/internal/session"
)

func newTestScreen() (*HomeScreen, *session.Controller) {
	ctrl := session.NewController(session.NewStore(), assess.NewMockClient(), zerolog.Nop())
	s := New(ctrl)
	s.Init()
	return s, ctrl
}

func TestRejectedURLFlagsInput(t *testing.T) {
	s, ctrl := newTestScreen()

	err := ctrl.SubmitRepository(context.Background(), "not a url")
	if err == nil {
		t.Fatal("expected validation error")
	}

	updated, _ := s.Update(analyzeDoneMsg{Err: err})
	s = updated.(*HomeScreen)

	if !strings.Contains(s.input.View(), "✗") {
		t.Error("rejected URL should flag the input field")
	}
}

func TestEditingClearsInputFlag(t *testing.T) {
	s, ctrl := newTestScreen()

	err := ctrl.SubmitRepository(context.Background(), "not a url")
	updated, _ := s.Update(analyzeDoneMsg{Err: err})
	s = updated.(*HomeScreen)

	updated, _ = s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	s = updated.(*HomeScreen)

	if strings.Contains(s.input.View(), "✗") {
		t.Error("typing should clear the validation flag")
	}
}

func TestTransportFailureDoesNotFlagInput(t *testing.T) {
	s, ctrl := newTestScreen()

	// Empty mock queue fails the round trip with a transport error; the
	// URL itself was fine, so the input stays unflagged.
	err := ctrl.SubmitRepository(context.Background(), "https://github.com/owner/repo")
	if err == nil {
		t.Fatal("expected transport error")
	}

	updated, _ := s.Update(analyzeDoneMsg{Err: err})
	s = updated.(*HomeScreen)

	if strings.Contains(s.input.View(), "✗") {
		t.Error("transport failure should not flag the input field")
	}
}
