package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devgrill/repogrill/internal/screen"
)

type stubScreen struct {
	name      string
	initCalls int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initCalls++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	second := &stubScreen{name: "second"}
	r.Update(PushScreenMsg{Screen: second})
	if r.Depth() != 2 || r.Active() != second {
		t.Error("push did not make second screen active")
	}
	if second.initCalls != 1 {
		t.Errorf("pushed screen Init calls = %d, want 1", second.initCalls)
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != root {
		t.Error("pop did not restore root")
	}

	// Popping the last screen is a no-op.
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping root, want 1", r.Depth())
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "b"}})

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active() != root {
		t.Error("PopToRoot did not unwind to root")
	}
	if root.initCalls != 1 {
		t.Errorf("root Init calls = %d, want 1 (re-initialized)", root.initCalls)
	}
}
