package session

import (
	"github.com/devgrill/repogrill/internal/assess"
)

// Session is the root aggregate for one assessment run. It is owned
// exclusively by the Store; the presentation layer only ever sees copies.
//
// Analysis and Results are immutable snapshots from the backend and are
// replaced wholesale, never merged. Answers is keyed by question ID and,
// once an analysis exists, holds exactly one (possibly empty) entry per
// question in it.
type Session struct {
	RepositoryURL string
	Stage         Stage
	ErrorMessage  string
	Analysis      *assess.Analysis
	Answers       map[string]string
	Results       *assess.Results
}

// newSession returns the initial empty session.
func newSession() Session {
	return Session{
		Stage:   StageIdle,
		Answers: make(map[string]string),
	}
}

// AnsweredCount returns the number of answers with non-whitespace content.
func (s Session) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if trimmed(a) != "" {
			n++
		}
	}
	return n
}

// QuestionCount returns the number of questions in the current analysis.
func (s Session) QuestionCount() int {
	if s.Analysis == nil {
		return 0
	}
	return len(s.Analysis.Questions)
}
