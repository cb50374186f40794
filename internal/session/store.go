package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/devgrill/repogrill/internal/assess"
)

// ErrStaleAttempt is returned by commit and fail transitions whose attempt
// token has been superseded by a reset or a newer request. Callers discard
// the result; the session is not touched.
var ErrStaleAttempt = errors.New("attempt superseded, result discarded")

// TransitionError indicates an operation that the current stage does not
// permit, e.g. starting a second analysis while one is in flight.
type TransitionError struct {
	From   Stage
	Intent string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Intent, e.From)
}

// Store owns the Session. Every mutation happens inside one of its
// transition methods under the lock; the presentation layer reads a copy
// via Snapshot. There is exactly one Store per running program.
type Store struct {
	mu      sync.Mutex
	sess    Session
	attempt uuid.UUID // token of the in-flight request, uuid.Nil when none
}

// NewStore creates a Store holding the initial empty session.
func NewStore() *Store {
	return &Store{sess: newSession()}
}

// Snapshot returns a defensive copy of the current session. The Analysis
// and Results pointers are shared because those snapshots are immutable;
// the Answers map is copied.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Session {
	out := s.sess
	out.Answers = make(map[string]string, len(s.sess.Answers))
	for id, a := range s.sess.Answers {
		out.Answers[id] = a
	}
	return out
}

// SetError records a validation failure without changing stage. Starting
// any new attempt clears it again.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.ErrorMessage = msg
}

// BeginAnalyze moves Idle → Analyzing and returns the attempt token the
// eventual commit or fail must present. Any prior error message is
// cleared before the outcome of the new attempt is known.
func (s *Store) BeginAnalyze(repoURL string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.Stage != StageIdle {
		return uuid.Nil, &TransitionError{From: s.sess.Stage, Intent: "start analysis"}
	}

	s.sess.RepositoryURL = strings.TrimSpace(repoURL)
	s.sess.ErrorMessage = ""
	s.sess.Stage = StageAnalyzing
	s.attempt = uuid.New()
	return s.attempt, nil
}

// CommitAnalysis moves Analyzing → Analyzed, replaces the analysis
// wholesale, and seeds one empty answer slot per returned question.
func (s *Store) CommitAnalysis(token uuid.UUID, analysis *assess.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claimLocked(token); err != nil {
		return err
	}

	s.sess.Analysis = analysis
	s.sess.Answers = make(map[string]string, len(analysis.Questions))
	for _, q := range analysis.Questions {
		s.sess.Answers[q.ID] = ""
	}
	s.sess.Stage = StageAnalyzed
	return nil
}

// FailAnalyze moves Analyzing → Idle with the error message set. The
// session keeps no trace of the failed attempt beyond the message.
func (s *Store) FailAnalyze(token uuid.UUID, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claimLocked(token); err != nil {
		return err
	}

	s.sess.Stage = StageIdle
	s.sess.ErrorMessage = msg
	return nil
}

// UpdateAnswer mutates one answer slot. Only permitted in Analyzed, and
// only for a question ID the analysis produced.
func (s *Store) UpdateAnswer(questionID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.Stage != StageAnalyzed {
		return &TransitionError{From: s.sess.Stage, Intent: "edit an answer"}
	}
	if _, ok := s.sess.Answers[questionID]; !ok {
		return fmt.Errorf("unknown question id %q", questionID)
	}
	s.sess.Answers[questionID] = text
	return nil
}

// BeginEvaluate moves Analyzed → Evaluating and returns the attempt token
// plus a snapshot taken under the same lock, so the caller packages
// exactly the answer set that was frozen by the transition.
func (s *Store) BeginEvaluate() (uuid.UUID, Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.Stage != StageAnalyzed {
		return uuid.Nil, Session{}, &TransitionError{From: s.sess.Stage, Intent: "submit answers"}
	}

	s.sess.ErrorMessage = ""
	s.sess.Stage = StageEvaluating
	s.attempt = uuid.New()
	return s.attempt, s.copyLocked(), nil
}

// CommitResults moves Evaluating → Evaluated and stores the results
// snapshot verbatim.
func (s *Store) CommitResults(token uuid.UUID, results *assess.Results) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claimLocked(token); err != nil {
		return err
	}

	s.sess.Results = results
	s.sess.Stage = StageEvaluated
	return nil
}

// FailEvaluate moves Evaluating → Analyzed with the error message set.
// The analysis and the user's in-progress answers survive the failure.
func (s *Store) FailEvaluate(token uuid.UUID, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claimLocked(token); err != nil {
		return err
	}

	s.sess.Stage = StageAnalyzed
	s.sess.ErrorMessage = msg
	return nil
}

// Reset unconditionally returns the session to its initial state. The
// attempt token is invalidated, so a response from any request still in
// flight arrives stale and is discarded instead of resurrecting the old
// session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = newSession()
	s.attempt = uuid.Nil
}

// claimLocked consumes the in-flight attempt token. A mismatched or
// already-consumed token means the attempt was superseded.
func (s *Store) claimLocked(token uuid.UUID) error {
	if token == uuid.Nil || token != s.attempt {
		return ErrStaleAttempt
	}
	s.attempt = uuid.Nil
	return nil
}
