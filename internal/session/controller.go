package session

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/devgrill/repogrill/internal/assess"
)

// Fallback messages for failures where the service supplied no detail.
const (
	analyzeFallbackMsg  = "analysis failed: the analyze service is unreachable or returned an invalid response"
	evaluateFallbackMsg = "evaluation failed: the evaluate service is unreachable or returned an invalid response"
)

// Documented weights of the final-score composite. The evaluate service
// computes the composite; the client only cross-checks it (see
// warnOnScoreDrift).
const (
	weightQuality   = 0.4
	weightAlgorithm = 0.3
	weightAnswers   = 0.3

	scoreDriftTolerance = 0.25
)

// Controller is the presentation boundary: it accepts the four user
// intents, drives the two network round trips, and funnels every outcome
// into the Store. SubmitRepository and SubmitAnswers block for the round
// trip; the TUI runs them inside a command so the interface stays live.
type Controller struct {
	store  *Store
	client assess.Client
	log    zerolog.Logger
}

// NewController wires a Controller to its store and backend client.
func NewController(store *Store, client assess.Client, log zerolog.Logger) *Controller {
	return &Controller{store: store, client: client, log: log}
}

// Snapshot exposes the current session read-only.
func (c *Controller) Snapshot() Session {
	return c.store.Snapshot()
}

// SubmitRepository validates the URL, then runs the analyze round trip.
// On success the session holds the analysis with one empty answer slot
// per question; on failure it is back in Idle with an error message.
func (c *Controller) SubmitRepository(ctx context.Context, rawURL string) error {
	if err := ValidateRepositoryURL(rawURL); err != nil {
		c.store.SetError(err.Error())
		return err
	}

	token, err := c.store.BeginAnalyze(rawURL)
	if err != nil {
		return err
	}

	analysis, err := c.client.Analyze(ctx, c.store.Snapshot().RepositoryURL)
	if err != nil {
		c.discardIfStale(c.store.FailAnalyze(token, userMessage(err, analyzeFallbackMsg)))
		return err
	}

	c.discardIfStale(c.store.CommitAnalysis(token, analysis))
	return nil
}

// UpdateAnswer records one answer edit.
func (c *Controller) UpdateAnswer(questionID, text string) error {
	return c.store.UpdateAnswer(questionID, text)
}

// SubmitAnswers validates the answer set, then runs the evaluate round
// trip. Every question is forwarded, empty answers included, together
// with the analysis context the stateless evaluate service needs. On
// failure the session returns to Analyzed with answers intact.
func (c *Controller) SubmitAnswers(ctx context.Context) error {
	snap := c.store.Snapshot()
	if snap.Stage == StageAnalyzed {
		if err := ValidateAnswerSet(snap.Answers); err != nil {
			c.store.SetError(err.Error())
			return err
		}
	}

	token, frozen, err := c.store.BeginEvaluate()
	if err != nil {
		return err
	}

	results, err := c.client.Evaluate(ctx, buildEvaluateInput(frozen))
	if err != nil {
		c.discardIfStale(c.store.FailEvaluate(token, userMessage(err, evaluateFallbackMsg)))
		return err
	}

	if err := c.store.CommitResults(token, results); err != nil {
		c.discardIfStale(err)
		return nil
	}
	c.warnOnScoreDrift(results)
	return nil
}

// Reset discards the whole session, from any stage.
func (c *Controller) Reset() {
	c.store.Reset()
}

// buildEvaluateInput packages the frozen session for the evaluate service.
// Answers follow the analysis question order and are trimmed; unanswered
// questions are sent as empty strings.
func buildEvaluateInput(snap Session) assess.EvaluateInput {
	answers := make([]assess.SubmittedAnswer, 0, len(snap.Analysis.Questions))
	for _, q := range snap.Analysis.Questions {
		answers = append(answers, assess.SubmittedAnswer{
			QuestionID: q.ID,
			AnswerText: trimmed(snap.Answers[q.ID]),
		})
	}

	return assess.EvaluateInput{
		RepositoryURL:       snap.RepositoryURL,
		AlgorithmLabel:      snap.Analysis.Algorithm.Label,
		AlgorithmConfidence: snap.Analysis.Algorithm.Confidence,
		QualityScore:        snap.Analysis.Quality.Score,
		Questions:           snap.Analysis.Questions,
		Answers:             answers,
	}
}

// warnOnScoreDrift cross-checks the service's final score against the
// documented 40/30/30 composite. The stored value is always the
// service's; a drift only produces a log line.
func (c *Controller) warnOnScoreDrift(r *assess.Results) {
	expected := weightQuality*r.ComponentScores.CodeQuality +
		weightAlgorithm*r.ComponentScores.AlgorithmCorrectness +
		weightAnswers*r.ComponentScores.AnswerEvaluation
	if math.Abs(expected-r.FinalScore) > scoreDriftTolerance {
		c.log.Warn().
			Float64("final_score", r.FinalScore).
			Float64("expected", expected).
			Msg("final score deviates from documented component weighting")
	}
}

// discardIfStale logs a discarded late result. Stale here means a reset
// (or a superseding request) happened while this round trip was in
// flight; the fresh session must not see its outcome.
func (c *Controller) discardIfStale(err error) {
	if errors.Is(err, ErrStaleAttempt) {
		c.log.Debug().Msg("late service response discarded after reset")
	}
}

// userMessage maps a client error to the message shown to the user: the
// service's detail verbatim when present, a generic fallback otherwise.
func userMessage(err error, fallback string) string {
	var svcErr *assess.ErrService
	if errors.As(err, &svcErr) && svcErr.Detail != "" {
		return svcErr.Detail
	}
	return fallback
}
