package assess

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingClient is a decorator that records every backend round trip.
type LoggingClient struct {
	inner Client
	log   zerolog.Logger
}

// WithLogging wraps a Client with request logging.
func WithLogging(c Client, log zerolog.Logger) Client {
	return &LoggingClient{inner: c, log: log}
}

func (l *LoggingClient) Analyze(ctx context.Context, repoURL string) (*Analysis, error) {
	start := time.Now()
	analysis, err := l.inner.Analyze(ctx, repoURL)

	ev := l.event(err).
		Str("endpoint", "analyze").
		Str("repo_url", repoURL).
		Dur("latency", time.Since(start))
	if analysis != nil {
		ev = ev.Int("files_analyzed", analysis.FilesAnalyzed).
			Int("questions", len(analysis.Questions))
	}
	ev.Msg("analyze round trip")

	return analysis, err
}

func (l *LoggingClient) Evaluate(ctx context.Context, input EvaluateInput) (*Results, error) {
	start := time.Now()
	results, err := l.inner.Evaluate(ctx, input)

	ev := l.event(err).
		Str("endpoint", "evaluate").
		Str("repo_url", input.RepositoryURL).
		Int("answers", len(input.Answers)).
		Dur("latency", time.Since(start))
	if results != nil {
		ev = ev.Float64("final_score", results.FinalScore).Str("grade", results.Grade)
	}
	ev.Msg("evaluate round trip")

	return results, err
}

func (l *LoggingClient) event(err error) *zerolog.Event {
	if err != nil {
		return l.log.Warn().Err(err)
	}
	return l.log.Info()
}
