package assess

import (
	"context"
	"sync"
)

// MockAnalyzeResponse is a canned analyze result for the MockClient.
type MockAnalyzeResponse struct {
	Analysis *Analysis
	Err      error
}

// MockEvaluateResponse is a canned evaluate result for the MockClient.
type MockEvaluateResponse struct {
	Results *Results
	Err     error
}

// MockClient is a deterministic Client for testing. It returns canned
// responses in FIFO order and records every call it receives.
type MockClient struct {
	mu            sync.Mutex
	analyses      []MockAnalyzeResponse
	evals         []MockEvaluateResponse
	AnalyzeCalls  []string
	EvaluateCalls []EvaluateInput
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// QueueAnalysis appends a canned analyze response.
func (m *MockClient) QueueAnalysis(resp MockAnalyzeResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, resp)
}

// QueueEvaluation appends a canned evaluate response.
func (m *MockClient) QueueEvaluation(resp MockEvaluateResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evals = append(m.evals, resp)
}

func (m *MockClient) Analyze(_ context.Context, repoURL string) (*Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AnalyzeCalls = append(m.AnalyzeCalls, repoURL)

	if len(m.analyses) == 0 {
		return nil, &ErrTransport{Endpoint: "analyze", Err: context.DeadlineExceeded}
	}
	resp := m.analyses[0]
	m.analyses = m.analyses[1:]
	return resp.Analysis, resp.Err
}

func (m *MockClient) Evaluate(_ context.Context, input EvaluateInput) (*Results, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EvaluateCalls = append(m.EvaluateCalls, input)

	if len(m.evals) == 0 {
		return nil, &ErrTransport{Endpoint: "evaluate", Err: context.DeadlineExceeded}
	}
	resp := m.evals[0]
	m.evals = m.evals[1:]
	return resp.Results, resp.Err
}
