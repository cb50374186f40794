package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is the boundary to the analysis backend. The backend is an opaque
// collaborator: Analyze and Evaluate are single request/response round trips
// with no retries and no state shared between calls.
type Client interface {
	// Analyze submits a repository URL and returns the analysis snapshot.
	Analyze(ctx context.Context, repoURL string) (*Analysis, error)

	// Evaluate submits the answer set with its analysis context and returns
	// the evaluation snapshot.
	Evaluate(ctx context.Context, input EvaluateInput) (*Results, error)
}

// analyzeRequest is the /analyze wire payload.
type analyzeRequest struct {
	RepoURL string `json:"repo_url"`
}

// errorBody is the error envelope both endpoints use for non-2xx responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// HTTPClient implements Client against the HTTP JSON contract.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the backend at cfg.BaseURL.
func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, repoURL string) (*Analysis, error) {
	body, err := c.post(ctx, "analyze", analyzeRequest{RepoURL: repoURL})
	if err != nil {
		return nil, err
	}

	if err := validateBody("analyze", AnalyzeResponseSchema, body); err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: "analyze", Body: body, Err: err}
	}
	if err := checkAnalysis(&analysis); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: "analyze", Body: body, Err: err}
	}

	return &analysis, nil
}

func (c *HTTPClient) Evaluate(ctx context.Context, input EvaluateInput) (*Results, error) {
	body, err := c.post(ctx, "evaluate", input)
	if err != nil {
		return nil, err
	}

	if err := validateBody("evaluate", EvaluateResponseSchema, body); err != nil {
		return nil, err
	}

	var results Results
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: "evaluate", Body: body, Err: err}
	}
	if err := checkResults(&results); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: "evaluate", Body: body, Err: err}
	}

	return &results, nil
}

// post sends a JSON POST to {base}/{endpoint} and returns the raw 2xx body.
// Non-2xx responses become *ErrService with the service's detail message;
// network failures become *ErrTransport.
func (c *HTTPClient) post(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrTransport{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrTransport{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return nil, &ErrService{Endpoint: endpoint, Status: resp.StatusCode, Detail: eb.Detail}
	}

	return body, nil
}
