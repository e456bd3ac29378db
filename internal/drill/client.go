package drill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saulo-duarte/ai-mastery-drill/internal/aiquiz"
	"github.com/saulo-duarte/ai-mastery-drill/internal/analysis"
	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

const (
	generatePath = "/functions/generate-questions"
	analyzePath  = "/functions/analyze-results"
)

// Client calls the drill HTTP API. It is both a QuestionSource and an
// Analyzer.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithAPIKey sends key as both the bearer token and the apikey header.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = h
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchBatch(ctx context.Context, req aiquiz.QuestionRequest) ([]quiz.Question, error) {
	var resp aiquiz.QuestionResponse
	if err := c.post(ctx, generatePath, req, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

func (c *Client) Analyze(ctx context.Context, req analysis.AnalyzeRequest) (*quiz.AnalysisResult, error) {
	var resp analysis.AnalyzeResponse
	if err := c.post(ctx, analyzePath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Analysis == nil {
		return nil, fmt.Errorf("%w: response has no analysis", apperr.ErrMalformedResponse)
	}
	return resp.Analysis, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMalformedResponse, err)
	}
	return nil
}

// statusError maps a non-200 reply to the error taxonomy, keeping the
// server's message.
func statusError(resp *http.Response) error {
	var envelope config.ErrorBody
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	msg := envelope.Error
	if msg == "" {
		msg = resp.Status
	}
	if envelope.Details != "" {
		msg += ": " + envelope.Details
	}

	kind := apperr.FromStatus(resp.StatusCode)
	if resp.StatusCode == http.StatusBadRequest {
		kind = apperr.ErrInvalidRequest
	}
	return fmt.Errorf("%w: %s", kind, msg)
}
