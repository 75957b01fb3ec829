package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Client calls a hosted zero-shot classification endpoint over HTTP. The wire
// format follows the Hugging Face inference API for the
// zero-shot-classification task.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a zero-shot inference client. apiKey may be empty for
// unauthenticated self-hosted endpoints.
func NewClient(endpoint, apiKey string) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("ZEROSHOT_URL is required")
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("ZEROSHOT_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type classifyRequest struct {
	Inputs     []string           `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
	MultiLabel      bool     `json:"multi_label"`
}

type classifyResult struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

type classifyError struct {
	Error string `json:"error"`
}

// Classify scores every text against every candidate label in one request.
func (c *Client) Classify(ctx context.Context, texts []string, labels []string) ([]Result, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(classifyRequest{
		Inputs: texts,
		Parameters: classifyParameters{
			CandidateLabels: labels,
			MultiLabel:      true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zero-shot request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read zero-shot response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr classifyError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("zero-shot endpoint status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("zero-shot endpoint status %d", resp.StatusCode)
	}

	results, err := decodeResults(body)
	if err != nil {
		return nil, err
	}
	if len(results) != len(texts) {
		return nil, fmt.Errorf("zero-shot returned %d results for %d inputs", len(results), len(texts))
	}
	return results, nil
}

// decodeResults accepts both the batch form (array of results) and the
// single-input form (bare result object) the endpoint produces.
func decodeResults(body []byte) ([]Result, error) {
	var batch []classifyResult
	if err := json.Unmarshal(body, &batch); err == nil {
		return convertResults(batch)
	}
	var single classifyResult
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("parse zero-shot response: %w", err)
	}
	return convertResults([]classifyResult{single})
}

func convertResults(raw []classifyResult) ([]Result, error) {
	out := make([]Result, len(raw))
	for i, r := range raw {
		if len(r.Labels) != len(r.Scores) {
			return nil, fmt.Errorf("zero-shot result %d has %d labels for %d scores", i, len(r.Labels), len(r.Scores))
		}
		out[i] = Result{Labels: r.Labels, Scores: r.Scores}
	}
	return out, nil
}
