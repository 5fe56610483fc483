// Package analysis wraps the three external classification services used to
// enrich a complaint: sentiment analysis, spam detection, and submitter-IP
// geolocation. Each client normalizes every failure mode — network error,
// timeout, non-2xx status, undecodable or incomplete body — into a non-nil
// error; a nil error always carries a well-formed result. The degradation
// policy (what to store instead) belongs to the complaint service, not here.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SentimentResult is a successful sentiment classification. Confidence is
// nil when the service answered with a label only.
type SentimentResult struct {
	Label      string
	Confidence *float64
}

// SentimentClient calls the remote sentiment classifier. The complaint text
// travels as the raw POST body with an API-key header.
type SentimentClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewSentimentClient creates a sentiment client with the given endpoint,
// key, and request ceiling.
func NewSentimentClient(baseURL, apiKey string, timeout time.Duration) *SentimentClient {
	return &SentimentClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Analyze classifies the given text. A non-nil error means the lookup is
// unavailable and describes why; it never panics and has no third outcome.
func (c *SentimentClient) Analyze(ctx context.Context, text string) (*SentimentResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sentiment service returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Sentiment  string   `json:"sentiment"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode sentiment response: %w", err)
	}
	if body.Sentiment == "" {
		return nil, errors.New("sentiment response missing sentiment field")
	}

	return &SentimentResult{Label: body.Sentiment, Confidence: body.Confidence}, nil
}
