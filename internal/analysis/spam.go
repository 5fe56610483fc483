package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SpamClient calls the remote spam checker. The complaint text travels as a
// query parameter with an API-key header.
type SpamClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewSpamClient creates a spam client with the given endpoint, key, and
// request ceiling.
func NewSpamClient(baseURL, apiKey string, timeout time.Duration) *SpamClient {
	return &SpamClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Check returns the spam verdict for the given text. A non-nil error means
// the verdict is unavailable; the caller decides what that implies (the
// complaint service fails open).
func (c *SpamClient) Check(ctx context.Context, text string) (bool, error) {
	u := fmt.Sprintf("%s?text=%s", c.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("spam request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("spam service returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		IsSpam *bool `json:"is_spam"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode spam response: %w", err)
	}
	if body.IsSpam == nil {
		return false, errors.New("spam response missing is_spam field")
	}

	return *body.IsSpam, nil
}
