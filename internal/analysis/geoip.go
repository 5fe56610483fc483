package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// GeoResult is a successful IP geolocation lookup.
type GeoResult struct {
	Country string
	Region  string
	City    string
	ISP     string
}

// GeoIPClient calls the remote geolocation service. The IP address travels
// in the request path; the service requires no authentication.
type GeoIPClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGeoIPClient creates a geolocation client with the given endpoint and
// request ceiling. The ceiling is deliberately shorter than the other
// adapters' — this lookup is the least valuable enrichment.
func NewGeoIPClient(baseURL string, timeout time.Duration) *GeoIPClient {
	return &GeoIPClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Locate resolves locality fields for the given IP address. A syntactically
// malformed address errors immediately, without a network round-trip. A
// syntactically valid but unresolvable address (the service answers with a
// non-success status) also errors: only a "success" status produces a result.
func (c *GeoIPClient) Locate(ctx context.Context, ip string) (*GeoResult, error) {
	if net.ParseIP(ip) == nil {
		return nil, fmt.Errorf("malformed ip address %q", ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+ip, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation service returned HTTP %d", resp.StatusCode)
	}

	var body struct {
		Status     string `json:"status"`
		Country    string `json:"country"`
		RegionName string `json:"regionName"`
		City       string `json:"city"`
		ISP        string `json:"isp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup for %s returned status %q", ip, body.Status)
	}

	return &GeoResult{
		Country: body.Country,
		Region:  body.RegionName,
		City:    body.City,
		ISP:     body.ISP,
	}, nil
}
