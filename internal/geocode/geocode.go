// Package geocode resolves coordinates to human-readable addresses through
// a Nominatim-compatible reverse endpoint. Lookups are strictly best-effort:
// callers treat any error as "no address", never as an operation failure.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"visit_tracker/internal/apperrors"
)

// Reverser is the lookup contract the visit lifecycle depends on.
type Reverser interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// Client calls a Nominatim-style /reverse endpoint with a bounded timeout.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient builds a client. timeout bounds each lookup end to end.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode looks up the address for a coordinate pair. All failure
// modes (timeout, non-OK status, malformed payload, empty result) come back
// as a DegradedError for the caller to absorb.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", apperrors.NewDegraded("reverse-geocode", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewDegraded("reverse-geocode", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewDegraded("reverse-geocode",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", apperrors.NewDegraded("reverse-geocode", err)
	}
	if payload.DisplayName == "" {
		return "", apperrors.NewDegraded("reverse-geocode",
			fmt.Errorf("empty display_name in response"))
	}
	return payload.DisplayName, nil
}
