// Package api is the marketplace REST client. It owns transport concerns
// only: request construction, rate limiting, status checking and JSON
// decoding. It performs no retries; a failed call is surfaced to the
// caller, and the list view's retry affordance issues a fresh call.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"gigview/internal/logging"
	"gigview/internal/model"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.gigview.dev/v1"

// requestsPerSecond bounds outbound calls so rapid filter switches in the
// UI cannot hammer the server.
const requestsPerSecond = 5

// APIError is a non-2xx response from the server.
type APIError struct {
	Status int
	URL    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s (%s)", e.Status, http.StatusText(e.Status), e.URL)
}

// Client calls the marketplace API.
type Client struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client for the given base URL. An empty baseURL means
// DefaultBaseURL; a nil httpClient gets a 30s-timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// Users fetches the admin user listing.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Reviews fetches all reviews.
func (c *Client) Reviews(ctx context.Context) ([]model.Review, error) {
	var out []model.Review
	if err := c.get(ctx, "/reviews", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions fetches the wallet ledger.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.get(ctx, "/wallet/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Disputes fetches all disputes.
func (c *Client) Disputes(ctx context.Context) ([]model.Dispute, error) {
	var out []model.Dispute
	if err := c.get(ctx, "/disputes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs a rate-limited GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	url := c.base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gigview/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())

	logging.Debug("api request", "url", url)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
