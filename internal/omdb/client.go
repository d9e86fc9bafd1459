package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marquee/internal/services"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

// Metadata is the validated subset of an OMDb title record.
type Metadata struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url,omitempty"`
}

// Looker resolves a title to metadata. Commands depend on this rather than
// *Client so tests can substitute a fake.
type Looker interface {
	Lookup(ctx context.Context, title string) (Metadata, error)
}

// Client provides access to the OMDb API for title lookups.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Looker = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates an OMDb client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "new", "api key required", nil)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "new", "base url required", nil)
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches metadata for the best OMDb match of title.
func (c *Client) Lookup(ctx context.Context, title string) (Metadata, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Metadata{}, services.Wrap(services.ErrValidation, "omdb", "lookup", "title must not be empty", nil)
	}

	payload, err := c.fetch(ctx, title)
	if err != nil {
		return Metadata{}, err
	}
	return payload.metadata(title)
}

// Ping checks that the endpoint answers and accepts the API key. It performs
// one lookup of a well-known title.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.fetch(ctx, "Casablanca")
	if errors.Is(err, services.ErrNotFound) {
		return nil
	}
	return err
}

func (c *Client) fetch(ctx context.Context, title string) (*response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "build request", "invalid base url", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "omdb", "lookup",
			fmt.Sprintf("request failed (latency=%v)", latency.Round(time.Millisecond)), redactKey(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "omdb", "lookup", "read response body", err)
	}

	var payload response
	decodeErr := json.Unmarshal(body, &payload)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, services.Wrap(services.ErrNotFound, "omdb", "lookup", fmt.Sprintf("no match for %q", title), nil)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "lookup",
			"api key rejected: "+payload.errorText("status 401"), nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, services.Wrap(services.ErrNetwork, "omdb", "lookup",
			fmt.Sprintf("unexpected status %d (latency=%v)", resp.StatusCode, latency.Round(time.Millisecond)), nil)
	}
	if decodeErr != nil {
		return nil, services.Wrap(services.ErrNetwork, "omdb", "decode", "malformed response body", decodeErr)
	}
	if err := payload.failure(title); err != nil {
		return nil, err
	}
	return &payload, nil
}

// redactKey masks the apikey query parameter in the request URL carried by
// transport errors. The rest of the error chain is preserved.
func redactKey(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	redacted := *uerr
	redacted.URL = redactURL(uerr.URL)
	return &redacted
}

func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		base, _, _ := strings.Cut(raw, "?")
		return base
	}
	query := parsed.Query()
	if !query.Has("apikey") {
		return raw
	}
	query.Set("apikey", "REDACTED")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
