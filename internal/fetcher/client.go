package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quantmind-br/readmedl-go/internal/domain"
	"github.com/quantmind-br/readmedl-go/internal/utils"
)

// DefaultBaseURL is the raw-content host for GitHub repositories
const DefaultBaseURL = "https://raw.githubusercontent.com"

// Client fetches README content from the raw-content endpoint.
// It implements domain.ReadmeSource.
type Client struct {
	httpClient *http.Client
	retrier    *Retrier
	baseURL    string
	branch     string
	readmeName string
	token      string
	userAgent  string
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Timeout    time.Duration
	MaxRetries int
	BaseURL    string
	Branch     string
	ReadmeName string
	Token      string
	UserAgent  string
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		BaseURL:    DefaultBaseURL,
		Branch:     "main",
		ReadmeName: "README.md",
	}
}

// NewClient creates a new raw-content client
func NewClient(opts ClientOptions) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Branch == "" {
		opts.Branch = "main"
	}
	if opts.ReadmeName == "" {
		opts.ReadmeName = "README.md"
	}

	retrier := NewRetrier(RetrierOptions{
		MaxRetries:      opts.MaxRetries,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
	})

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		retrier:    retrier,
		baseURL:    opts.BaseURL,
		branch:     opts.Branch,
		readmeName: opts.ReadmeName,
		token:      opts.Token,
		userAgent:  opts.UserAgent,
	}
}

// Name returns the source name
func (c *Client) Name() string {
	return "raw"
}

// FetchReadme retrieves the README via an unauthenticated (or token
// authenticated) GET to the raw-content address. A 404 is surfaced as
// domain.ErrNotFound so the caller can fall back to a clone; transient
// statuses are retried with backoff before failing.
func (c *Client) FetchReadme(ctx context.Context, ref domain.RepoRef) ([]byte, error) {
	rawURL := utils.RawContentURL(c.baseURL, ref, c.branch, c.readmeName)

	var body []byte
	err := c.retrier.Retry(ctx, func() error {
		var err error
		body, err = c.doRequest(ctx, rawURL)
		return err
	})

	if err != nil {
		return nil, err
	}

	return body, nil
}

// doRequest performs the actual HTTP request
func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{
			URL: rawURL,
			Err: fmt.Errorf("request failed: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, rawURL)
	}

	if resp.StatusCode != http.StatusOK {
		fetchErr := &domain.FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d", resp.StatusCode),
		}
		if ShouldRetryStatus(resp.StatusCode) {
			return nil, &domain.RetryableError{
				Err:        fetchErr,
				RetryAfter: int(ParseRetryAfter(resp.Header.Get("Retry-After")).Seconds()),
			}
		}
		return nil, fetchErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
