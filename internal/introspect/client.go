package introspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

const (
	// DefaultTimeout bounds a single introspection request.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the number of introspection requests per second.
	DefaultRateLimit = 2.0

	// maxBody caps the size of an introspection response.
	maxBody = 64 << 20
)

// Client fetches raw type descriptors from GraphQL endpoints and
// introspection files.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithRateLimit limits requests to perSecond with the given burst. A
// non-positive rate disables limiting.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates an introspection client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the raw type descriptors of the schema at endpoint. File
// endpoints are read from disk; everything else is queried over HTTP.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]schema.Descriptor, error) {
	if path, ok := FilePath(endpoint); ok {
		c.logger.Debug("reading introspection file", "path", path)
		return ReadFile(path)
	}
	return c.fetchHTTP(ctx, endpoint)
}

func (c *Client) fetchHTTP(ctx context.Context, endpoint string) ([]schema.Descriptor, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(Request{Query: Query})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("introspection response",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Some servers answer GraphQL errors with 400 and a JSON body.
		types, err := decode(resp.Body)
		if err == nil {
			return types, nil
		}
		var gqlErr *ResponseError
		if errors.As(err, &gqlErr) {
			return nil, err
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint}
	}

	return decode(resp.Body)
}

// Decode reads an introspection response from r.
func Decode(r io.Reader) ([]schema.Descriptor, error) {
	return decode(r)
}

func decode(r io.Reader) ([]schema.Descriptor, error) {
	var env Response
	if err := json.NewDecoder(io.LimitReader(r, maxBody)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return env.Types()
}
