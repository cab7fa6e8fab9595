package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"userdir/internal/domain"
)

// DefaultEndpoint serves the fixed user collection
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// DefaultFetchTimeout bounds the single users request
const DefaultFetchTimeout = 10 * time.Second

// ErrLoadFailure wraps every failure to obtain the user collection
var ErrLoadFailure = errors.New("load failure")

// Source supplies the user collection
type Source interface {
	FetchUsers(ctx context.Context) ([]domain.User, error)
}

// Ensure HTTPSource implements Source at compile time.
var _ Source = (*HTTPSource)(nil)

// HTTPSource fetches users with a single GET against a fixed endpoint
type HTTPSource struct {
	client    *http.Client
	endpoint  string
	timeout   time.Duration
	userAgent string
}

// Option configures an HTTPSource
type Option func(*HTTPSource)

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) {
		s.timeout = d
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *HTTPSource) {
		s.userAgent = ua
	}
}

// WithHTTPClient replaces the HTTP client; the timeout option is ignored then
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// NewHTTPSource creates a source reading from endpoint
func NewHTTPSource(endpoint string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		endpoint:  endpoint,
		timeout:   DefaultFetchTimeout,
		userAgent: "userdir",
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Endpoint returns the URL the source reads from
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// FetchUsers performs the request and decodes the collection. All errors
// wrap ErrLoadFailure.
func (s *HTTPSource) FetchUsers(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrLoadFailure, resp.StatusCode, s.endpoint)
	}

	users, err := DecodeUsers(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	return users, nil
}

// DecodeUsers parses a JSON array of users. Anything that is not an array
// is rejected; missing fields decode to zero values.
func DecodeUsers(r io.Reader) ([]domain.User, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, errors.New("response is not a JSON array")
	}

	var users []domain.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}
	return users, nil
}
