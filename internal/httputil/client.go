// Package httputil provides the hardened HTTP session used for every hop, and URL helpers.
package httputil

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"

	"wcoget/internal/errs"
)

// DefaultUserAgent mimics a desktop browser so requests don't look scripted.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	URL        string // Final URL after redirects
}

//go:generate mockgen -source=client.go -destination=mocks/mock_webclient.go -package=mocks WebClient

// WebClient issues the requests needed by search and resolution.
// Implementations must be safe for concurrent use.
type WebClient interface {
	Get(ctx context.Context, url string) (*Response, error)
	PostForm(ctx context.Context, url string, form map[string]string) (*Response, error)
}

// Options configures a Session.
type Options struct {
	UserAgent string
	Referer   string
	Timeout   time.Duration
}

// Session is a WebClient backed by resty with a shared cookie jar and connection pool.
type Session struct {
	client *resty.Client
}

// NewClient creates a hardened HTTP client with secure defaults.
// Responses compressed with gzip or brotli are decoded transparently.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Timeout: timeout,
		Jar:     jar,
		Transport: &decodingTransport{
			base: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
	}
}

// NewSession creates a Session with the site headers applied to every request.
func NewSession(opts Options) *Session {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	client := resty.NewWithClient(NewClient(opts.Timeout)).
		SetHeader("User-Agent", ua).
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader("Accept-Language", "en-US,en;q=0.5")
	if opts.Referer != "" {
		client.SetHeader("Referer", opts.Referer)
	}

	return &Session{client: client}
}

// Get performs a GET request and reads the whole body.
func (s *Session) Get(ctx context.Context, rawURL string) (*Response, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", rawURL, errs.ErrNetwork, err)
	}
	return toResponse(resp, rawURL), nil
}

// PostForm performs a form-encoded POST request and reads the whole body.
func (s *Session) PostForm(ctx context.Context, rawURL string, form map[string]string) (*Response, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).SetFormData(form).Post(rawURL)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w: %w", rawURL, errs.ErrNetwork, err)
	}
	return toResponse(resp, rawURL), nil
}

func toResponse(resp *resty.Response, requested string) *Response {
	final := requested
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		final = raw.Request.URL.String()
	}
	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		URL:        final,
	}
}

// StatusError is returned for any response whose status is not 200.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// Unwrap classifies status failures as network errors.
func (e *StatusError) Unwrap() error {
	return errs.ErrNetwork
}

// Check returns an error unless the response is a 200 with a non-empty body.
func (r *Response) Check() error {
	if r.StatusCode != http.StatusOK {
		return &StatusError{URL: r.URL, Code: r.StatusCode}
	}
	if len(r.Body) == 0 {
		return fmt.Errorf("%s responded with a blank body: %w", r.URL, errs.ErrEmptyResponse)
	}
	return nil
}
