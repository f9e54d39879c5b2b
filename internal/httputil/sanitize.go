package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks that a URL is absolute, has a host, and uses http or https.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("only HTTP(S) URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// JoinURL appends a site-relative suffix (which may carry a query) to base
// with exactly one slash between them.
func JoinURL(base, suffix string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(suffix, "/")
}

// ResolveReference resolves ref against base, so relative and
// protocol-relative links become absolute.
func ResolveReference(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base %q: %w", base, err)
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
