// Package errs holds the error classes shared by the search and resolution code.
package errs

import "errors"

var (
	// ErrNetwork covers transport failures and non-200 responses on any hop.
	ErrNetwork = errors.New("network error")
	// ErrEmptyResponse indicates a 200 response whose body was empty.
	ErrEmptyResponse = errors.New("empty response")
	// ErrMalformedResponse indicates a structured response that is missing required fields.
	// It is treated like a network failure: the endpoint contract changed.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrDecode indicates the cipher payload could not be decoded.
	ErrDecode = errors.New("decode failed")
	// ErrNavigation indicates expected markup or an expected anchor was absent.
	ErrNavigation = errors.New("navigation failed")
)

// IsNoResult reports whether err means "skip this episode" rather than a real failure.
func IsNoResult(err error) bool {
	return errors.Is(err, ErrDecode) || errors.Is(err, ErrNavigation)
}
