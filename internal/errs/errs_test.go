package errs

import (
	"fmt"
	"testing"
)

func TestIsNoResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"decode", ErrDecode, true},
		{"wrapped decode", fmt.Errorf("salt: %w", ErrDecode), true},
		{"navigation", fmt.Errorf("anchor: %w", ErrNavigation), true},
		{"network", ErrNetwork, false},
		{"empty", fmt.Errorf("search: %w", ErrEmptyResponse), false},
		{"malformed", ErrMalformedResponse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNoResult(tt.err); got != tt.want {
				t.Errorf("IsNoResult(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
