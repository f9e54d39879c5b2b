// Package provider finds the episodes of a show on the streaming site.
package provider

import (
	"context"

	"wcoget/internal/media"
)

// Provider searches a site for episodes.
type Provider interface {
	// Search returns the episodes whose titles contain show, case-insensitively,
	// sorted by title. No matches is an empty catalog, not an error.
	Search(ctx context.Context, show string) (*media.Catalog, error)
}
