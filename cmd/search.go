package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wcoget/internal/httputil"
	"wcoget/internal/media"
	"wcoget/internal/provider"
)

var errNoShow = errors.New("expected a show name")

// newSession builds the web client shared by search and resolution.
func newSession() *httputil.Session {
	return httputil.NewSession(httputil.Options{
		UserAgent: cfg.UserAgent,
		Referer:   cfg.Base + "/",
		Timeout:   cfg.TimeoutDuration(),
	})
}

// search runs the episode search for the show named by args.
func search(ctx context.Context, client httputil.WebClient, args []string) (*media.Catalog, error) {
	show := strings.TrimSpace(strings.Join(args, " "))
	if show == "" {
		return nil, errNoShow
	}

	debugf("searching for: %s", show)

	catalog, err := provider.NewWCO(cfg.Base, client).Search(ctx, show)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return catalog, nil
}
