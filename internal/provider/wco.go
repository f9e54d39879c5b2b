package provider

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"wcoget/internal/httputil"
	"wcoget/internal/log"
	"wcoget/internal/media"
)

const (
	searchPath = "/search"

	// form keys of the search endpoint
	showKey      = "catara"
	modeKey      = "konuara"
	modeEpisodes = "episodes"

	episodeLinkClass = "sonra"
)

// WCO searches wcostream.
type WCO struct {
	base   string
	client httputil.WebClient
}

// NewWCO creates a WCO provider rooted at base.
func NewWCO(base string, client httputil.WebClient) *WCO {
	return &WCO{base: base, client: client}
}

// Search posts show to the episode search and builds the catalog from the
// matching anchors. Anchors whose titles don't mention show are dropped,
// since the site also returns loosely related hits.
func (w *WCO) Search(ctx context.Context, show string) (*media.Catalog, error) {
	resp, err := w.client.PostForm(ctx, httputil.JoinURL(w.base, searchPath), map[string]string{
		showKey: show,
		modeKey: modeEpisodes,
	})
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", show, err)
	}
	if err := resp.Check(); err != nil {
		return nil, fmt.Errorf("searching for %q: %w", show, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	catalog := media.NewCatalog(w.base)
	skipped := 0
	for _, l := range parseListings(doc) {
		if !relevant(l.Title, show) {
			skipped++
			continue
		}
		catalog.AddIfNew(l.Title, l.Href)
	}

	log.WithFields(log.Fields{"show": show, "episodes": catalog.Len(), "irrelevant": skipped}).
		Debug("search finished")
	return catalog, nil
}

var _ Provider = (*WCO)(nil)
