package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/samber/mo"

	"wcoget/internal/decrypt"
	"wcoget/internal/errs"
	"wcoget/internal/httputil"
	"wcoget/internal/log"
	"wcoget/internal/media"
	"wcoget/internal/pace"
)

const (
	// LookupAnchor marks the lookup endpoint path inside the video page script.
	LookupAnchor = "/inc/embed/getvidlink.php?"
	// LookupTerminator ends the lookup path.
	LookupTerminator = `",`
)

type state int

const (
	stateFetchEpisode state = iota
	stateLocateVideoPage
	stateFetchVideoPage
	stateLocateLookup
	stateFetchLookup
	stateResolved
)

func (s state) String() string {
	switch s {
	case stateFetchEpisode:
		return "fetch-episode"
	case stateLocateVideoPage:
		return "locate-video-page"
	case stateFetchVideoPage:
		return "fetch-video-page"
	case stateLocateLookup:
		return "locate-lookup"
	case stateFetchLookup:
		return "fetch-lookup"
	case stateResolved:
		return "resolved"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Resolver walks an episode through the hops that end in its CDN links.
// It is safe for concurrent use when its client and pacer are.
type Resolver struct {
	client   httputil.WebClient
	pacer    pace.Pacer
	base     string
	selector ScriptSelector
	decode   func(script string) (string, error)
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithScriptSelector replaces the longest-script heuristic.
func WithScriptSelector(s ScriptSelector) Option {
	return func(r *Resolver) { r.selector = s }
}

// WithDecoder replaces the cipher used when an episode page has no iframe.
func WithDecoder(fn func(script string) (string, error)) Option {
	return func(r *Resolver) { r.decode = fn }
}

// NewResolver creates a Resolver. Lookup paths are joined onto base.
func NewResolver(client httputil.WebClient, pacer pace.Pacer, base string, opts ...Option) *Resolver {
	r := &Resolver{
		client:   client,
		pacer:    pacer,
		base:     base,
		selector: LongestScript{},
		decode:   decrypt.Decode,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// run carries what each state produced to the states after it.
type run struct {
	episode    media.Episode
	page       *httputil.Response
	videoLink  string
	videoPage  *httputil.Response
	infoScript string
	suffix     string
	links      media.Links
}

// Resolve returns the episode's links, None when the page markup defeats the
// extraction heuristics, or an error for network and contract failures.
func (r *Resolver) Resolve(ctx context.Context, ep media.Episode) (mo.Option[media.Links], error) {
	st := &run{episode: ep}

	for s := stateFetchEpisode; s != stateResolved; {
		logger := log.WithFields(log.Fields{"episode": ep.Title, "state": s.String()})
		logger.Debug("entering state")

		next, err := r.step(ctx, s, st)
		if err != nil {
			if errs.IsNoResult(err) {
				logger.WithError(err).Debug("no result")
				return mo.None[media.Links](), nil
			}
			return mo.None[media.Links](), fmt.Errorf("resolving %q: %w", ep.Title, err)
		}
		s = next
	}

	return mo.Some(st.links), nil
}

func (r *Resolver) step(ctx context.Context, s state, st *run) (state, error) {
	switch s {
	case stateFetchEpisode:
		return stateLocateVideoPage, r.fetchEpisode(ctx, st)
	case stateLocateVideoPage:
		return stateFetchVideoPage, r.locateVideoPage(st)
	case stateFetchVideoPage:
		return stateLocateLookup, r.fetchVideoPage(ctx, st)
	case stateLocateLookup:
		return stateFetchLookup, r.locateLookup(st)
	case stateFetchLookup:
		return stateResolved, r.fetchLookup(ctx, st)
	}
	return s, fmt.Errorf("unknown state %s", s)
}

func (r *Resolver) fetchEpisode(ctx context.Context, st *run) error {
	page, err := r.fetch(ctx, st.episode.Link)
	if err != nil {
		return fmt.Errorf("fetching episode page: %w", err)
	}
	st.page = page
	return nil
}

// locateVideoPage prefers an iframe on the episode page and falls back to
// decoding the payload script.
func (r *Resolver) locateVideoPage(st *run) error {
	doc, err := parseHTML(st.page.Body)
	if err != nil {
		return err
	}

	if src, ok := FindIframeSrc(doc).Get(); ok {
		st.videoLink = src
		return nil
	}

	script, ok := r.selector.Select(doc).Get()
	if !ok {
		return fmt.Errorf("episode page has neither iframe nor script: %w", errs.ErrNavigation)
	}
	src, err := r.decode(script)
	if err != nil {
		return fmt.Errorf("decoding episode page script: %w", err)
	}
	st.videoLink = src
	return nil
}

func (r *Resolver) fetchVideoPage(ctx context.Context, st *run) error {
	link, err := url.PathUnescape(st.videoLink)
	if err != nil {
		link = st.videoLink
	}
	target, err := httputil.ResolveReference(st.page.URL, link)
	if err != nil {
		return fmt.Errorf("video page link %q: %w: %w", link, errs.ErrNavigation, err)
	}
	if err := httputil.ValidateURL(target); err != nil {
		return fmt.Errorf("video page link %q: %w: %w", link, errs.ErrNavigation, err)
	}

	page, err := r.fetch(ctx, target)
	if err != nil {
		return fmt.Errorf("fetching video page: %w", err)
	}
	st.videoPage = page

	doc, err := parseHTML(page.Body)
	if err != nil {
		return err
	}
	st.infoScript = r.selector.Select(doc).OrEmpty()
	return nil
}

func (r *Resolver) locateLookup(st *run) error {
	suffix, ok := ExtractAnchoredSubstring(st.infoScript, LookupAnchor, LookupTerminator).Get()
	if !ok {
		return fmt.Errorf("lookup path not found in video page script: %w", errs.ErrNavigation)
	}
	st.suffix = suffix
	return nil
}

// lookupResponse is the body of the lookup endpoint.
type lookupResponse struct {
	CDN    string `json:"cdn"`
	Server string `json:"server"`
	Enc    string `json:"enc"`
}

func (r *Resolver) fetchLookup(ctx context.Context, st *run) error {
	resp, err := r.fetch(ctx, httputil.JoinURL(r.base, st.suffix))
	if err != nil {
		return fmt.Errorf("fetching lookup endpoint: %w", err)
	}

	var lookup lookupResponse
	if err := json.Unmarshal(resp.Body, &lookup); err != nil {
		return fmt.Errorf("decoding lookup response: %w: %w", errs.ErrMalformedResponse, err)
	}
	if lookup.CDN == "" || lookup.Server == "" || lookup.Enc == "" {
		return fmt.Errorf("lookup response missing cdn, server or enc: %w", errs.ErrMalformedResponse)
	}

	st.links = media.Links{
		Primary:   lookup.CDN + "/getvid?evid=" + lookup.Enc,
		Fallback:  lookup.Server + "/getvid?evid=" + lookup.Enc,
		Extension: media.ExtensionFor(st.suffix),
	}
	return nil
}

// fetch paces, then GETs rawURL and requires a 200 with a body.
func (r *Resolver) fetch(ctx context.Context, rawURL string) (*httputil.Response, error) {
	if err := r.pacer.Pace(ctx); err != nil {
		return nil, err
	}
	resp, err := r.client.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err := resp.Check(); err != nil {
		return nil, err
	}
	return resp, nil
}
