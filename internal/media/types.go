// Package media defines the shared types for wcoget: episodes, the episode
// catalog built by a search, and the links produced by resolution.
package media

import "strings"

// Known file extensions, in the priority order used when inferring one from a path.
var Extensions = []string{".mp4", ".mkv", ".avi"}

// DefaultExtension is used when no known extension appears in the resolved path.
const DefaultExtension = ".mp4"

// Episode is a single entry from a search listing.
// Equality and ordering use Title only.
type Episode struct {
	Title    string // Display title
	Path     string // Site-relative path from the listing anchor
	Link     string // Absolute link, derived from the base URL and Path
	Selected bool
}

// NewEpisode builds an Episode, deriving Link from base and path.
// Paths that are already absolute are kept as they are.
func NewEpisode(base, title, path string) Episode {
	return Episode{
		Title: title,
		Path:  path,
		Link:  absoluteLink(base, path),
	}
}

func (e Episode) String() string {
	return e.Title
}

func absoluteLink(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// Links is the result of resolving one episode: two locations for the same
// stream plus the inferred file extension. Callers try Primary first.
type Links struct {
	Primary   string `json:"primary"`
	Fallback  string `json:"fallback"`
	Extension string `json:"extension"`
}

// Candidates returns the download locations in the order they should be tried.
func (l Links) Candidates() []string {
	return []string{l.Primary, l.Fallback}
}

// ExtensionFor returns the first known extension contained in path
// (case-insensitive), or DefaultExtension.
func ExtensionFor(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range Extensions {
		if strings.Contains(lower, ext) {
			return ext
		}
	}
	return DefaultExtension
}
