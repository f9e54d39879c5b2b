package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// listing is one episode anchor from a search results page.
type listing struct {
	Title string
	Href  string
}

// parseListings extracts episode anchors carrying the marker class.
// The title attribute is preferred; the anchor text is used when it is missing.
func parseListings(doc *goquery.Document) []listing {
	var listings []listing

	doc.Find("a." + episodeLinkClass).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			return
		}

		title := strings.TrimSpace(s.AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(s.Text())
		}
		if title == "" {
			return
		}

		listings = append(listings, listing{Title: title, Href: href})
	})

	return listings
}

// relevant reports whether title contains show, ignoring case.
func relevant(title, show string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(show))
}
