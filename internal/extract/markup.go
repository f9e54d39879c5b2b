package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"

	"wcoget/internal/errs"
)

// ScriptSelector picks the inline script that carries a page's payload.
type ScriptSelector interface {
	Select(doc *goquery.Document) mo.Option[string]
}

// LongestScript selects the script with the most characters. The obfuscated
// payload has always been the largest inline script on these pages, but
// nothing guarantees it.
type LongestScript struct{}

func (LongestScript) Select(doc *goquery.Document) mo.Option[string] {
	body := LongestScriptBody(doc)
	if body == "" {
		return mo.None[string]()
	}
	return mo.Some(body)
}

// parseHTML wraps goquery so callers see a navigation failure on unreadable input.
func parseHTML(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w: %w", errs.ErrNavigation, err)
	}
	return doc, nil
}

// FindIframeSrc returns the src of the first iframe that has one.
func FindIframeSrc(doc *goquery.Document) mo.Option[string] {
	src, ok := doc.Find("iframe[src]").First().Attr("src")
	src = strings.TrimSpace(src)
	if !ok || src == "" {
		return mo.None[string]()
	}
	return mo.Some(src)
}

// LongestScriptBody returns the text of the longest script element, measured
// in characters. Ties go to the first one in document order.
func LongestScriptBody(doc *goquery.Document) string {
	var longest string
	best := -1
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := s.Text()
		if n := utf8.RuneCountInString(text); n > best {
			best = n
			longest = text
		}
	})
	return longest
}

// ExtractAnchoredSubstring returns text from the first occurrence of anchor
// up to, but not including, the first terminator after it.
func ExtractAnchoredSubstring(text, anchor, terminator string) mo.Option[string] {
	start := strings.Index(text, anchor)
	if start < 0 {
		return mo.None[string]()
	}
	end := strings.Index(text[start+len(anchor):], terminator)
	if end < 0 {
		return mo.None[string]()
	}
	return mo.Some(text[start : start+len(anchor)+end])
}
