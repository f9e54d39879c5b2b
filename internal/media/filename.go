package media

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultFileName = "episode"

// FileName derives a filesystem-safe name from the episode title: accents are
// folded, only letters, digits, spaces and underscores are kept, and spaces
// become underscores. ext is appended as given.
func (e Episode) FileName(ext string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, e.Title)
	if err != nil {
		folded = e.Title
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	name := b.String()
	if strings.Trim(name, "_") == "" {
		name = defaultFileName
	}
	return name + ext
}
