// Package decrypt reverses the token-array cipher the site uses to hide the
// player iframe inside an episode page script.
//
// The payload looks like
//
//	var a = ["MTAz", "MTA0", ...]; ... - 42));
//
// Each token is base64 of a decimal number. Subtracting the salt (the first
// all-digit word after the closing bracket) from that number gives one
// character of an HTML fragment that contains the iframe.
package decrypt

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"wcoget/internal/errs"
)

const tokenSeparator = `", "`

// Decode recovers the iframe src hidden in script.
func Decode(script string) (string, error) {
	fragment, err := Plaintext(script)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing decoded fragment: %w: %w", errs.ErrDecode, err)
	}
	src, ok := doc.Find("iframe").First().Attr("src")
	if !ok || src == "" {
		return "", fmt.Errorf("decoded fragment has no iframe src: %w", errs.ErrDecode)
	}
	return src, nil
}

// Plaintext decodes the token array in script into the HTML fragment it hides.
func Plaintext(script string) (string, error) {
	open := strings.Index(script, "[")
	end := strings.Index(script, "]")
	if open < 0 || end < 0 {
		return "", fmt.Errorf("token array brackets not found: %w", errs.ErrDecode)
	}
	if end < open {
		return "", fmt.Errorf("closing bracket precedes opening bracket: %w", errs.ErrDecode)
	}
	// the token window starts one byte before the bracket
	start := max(open-1, 0)

	salt, ok := findSalt(script[end:]).Get()
	if !ok {
		return "", fmt.Errorf("no usable salt after token array: %w", errs.ErrDecode)
	}

	return decodeTokens(strings.Split(script[start:end], tokenSeparator), salt)
}

// findSalt returns the first whitespace-separated word of text that is all
// digits once non-alphanumerics are removed. Zero is not a usable salt.
func findSalt(text string) mo.Option[int] {
	for _, field := range strings.Fields(text) {
		word := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, field)
		if word == "" || !isDigits(word) {
			continue
		}
		n, err := strconv.Atoi(word)
		if err != nil || n == 0 {
			return mo.None[int]()
		}
		return mo.Some(n)
	}
	return mo.None[int]()
}

// decodeTokens decodes every token concurrently and joins the characters in
// token order.
func decodeTokens(tokens []string, salt int) (string, error) {
	chars := make([]rune, len(tokens))

	var g errgroup.Group
	for i, tok := range tokens {
		g.Go(func() error {
			r, err := decodeToken(tok, salt)
			if err != nil {
				return fmt.Errorf("token %d: %w", i, err)
			}
			chars[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return string(chars), nil
}

func decodeToken(tok string, salt int) (rune, error) {
	raw, err := base64.RawStdEncoding.DecodeString(base64Alphabet(tok))
	if err != nil {
		return 0, fmt.Errorf("invalid base64 %q: %w: %w", tok, errs.ErrDecode, err)
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, string(raw))
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("token %q carries no number: %w", tok, errs.ErrDecode)
	}

	code := n - salt
	if code < 0 {
		code = -code
	}
	if code > unicode.MaxRune {
		return 0, fmt.Errorf("token %q decodes outside unicode: %w", tok, errs.ErrDecode)
	}
	return rune(code), nil
}

// base64Alphabet drops quotes, brackets, whitespace and padding around a token.
func base64Alphabet(tok string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '/':
			return r
		}
		return -1
	}, tok)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
