package decrypt

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"testing"

	"wcoget/internal/errs"
)

// encodePayload builds a script the way the site does: each character becomes
// base64 of its code point plus salt, and the salt follows the array.
func encodePayload(plain string, salt int) string {
	tokens := make([]string, 0, len(plain))
	for _, r := range plain {
		tokens = append(tokens, base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(int(r)+salt))))
	}
	return `var HMl = ""; var tUe = ["` + strings.Join(tokens, `", "`) + `"]; ` +
		`tUe.forEach(function d(v){ HMl += String.fromCharCode(parseInt(atob(v).replace(/\D/g,'')) - ` +
		strconv.Itoa(salt) + `); }); document.write(decodeURIComponent(escape(HMl)));`
}

func TestPlaintextRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		salt  int
	}{
		{"iframe", `<iframe src="https://video.example/v2"></iframe>`, 42},
		{"large salt", `<p>hello</p>`, 7350841},
		{"single char", "x", 3},
		{"non-ascii", "Pokémon", 100},
		{"long", strings.Repeat("abcdefghijklmnopqrstuvwxyz0123456789", 20), 911},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plaintext(encodePayload(tt.plain, tt.salt))
			if err != nil {
				t.Fatalf("Plaintext() error = %v", err)
			}
			if got != tt.plain {
				t.Errorf("Plaintext() = %q, want %q", got, tt.plain)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	script := encodePayload(`<div><iframe width="530" src="https://video.example/v2" frameborder="0"></iframe></div>`, 58)

	got, err := Decode(script)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "https://video.example/v2" {
		t.Errorf("Decode() = %q, want %q", got, "https://video.example/v2")
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no opening bracket", `var a = "MTAz"]; - 42`},
		{"no closing bracket", `var a = ["MTAz", "MTA0"; - 42`},
		{"no brackets", `document.write("hello")`},
		{"brackets reversed", `x ] y [ "MTAz" 42`},
		{"no salt", `var a = ["MTAz", "MTA0"]; a.forEach(f);`},
		{"zero salt", `var a = ["MTAz", "MTA0"]; x - 0);`},
		{"corrupt base64", `var a = ["MTAz", "A"]; x - 42);`},
		{"token without digits", `var a = ["MTAz", "YWJj"]; x - 42);`},
		{"empty array", `var a = []; x - 42);`},
		{"no iframe", encodePayload("<p>nothing here</p>", 42)},
		{"iframe without src", encodePayload(`<iframe width="5"></iframe>`, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.script)
			if err == nil {
				t.Fatalf("Decode() = %q, want error", got)
			}
			if !errors.Is(err, errs.ErrDecode) {
				t.Errorf("Decode() error = %v, want ErrDecode", err)
			}
			if !errs.IsNoResult(err) {
				t.Errorf("IsNoResult(%v) = false, want true", err)
			}
		})
	}
}

func TestFindSalt(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"]; x - 42);", 42, true},
		{"]; abc 12ab 7);", 7, true},
		{"] (((1234))) 99", 1234, true},
		{"]; no numbers here", 0, false},
		{"]; - 0);", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := findSalt(tt.text).Get()
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("findSalt(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBase64Alphabet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{` ["MTAz`, "MTAz"},
		{`MTA0"`, "MTA0"},
		{"NDI=", "NDI"},
		{"a+b/c", "a+b/c"},
		{`"`, ""},
	}

	for _, tt := range tests {
		if got := base64Alphabet(tt.input); got != tt.want {
			t.Errorf("base64Alphabet(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
