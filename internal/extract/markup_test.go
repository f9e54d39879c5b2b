package extract

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func loadTestDoc(t *testing.T, filename string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parsing test fixture %s: %v", filename, err)
	}
	return doc
}

func docFromString(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing %q: %v", html, err)
	}
	return doc
}

func TestFindIframeSrc(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{"plain iframe", `<iframe src="https://video.example/v1"></iframe>`, "https://video.example/v1", true},
		{"first of two", `<iframe src="/a"></iframe><iframe src="/b"></iframe>`, "/a", true},
		{"skips iframe without src", `<iframe id="ad"></iframe><iframe src="/b"></iframe>`, "/b", true},
		{"empty src", `<iframe src="  "></iframe>`, "", false},
		{"no iframe", `<div><script>var x;</script></div>`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindIframeSrc(docFromString(t, tt.html)).Get()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FindIframeSrc() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindIframeSrcFixture(t *testing.T) {
	doc := loadTestDoc(t, "episode_iframe.html")
	got := FindIframeSrc(doc).OrEmpty()
	if got != "https://video.example/v1" {
		t.Errorf("FindIframeSrc() = %q, want %q", got, "https://video.example/v1")
	}

	if FindIframeSrc(loadTestDoc(t, "episode_cipher.html")).IsPresent() {
		t.Error("FindIframeSrc() found an iframe on the cipher page")
	}
}

func TestLongestScriptBody(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"scripts.html", "abcdefghij"},
		{"scripts_tie.html", "first"},
	}

	for _, tt := range tests {
		got := LongestScriptBody(loadTestDoc(t, tt.file))
		if got != tt.want {
			t.Errorf("LongestScriptBody(%s) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestLongestScriptBodyCountsCharacters(t *testing.T) {
	// "ééé" is 6 bytes but 3 characters
	doc := docFromString(t, `<script>ééé</script><script>abcd</script>`)
	if got := LongestScriptBody(doc); got != "abcd" {
		t.Errorf("LongestScriptBody() = %q, want %q", got, "abcd")
	}
}

func TestLongestScriptSelector(t *testing.T) {
	if (LongestScript{}).Select(docFromString(t, `<p>none</p>`)).IsPresent() {
		t.Error("Select() on a page without scripts should be absent")
	}

	got := (LongestScript{}).Select(loadTestDoc(t, "video_page.html")).OrEmpty()
	if !strings.Contains(got, LookupAnchor) {
		t.Errorf("Select() picked %q, want the script carrying the lookup path", got)
	}
}

func TestExtractAnchoredSubstring(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		anchor     string
		terminator string
		want       string
		wantOK     bool
	}{
		{
			name:       "lookup path",
			text:       `$.getJSON("/inc/embed/getvidlink.php?v=show.mkv&hd=1", function (r) {});`,
			anchor:     LookupAnchor,
			terminator: LookupTerminator,
			want:       "/inc/embed/getvidlink.php?v=show.mkv&hd=1",
			wantOK:     true,
		},
		{
			name:       "terminator before anchor is ignored",
			text:       `x", y /a?b=1", z`,
			anchor:     "/a?",
			terminator: `",`,
			want:       "/a?b=1",
			wantOK:     true,
		},
		{
			name:       "first anchor wins",
			text:       `/a?1", /a?2",`,
			anchor:     "/a?",
			terminator: `",`,
			want:       "/a?1",
			wantOK:     true,
		},
		{
			name:       "missing anchor",
			text:       `no lookup here", at all`,
			anchor:     LookupAnchor,
			terminator: LookupTerminator,
		},
		{
			name:       "terminator only before anchor",
			text:       `", then /inc/embed/getvidlink.php?v=x`,
			anchor:     LookupAnchor,
			terminator: LookupTerminator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAnchoredSubstring(tt.text, tt.anchor, tt.terminator).Get()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractAnchoredSubstring() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
