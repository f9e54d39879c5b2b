package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"wcoget/internal/extract"
	"wcoget/internal/media"
)

// styles applied when writing to a terminal
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	index lipgloss.Style
}

func newStyles(w io.Writer) styles {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, warn: plain, err: plain, index: plain}
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		label: lipgloss.NewStyle().Faint(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		index: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// result is the JSON form of one resolution outcome.
type result struct {
	Title     string `json:"title"`
	Status    string `json:"status"`
	Primary   string `json:"primary,omitempty"`
	Fallback  string `json:"fallback,omitempty"`
	Extension string `json:"extension,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Error     string `json:"error,omitempty"`
}

const (
	statusResolved = "resolved"
	statusNoResult = "no_result"
	statusError    = "error"
)

func toResult(o extract.Outcome) result {
	r := result{Title: o.Episode.Title}
	switch {
	case o.Err != nil:
		r.Status = statusError
		r.Error = o.Err.Error()
	case o.NoResult():
		r.Status = statusNoResult
	default:
		links := o.Links.MustGet()
		r.Status = statusResolved
		r.Primary = links.Primary
		r.Fallback = links.Fallback
		r.Extension = links.Extension
		r.Filename = o.Episode.FileName(links.Extension)
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOutcomes prints one block per outcome. Errors go to errw.
func writeOutcomes(w, errw io.Writer, outcomes []extract.Outcome) error {
	if flagJSON {
		results := make([]result, len(outcomes))
		for i, o := range outcomes {
			results[i] = toResult(o)
		}
		return writeJSON(w, results)
	}

	st := newStyles(w)
	for _, o := range outcomes {
		r := toResult(o)
		switch r.Status {
		case statusError:
			fmt.Fprintln(errw, st.err.Render(fmt.Sprintf("error: %s: %s", r.Title, r.Error)))
		case statusNoResult:
			fmt.Fprintln(w, st.warn.Render(fmt.Sprintf("couldn't locate %s, skipping", r.Title)))
		default:
			fmt.Fprintln(w, st.title.Render(r.Title))
			fmt.Fprintf(w, "  %s %s\n", st.label.Render("primary: "), r.Primary)
			fmt.Fprintf(w, "  %s %s\n", st.label.Render("fallback:"), r.Fallback)
			fmt.Fprintf(w, "  %s %s\n", st.label.Render("save as: "), r.Filename)
		}
	}
	return nil
}

// catalogEntry is the JSON form of a listed episode.
type catalogEntry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// writeCatalog prints the numbered episode list. Numbers are 1-based and
// match what --select accepts.
func writeCatalog(w io.Writer, episodes []media.Episode) error {
	if flagJSON {
		entries := make([]catalogEntry, len(episodes))
		for i, ep := range episodes {
			entries[i] = catalogEntry{Index: i + 1, Title: ep.Title, Link: ep.Link}
		}
		return writeJSON(w, entries)
	}

	st := newStyles(w)
	for i, ep := range episodes {
		fmt.Fprintf(w, "%s %s\n", st.index.Render(fmt.Sprintf("[%d]", i+1)), ep.Title)
	}
	return nil
}
