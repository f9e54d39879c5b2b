package media

import "testing"

func TestNewEpisodeLink(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"relative path", "https://www.wcostream.tv", "/naruto-episode-1", "https://www.wcostream.tv/naruto-episode-1"},
		{"trailing slash base", "https://www.wcostream.tv/", "/naruto-episode-1", "https://www.wcostream.tv/naruto-episode-1"},
		{"no leading slash", "https://www.wcostream.tv", "naruto-episode-1", "https://www.wcostream.tv/naruto-episode-1"},
		{"absolute path", "https://www.wcostream.tv", "https://cdn.example/ep", "https://cdn.example/ep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEpisode(tt.base, "title", tt.path)
			if e.Link != tt.want {
				t.Errorf("Link = %q, want %q", e.Link, tt.want)
			}
			if e.Path != tt.path {
				t.Errorf("Path = %q, want %q", e.Path, tt.path)
			}
		})
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/inc/embed/getvidlink.php?v=cizgi/show_ep1.mkv&embed=anime", ".mkv"},
		{"/inc/embed/getvidlink.php?v=cizgi/SHOW.AVI", ".avi"},
		{"/inc/embed/getvidlink.php?v=a.mp4&b.mkv", ".mp4"},
		{"/inc/embed/getvidlink.php?v=a.flv", ".mp4"},
		{"", ".mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ExtensionFor(tt.path); got != tt.want {
				t.Errorf("ExtensionFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLinksCandidates(t *testing.T) {
	l := Links{Primary: "https://cdn1/getvid?evid=x", Fallback: "https://cdn2/getvid?evid=x"}
	got := l.Candidates()
	if len(got) != 2 || got[0] != l.Primary || got[1] != l.Fallback {
		t.Errorf("Candidates() = %v, want primary then fallback", got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		ext   string
		want  string
	}{
		{"Naruto Episode 1", ".mp4", "Naruto_Episode_1.mp4"},
		{"Pokémon: Episode 2", ".mkv", "Pokemon_Episode_2.mkv"},
		{"../../etc/passwd", ".mp4", "etcpasswd.mp4"},
		{"Already_Underscored", ".avi", "Already_Underscored.avi"},
		{"!!!", ".mp4", "episode.mp4"},
		{"", ".mp4", "episode.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Episode{Title: tt.title}.FileName(tt.ext)
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
