package formatter

import (
	"strings"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	tc := []struct {
		name string
		in   string
		want string
	}{
		{"ampersand", "A & B", "A &amp; B"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"ampersand escaped first", "&lt;", "&amp;lt;"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"plain text untouched", "no specials", "no specials"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.in); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderPlaylistHTML(t *testing.T) {
	t.Run("document structure", func(t *testing.T) {
		got := RenderPlaylist(testPlaylist(), HTML)

		for _, fragment := range []string{
			"<!DOCTYPE html>",
			"<title>Road/Trip</title>",
			"<h1>Road/Trip</h1>",
			`<a href="index.html" class="nav-link">← Back to Index</a>`,
			"<p><strong>Last Modified:</strong> 2023-01-01</p>",
			"<p><strong>Followers:</strong> 5</p>",
			"<p><strong>Total Tracks:</strong> 1</p>",
			`<a href="#" class="back-to-top">↑ Top</a>`,
			".back-to-top {",
			".nav-link {",
			".track-number {",
		} {
			if !strings.Contains(got, fragment) {
				t.Errorf("document missing %q", fragment)
			}
		}

		if !strings.HasSuffix(got, "</body>\n</html>") {
			t.Error("document not closed properly")
		}
	})

	t.Run("escapes user text but not the track URI", func(t *testing.T) {
		p := testPlaylist()
		p.Items[0].Track.TrackURI = `spotify:track:1?a=b&c="d"`

		got := RenderPlaylist(p, HTML)

		if !strings.Contains(got, `<td><a href="spotify:track:1?a=b&c="d"">A &amp; B</a></td>`) {
			t.Errorf("expected raw URI and escaped track name, got:\n%s", got)
		}
	})

	t.Run("escapes playlist name and metadata", func(t *testing.T) {
		p := testPlaylist()
		p.Name = `<b>"Loud" & Clear's</b>`
		p.LastModifiedDate = "<now>"

		got := RenderPlaylist(p, HTML)

		if !strings.Contains(got, "<title>&lt;b&gt;&quot;Loud&quot; &amp; Clear&#39;s&lt;/b&gt;</title>") {
			t.Errorf("title not escaped, got:\n%s", got)
		}
		if !strings.Contains(got, "<h1>&lt;b&gt;&quot;Loud&quot; &amp; Clear&#39;s&lt;/b&gt;</h1>") {
			t.Errorf("heading not escaped, got:\n%s", got)
		}
		if !strings.Contains(got, "<p><strong>Last Modified:</strong> &lt;now&gt;</p>") {
			t.Errorf("last modified not escaped, got:\n%s", got)
		}
		if strings.Contains(got, "<b>\"Loud\"") {
			t.Error("raw playlist name leaked into document")
		}
	})

	t.Run("escapes artist, album, and added date cells", func(t *testing.T) {
		p := testPlaylist()
		p.Items[0].Track.ArtistName = "Bonnie & Clyde"
		p.Items[0].Track.AlbumName = "<Best Of>"
		p.Items[0].AddedDate = `"2023"`

		got := RenderPlaylist(p, HTML)

		if !strings.Contains(got, "<td>Bonnie &amp; Clyde</td>") {
			t.Error("artist cell not escaped")
		}
		if !strings.Contains(got, "<td>&lt;Best Of&gt;</td>") {
			t.Error("album cell not escaped")
		}
		if !strings.Contains(got, "<td>&quot;2023&quot;</td>") {
			t.Error("added date cell not escaped")
		}
	})

	t.Run("zero items omits the table", func(t *testing.T) {
		p := testPlaylist()
		p.Items = nil

		got := RenderPlaylist(p, HTML)

		if strings.Contains(got, "<table>") {
			t.Error("expected no track table for empty playlist")
		}
		if strings.Contains(got, "<h2>Tracks</h2>") {
			t.Error("expected no tracks heading for empty playlist")
		}
		if !strings.Contains(got, "<p><strong>Total Tracks:</strong> 0</p>") {
			t.Error("expected metadata block with zero track count")
		}
	})
}

func TestRenderIndexHTML(t *testing.T) {
	t.Run("stat cards and playlist grid", func(t *testing.T) {
		pages := []PageRef{{Playlist: testPlaylist(), Filename: "Road-Trip.html"}}

		got := RenderIndex(pages, HTML, "")

		for _, fragment := range []string{
			"<title>My Spotify Playlists</title>",
			"<h1>My Spotify Playlists</h1>",
			"<h3>Total Playlists</h3>",
			"<h3>Total Tracks</h3>",
			"                <p>1</p>\n",
			`<h3><a href="Road-Trip.html">Road/Trip</a></h3>`,
			"1 tracks<br>",
			"5 followers",
			".playlist-grid {",
			".stat-card {",
		} {
			if !strings.Contains(got, fragment) {
				t.Errorf("index missing %q", fragment)
			}
		}
	})

	t.Run("escapes filename and playlist name in cards", func(t *testing.T) {
		p := testPlaylist()
		p.Name = "R&B's <Best>"
		pages := []PageRef{{Playlist: p, Filename: SanitizeFilename(p.Name, "html")}}

		got := RenderIndex(pages, HTML, "")

		if !strings.Contains(got, `<h3><a href="R&amp;B&#39;s -Best-.html">R&amp;B&#39;s &lt;Best&gt;</a></h3>`) {
			t.Errorf("card link not escaped, got:\n%s", got)
		}
	})

	t.Run("shared style block present on both page kinds", func(t *testing.T) {
		p := testPlaylist()
		pages := []PageRef{{Playlist: p, Filename: "Road-Trip.html"}}

		page := RenderPlaylist(p, HTML)
		index := RenderIndex(pages, HTML, "")

		if !strings.Contains(page, commonStyles) {
			t.Error("playlist page missing the shared style block")
		}
		if !strings.Contains(index, commonStyles) {
			t.Error("index page missing the shared style block")
		}
	})
}
