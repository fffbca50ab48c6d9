package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iainktaylor/spotify-converter/internal/models"
)

// escapeMarkdown escapes the characters that would break a pipe table cell or
// the link syntax inside it. Other text is inserted verbatim.
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "[", "\\[")
	text = strings.ReplaceAll(text, "]", "\\]")
	return text
}

func renderPlaylistMarkdown(p *models.Playlist) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", p.Name)

	buf.WriteString("[← Back to Index](index.md)\n\n")

	buf.WriteString("## Playlist Information\n\n")
	fmt.Fprintf(&buf, "- **Last Modified:** %s\n", p.LastModifiedDate)
	fmt.Fprintf(&buf, "- **Followers:** %d\n", p.NumberOfFollowers)
	fmt.Fprintf(&buf, "- **Total Tracks:** %d\n\n", p.TrackCount())

	if len(p.Items) > 0 {
		buf.WriteString("## Tracks\n\n")
		buf.WriteString("| # | Track Name | Artist | Album | Added Date |\n")
		buf.WriteString("|---|------------|--------|-------|------------|\n")

		for i, item := range p.Items {
			track := item.Track
			fmt.Fprintf(&buf, "| %d | [%s](%s) | %s | %s | %s |\n",
				i+1,
				escapeMarkdown(track.TrackName),
				track.TrackURI,
				escapeMarkdown(track.ArtistName),
				escapeMarkdown(track.AlbumName),
				item.AddedDate,
			)
		}
	}

	buf.WriteString("\n[↑ Back to Top](#)\n\n")
	buf.WriteString("[← Back to Index](index.md)\n")

	return buf.String()
}

func renderIndexMarkdown(pages []PageRef, title string) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", title)

	fmt.Fprintf(&buf, "**Total Playlists:** %d\n\n", len(pages))
	fmt.Fprintf(&buf, "**Total Tracks:** %d\n\n", totalTracks(pages))

	buf.WriteString("## Playlists\n\n")

	for _, page := range pages {
		fmt.Fprintf(&buf, "- [**%s**](%s) - %d tracks, %d followers\n",
			page.Playlist.Name,
			page.Filename,
			page.Playlist.TrackCount(),
			page.Playlist.NumberOfFollowers,
		)
	}

	return buf.String()
}
