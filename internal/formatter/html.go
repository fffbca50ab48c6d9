package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iainktaylor/spotify-converter/internal/models"
)

// escapeHTML escapes user-supplied text for insertion into HTML content.
// The ampersand is replaced first so the later substitutions are not
// double-escaped.
func escapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, "\"", "&quot;")
	text = strings.ReplaceAll(text, "'", "&#39;")
	return text
}

func writeHTMLHead(buf *bytes.Buffer, title, pageStyles string) {
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("    <meta charset=\"UTF-8\">\n")
	buf.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(buf, "    <title>%s</title>\n", escapeHTML(title))
	buf.WriteString("    <style>\n")
	buf.WriteString(commonStyles)
	buf.WriteString(pageStyles)
	buf.WriteString("    </style>\n")
	buf.WriteString("</head>\n<body>\n")
}

func renderPlaylistHTML(p *models.Playlist) string {
	var buf bytes.Buffer

	writeHTMLHead(&buf, p.Name, playlistStyles)
	buf.WriteString("    <div class=\"container\">\n")

	buf.WriteString("        <a href=\"index.html\" class=\"nav-link\">← Back to Index</a>\n")

	fmt.Fprintf(&buf, "        <h1>%s</h1>\n", escapeHTML(p.Name))

	buf.WriteString("        <div class=\"metadata\">\n")
	fmt.Fprintf(&buf, "            <p><strong>Last Modified:</strong> %s</p>\n", escapeHTML(p.LastModifiedDate))
	fmt.Fprintf(&buf, "            <p><strong>Followers:</strong> %d</p>\n", p.NumberOfFollowers)
	fmt.Fprintf(&buf, "            <p><strong>Total Tracks:</strong> %d</p>\n", p.TrackCount())
	buf.WriteString("        </div>\n")

	if len(p.Items) > 0 {
		buf.WriteString("        <h2>Tracks</h2>\n")
		buf.WriteString("        <table>\n")
		buf.WriteString("            <thead>\n")
		buf.WriteString("                <tr>\n")
		buf.WriteString("                    <th class=\"track-number\">#</th>\n")
		buf.WriteString("                    <th>Track Name</th>\n")
		buf.WriteString("                    <th>Artist</th>\n")
		buf.WriteString("                    <th>Album</th>\n")
		buf.WriteString("                    <th>Added Date</th>\n")
		buf.WriteString("                </tr>\n")
		buf.WriteString("            </thead>\n")
		buf.WriteString("            <tbody>\n")

		for i, item := range p.Items {
			track := item.Track
			buf.WriteString("                <tr>\n")
			fmt.Fprintf(&buf, "                    <td class=\"track-number\">%d</td>\n", i+1)
			// The URI lands in the href attribute unescaped; see DESIGN.md.
			fmt.Fprintf(&buf, "                    <td><a href=\"%s\">%s</a></td>\n", track.TrackURI, escapeHTML(track.TrackName))
			fmt.Fprintf(&buf, "                    <td>%s</td>\n", escapeHTML(track.ArtistName))
			fmt.Fprintf(&buf, "                    <td>%s</td>\n", escapeHTML(track.AlbumName))
			fmt.Fprintf(&buf, "                    <td>%s</td>\n", escapeHTML(item.AddedDate))
			buf.WriteString("                </tr>\n")
		}

		buf.WriteString("            </tbody>\n")
		buf.WriteString("        </table>\n")
	}

	buf.WriteString("    </div>\n")

	buf.WriteString("    <a href=\"#\" class=\"back-to-top\">↑ Top</a>\n")

	buf.WriteString("</body>\n</html>")

	return buf.String()
}

func renderIndexHTML(pages []PageRef, title string) string {
	var buf bytes.Buffer

	writeHTMLHead(&buf, title, indexStyles)
	buf.WriteString("    <div class=\"container\">\n")

	fmt.Fprintf(&buf, "        <h1>%s</h1>\n", escapeHTML(title))

	buf.WriteString("        <div class=\"stats\">\n")
	buf.WriteString("            <div class=\"stat-card\">\n")
	buf.WriteString("                <h3>Total Playlists</h3>\n")
	fmt.Fprintf(&buf, "                <p>%d</p>\n", len(pages))
	buf.WriteString("            </div>\n")
	buf.WriteString("            <div class=\"stat-card\">\n")
	buf.WriteString("                <h3>Total Tracks</h3>\n")
	fmt.Fprintf(&buf, "                <p>%d</p>\n", totalTracks(pages))
	buf.WriteString("            </div>\n")
	buf.WriteString("        </div>\n")

	buf.WriteString("        <h2>Playlists</h2>\n")
	buf.WriteString("        <div class=\"playlist-grid\">\n")

	for _, page := range pages {
		buf.WriteString("            <div class=\"playlist-card\">\n")
		fmt.Fprintf(&buf, "                <h3><a href=\"%s\">%s</a></h3>\n", escapeHTML(page.Filename), escapeHTML(page.Playlist.Name))
		buf.WriteString("                <div class=\"playlist-meta\">\n")
		fmt.Fprintf(&buf, "                    %d tracks<br>\n", page.Playlist.TrackCount())
		fmt.Fprintf(&buf, "                    %d followers\n", page.Playlist.NumberOfFollowers)
		buf.WriteString("                </div>\n")
		buf.WriteString("            </div>\n")
	}

	buf.WriteString("        </div>\n")
	buf.WriteString("    </div>\n")
	buf.WriteString("</body>\n</html>")

	return buf.String()
}
