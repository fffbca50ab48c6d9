package formatter

import (
	"fmt"
	"strings"

	"github.com/iainktaylor/spotify-converter/internal/models"
	"github.com/iainktaylor/spotify-converter/internal/shared"
)

// DefaultIndexTitle is the heading used on the index document unless overridden.
const DefaultIndexTitle = "My Spotify Playlists"

// Format selects the output document format.
type Format int

const (
	Markdown Format = iota
	HTML
)

// ParseFormat resolves a case-insensitive format selector.
// Only "markdown" and "html" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "markdown":
		return Markdown, nil
	case "html":
		return HTML, nil
	default:
		return Markdown, fmt.Errorf("%w: format must be either 'markdown' or 'html', got %q", shared.ErrInvalidFlag, s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == HTML {
		return "html"
	}
	return "md"
}

func (f Format) String() string {
	if f == HTML {
		return "html"
	}
	return "markdown"
}

// IndexFilename returns the name of the index document for the format.
func (f Format) IndexFilename() string {
	return "index." + f.Extension()
}

// PageRef pairs a playlist with the file name its document is written under.
// Keeping the pair in one ordered sequence guarantees the index renderer never
// sees mismatched playlist/filename lists.
type PageRef struct {
	Playlist *models.Playlist
	Filename string
}

// RenderPlaylist produces the complete document body for one playlist.
func RenderPlaylist(p *models.Playlist, f Format) string {
	if f == HTML {
		return renderPlaylistHTML(p)
	}
	return renderPlaylistMarkdown(p)
}

// RenderIndex produces the summary document listing every playlist page.
func RenderIndex(pages []PageRef, f Format, title string) string {
	if title == "" {
		title = DefaultIndexTitle
	}
	if f == HTML {
		return renderIndexHTML(pages, title)
	}
	return renderIndexMarkdown(pages, title)
}

func totalTracks(pages []PageRef) int {
	total := 0
	for _, page := range pages {
		total += page.Playlist.TrackCount()
	}
	return total
}
