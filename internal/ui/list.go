package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/iainktaylor/spotify-converter/internal/models"
)

var _ list.Item = playlistItem{}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist *models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d tracks • %d followers", i.playlist.TrackCount(), i.playlist.NumberOfFollowers)
	if i.playlist.LastModifiedDate != "" {
		desc = fmt.Sprintf("%s • modified %s", desc, i.playlist.LastModifiedDate)
	}
	return desc
}
