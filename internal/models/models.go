package models

import "encoding/json"

// Library is the root of a Spotify library export.
type Library struct {
	Playlists []Playlist `json:"playlists"`
}

// Playlist represents a single exported playlist.
//
// LastModifiedDate and AddedDate values are opaque strings rendered verbatim;
// they are never parsed as dates. Collaborators and Description are carried
// through the model but never rendered.
type Playlist struct {
	Name              string            `json:"name"`
	LastModifiedDate  string            `json:"lastModifiedDate"`
	Collaborators     []json.RawMessage `json:"collaborators"`
	Items             []Item            `json:"items"`
	Description       json.RawMessage   `json:"description"`
	NumberOfFollowers int64             `json:"numberOfFollowers"`
}

// Item is one playlist entry. Episode, Audiobook, and LocalTrack are opaque
// slots present in the export schema; only Track is rendered.
type Item struct {
	Track      Track           `json:"track"`
	Episode    json.RawMessage `json:"episode"`
	Audiobook  json.RawMessage `json:"audiobook"`
	LocalTrack json.RawMessage `json:"localTrack"`
	AddedDate  string          `json:"addedDate"`
}

// Track represents a song within a playlist item.
type Track struct {
	TrackName  string `json:"trackName"`
	ArtistName string `json:"artistName"`
	AlbumName  string `json:"albumName"`
	TrackURI   string `json:"trackUri"`
}

// TrackCount returns the number of items in the playlist.
func (p *Playlist) TrackCount() int {
	return len(p.Items)
}

// PlaylistCount returns the number of playlists in the library.
func (l *Library) PlaylistCount() int {
	return len(l.Playlists)
}

// TotalTracks returns the summed item count across all playlists.
func (l *Library) TotalTracks() int {
	total := 0
	for i := range l.Playlists {
		total += len(l.Playlists[i].Items)
	}
	return total
}
