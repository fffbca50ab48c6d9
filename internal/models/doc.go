// Package models defines the data model for a Spotify library export.
//
// The types mirror the JSON document produced by Spotify's "Download your data"
// export, top level { "playlists": [...] } with lower camel case field names:
//   - [Library] : Root collection of playlists, order preserved from input
//   - [Playlist] : Named playlist with opaque metadata and an ordered item list
//   - [Item] : Playlist entry carrying a track plus opaque episode/audiobook slots
//   - [Track] : Song metadata with the Spotify URI used as a hyperlink target
//
// The model is read-only after load: [LoadLibrary] builds it once per run and the
// renderers only traverse it. No field is validated or repaired; values such as
// negative follower counts pass through to the output unchanged.
package models
