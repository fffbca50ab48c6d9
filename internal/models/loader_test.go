package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iainktaylor/spotify-converter/internal/shared"
)

const exportFixture = `{
	"playlists": [
		{
			"name": "Road/Trip",
			"lastModifiedDate": "2023-01-01",
			"collaborators": [],
			"items": [
				{
					"track": {
						"trackName": "A & B",
						"artistName": "X",
						"albumName": "Y",
						"trackUri": "spotify:track:1"
					},
					"episode": null,
					"audiobook": null,
					"localTrack": null,
					"addedDate": "2023-01-02"
				}
			],
			"description": null,
			"numberOfFollowers": 5
		}
	]
}`

func TestParseLibrary(t *testing.T) {
	t.Run("parses a full export", func(t *testing.T) {
		lib, err := ParseLibrary([]byte(exportFixture))
		if err != nil {
			t.Fatalf("ParseLibrary failed: %v", err)
		}

		if len(lib.Playlists) != 1 {
			t.Fatalf("expected 1 playlist, got %d", len(lib.Playlists))
		}

		pl := lib.Playlists[0]
		if pl.Name != "Road/Trip" {
			t.Errorf("expected name Road/Trip, got %q", pl.Name)
		}
		if pl.LastModifiedDate != "2023-01-01" {
			t.Errorf("expected lastModifiedDate 2023-01-01, got %q", pl.LastModifiedDate)
		}
		if pl.NumberOfFollowers != 5 {
			t.Errorf("expected 5 followers, got %d", pl.NumberOfFollowers)
		}
		if pl.TrackCount() != 1 {
			t.Errorf("expected 1 item, got %d", pl.TrackCount())
		}

		track := pl.Items[0].Track
		if track.TrackName != "A & B" {
			t.Errorf("expected track name 'A & B', got %q", track.TrackName)
		}
		if track.ArtistName != "X" {
			t.Errorf("expected artist X, got %q", track.ArtistName)
		}
		if track.AlbumName != "Y" {
			t.Errorf("expected album Y, got %q", track.AlbumName)
		}
		if track.TrackURI != "spotify:track:1" {
			t.Errorf("expected URI spotify:track:1, got %q", track.TrackURI)
		}
		if pl.Items[0].AddedDate != "2023-01-02" {
			t.Errorf("expected addedDate 2023-01-02, got %q", pl.Items[0].AddedDate)
		}
	})

	t.Run("negative follower counts pass through", func(t *testing.T) {
		lib, err := ParseLibrary([]byte(`{"playlists":[{"name":"p","lastModifiedDate":"","collaborators":[],"items":[],"description":null,"numberOfFollowers":-3}]}`))
		if err != nil {
			t.Fatalf("ParseLibrary failed: %v", err)
		}
		if lib.Playlists[0].NumberOfFollowers != -3 {
			t.Errorf("expected -3 followers, got %d", lib.Playlists[0].NumberOfFollowers)
		}
	})

	t.Run("malformed JSON wraps ErrInvalidInput", func(t *testing.T) {
		_, err := ParseLibrary([]byte(`{"playlists": [`))
		if err == nil {
			t.Fatal("expected error for malformed JSON")
		}
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestLoadLibrary(t *testing.T) {
	t.Run("loads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export.json")
		if err := os.WriteFile(path, []byte(exportFixture), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		lib, err := LoadLibrary(path)
		if err != nil {
			t.Fatalf("LoadLibrary failed: %v", err)
		}
		if lib.PlaylistCount() != 1 {
			t.Errorf("expected 1 playlist, got %d", lib.PlaylistCount())
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestLibraryCounts(t *testing.T) {
	lib := &Library{
		Playlists: []Playlist{
			{Name: "a", Items: []Item{{}, {}, {}}},
			{Name: "b"},
			{Name: "c", Items: []Item{{}}},
		},
	}

	if lib.PlaylistCount() != 3 {
		t.Errorf("expected 3 playlists, got %d", lib.PlaylistCount())
	}
	if lib.TotalTracks() != 4 {
		t.Errorf("expected 4 total tracks, got %d", lib.TotalTracks())
	}
}
