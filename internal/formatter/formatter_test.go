package formatter

import (
	"errors"
	"testing"

	"github.com/iainktaylor/spotify-converter/internal/shared"
)

func TestParseFormat(t *testing.T) {
	tc := []struct {
		name    string
		in      string
		want    Format
		wantErr bool
	}{
		{"markdown", "markdown", Markdown, false},
		{"html", "html", HTML, false},
		{"uppercase markdown", "MARKDOWN", Markdown, false},
		{"mixed case html", "Html", HTML, false},
		{"md shorthand rejected", "md", Markdown, true},
		{"empty rejected", "", Markdown, true},
		{"unknown rejected", "pdf", Markdown, true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error", tt.in)
				}
				if !errors.Is(err, shared.ErrInvalidFlag) {
					t.Errorf("expected ErrInvalidFlag, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		if got := Markdown.Extension(); got != "md" {
			t.Errorf("Markdown.Extension() = %q, want md", got)
		}
		if got := HTML.Extension(); got != "html" {
			t.Errorf("HTML.Extension() = %q, want html", got)
		}
	})

	t.Run("IndexFilename", func(t *testing.T) {
		if got := Markdown.IndexFilename(); got != "index.md" {
			t.Errorf("Markdown.IndexFilename() = %q, want index.md", got)
		}
		if got := HTML.IndexFilename(); got != "index.html" {
			t.Errorf("HTML.IndexFilename() = %q, want index.html", got)
		}
	})

	t.Run("String", func(t *testing.T) {
		if got := Markdown.String(); got != "markdown" {
			t.Errorf("Markdown.String() = %q, want markdown", got)
		}
		if got := HTML.String(); got != "html" {
			t.Errorf("HTML.String() = %q, want html", got)
		}
	})
}

func TestRenderingIsIdempotent(t *testing.T) {
	p := testPlaylist()
	pages := []PageRef{{Playlist: p, Filename: "Road-Trip.md"}}

	for _, f := range []Format{Markdown, HTML} {
		if RenderPlaylist(p, f) != RenderPlaylist(p, f) {
			t.Errorf("RenderPlaylist not byte-identical across runs for %v", f)
		}
		if RenderIndex(pages, f, "") != RenderIndex(pages, f, "") {
			t.Errorf("RenderIndex not byte-identical across runs for %v", f)
		}
	}
}
