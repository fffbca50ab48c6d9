package formatter

import "strings"

// SanitizeFilename derives a filesystem-safe file name from a playlist's display
// name. Each of the characters / \ : * ? " < > | is replaced with a hyphen; all
// other runes pass through unchanged. Leading and trailing whitespace is trimmed
// and the extension is appended.
//
// Names are not made unique: two playlists sanitizing to the same name share a
// file and the later write wins.
func SanitizeFilename(name, ext string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		default:
			return r
		}
	}, name)

	return strings.TrimSpace(mapped) + "." + ext
}
