// Package formatter renders playlist documents in Markdown and HTML.
//
// The package is the core of the converter: given the read-only data model it
// produces complete standalone document strings, one per playlist plus an index
// summarizing the whole library. Rendering is pure string assembly with no I/O;
// identical input always produces byte-identical output.
//
// Two escaping regimes apply:
//   - Markdown cells escape `|`, `[` and `]` with a backslash so track names
//     cannot break the table or link syntax; all other text is inserted verbatim.
//   - HTML escapes &, <, >, " and ' (ampersand first) in every user-supplied
//     text value. The track URI in the href attribute is deliberately left raw;
//     see DESIGN.md for the tradeoff.
//
// [SanitizeFilename] derives filesystem-safe file names for playlist pages, and
// [ParseFormat] gates the two supported output formats before any rendering runs.
package formatter
