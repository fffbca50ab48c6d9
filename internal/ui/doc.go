// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for library conversion:
//  1. [PlaylistListView] : Browse the playlists found in the loaded export
//  2. [ConfirmView] : Confirm output directory and format before writing
//  3. [ConvertView] : Monitor real-time progress while pages are written
//  4. [ResultView] : Display totals, duplicate name warnings, and failures
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the ConvertEngine, providing non-blocking status reporting during conversion.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
