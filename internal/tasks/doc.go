// Package tasks orchestrates the conversion of a library export into static documents.
//
// # Core Operation
//
// The [DocEngine] interface defines one operation:
//
//	[DocEngine.Convert] : Full library → document set conversion
//	  - Creates the output directory
//	  - Sanitizes each playlist name into a file name (library order preserved)
//	  - Renders and writes one document per playlist in the requested format
//	  - Renders and writes the index document over the full collection
//	  - Returns per-page results, aggregate counts, and any duplicate file names
//
// # Progress Reporting
//
// Convert emits [ProgressUpdate] values on a caller-supplied channel for display
// by the CLI or TUI layer. Sends use select with default so a slow consumer never
// blocks the conversion.
//
// # Concurrency
//
// Page writes run on a small worker pool. Each playlist page is independent of
// the others; the only shared resource is the output directory namespace, and
// distinct sanitized names never race. Pages whose sanitized names collide are
// held out of the pool and written sequentially in library order, so the last
// playlist in the library always owns the file; the collisions are recorded in
// the result so callers can warn about the overwrite. A worker count of 1
// gives fully sequential reference behavior.
//
// # Implementation
//
// [ConvertEngine] implements [DocEngine] with no external dependencies beyond
// the filesystem; rendering itself is pure and cannot fail, so every error the
// engine returns is an I/O error.
package tasks
