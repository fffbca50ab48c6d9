package tasks

import "fmt"

// ProgressUpdate represents a progress event during a conversion run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	PrepareOutput Phase = iota
	WritePages
	WriteIndex
)

func (p Phase) String() string {
	switch p {
	case PrepareOutput:
		return "prepare_output"
	case WritePages:
		return "write_pages"
	case WriteIndex:
		return "write_index"
	default:
		return ""
	}
}

func preparingOutputUpdate(dir string, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PrepareOutput,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Writing %d playlists to %s...", total, dir),
	}
}

func pageWrittenUpdate(step, total int, filename string, trackCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WritePages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("✓ Created: %s (%d tracks)", filename, trackCount),
	}
}

func pageFailedUpdate(step, total int, filename string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WritePages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, filename, err),
	}
}

func indexWrittenUpdate(filename string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteIndex,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("✓ Created: %s", filename),
	}
}
