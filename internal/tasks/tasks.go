package tasks

import (
	"github.com/Jimmyu2foru18/Music-Website/internal/library"
)

// Exporter runs bulk operations over library playlists.
type Exporter struct {
	library *library.Library
}

// NewExporter creates an Exporter backed by the given library.
func NewExporter(lib *library.Library) *Exporter {
	return &Exporter{library: lib}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Exporter) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
