// Package tasks orchestrates long-running library operations with real-time progress reporting.
//
// # Core Operations
//
// [Exporter.BulkExport] writes many playlists to disk concurrently:
//   - Resolves each playlist from the library
//   - Exports with a bounded worker pool, rate limited for cover downloads
//   - Writes a manifest file summarizing successes and failures
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates
//
// The [ProgressUpdate] struct contains phase, step counters, and messages for
// display. Updates use select with default to prevent blocking.
package tasks
