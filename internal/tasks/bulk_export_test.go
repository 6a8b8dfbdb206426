package tasks

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Jimmyu2foru18/Music-Website/internal/library"
	"github.com/Jimmyu2foru18/Music-Website/internal/session"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
	th "github.com/Jimmyu2foru18/Music-Website/internal/testing"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sess, err := session.New(st)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	return NewExporter(library.New(st, sess, shared.NewLogger(nil)))
}

func TestBulkExport(t *testing.T) {
	t.Run("exports every playlist when no IDs given", func(t *testing.T) {
		exporter := newTestExporter(t)
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := exporter.BulkExport(context.Background(), nil, nil, BulkExportOpts{
			Format:    "json",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("bulk export failed: %v", err)
		}

		if result.TotalPlaylists != 3 {
			t.Errorf("expected 3 playlists, got %d", result.TotalPlaylists)
		}
		if result.SuccessfulExports != 3 {
			t.Errorf("expected 3 successful exports, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 0 {
			t.Errorf("expected no failures, got %d", result.FailedExports)
		}

		th.AssertFileExists(t, filepath.Join(outputDir, "p1.json"))
		th.AssertFileExists(t, filepath.Join(outputDir, "export_manifest.json"))
	})

	t.Run("exports selected playlists as CSV", func(t *testing.T) {
		exporter := newTestExporter(t)
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := exporter.BulkExport(context.Background(), nil, []string{"p1", "p2"}, BulkExportOpts{
			Format:    "csv",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("bulk export failed: %v", err)
		}

		if result.SuccessfulExports != 2 {
			t.Errorf("expected 2 successful exports, got %d", result.SuccessfulExports)
		}
		th.AssertFileExists(t, filepath.Join(outputDir, "p1_songs.csv"))
		th.AssertFileExists(t, filepath.Join(outputDir, "p2_metadata.json"))
	})

	t.Run("unknown playlist ID fails the run", func(t *testing.T) {
		exporter := newTestExporter(t)

		_, err := exporter.BulkExport(context.Background(), nil, []string{"missing"}, BulkExportOpts{
			Format:    "json",
			OutputDir: filepath.Join(t.TempDir(), "export"),
		})
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("reports progress on a buffered channel", func(t *testing.T) {
		exporter := newTestExporter(t)
		prog := make(chan ProgressUpdate, 16)

		_, err := exporter.BulkExport(context.Background(), prog, []string{"p3"}, BulkExportOpts{
			Format:    "text",
			OutputDir: filepath.Join(t.TempDir(), "export"),
		})
		if err != nil {
			t.Fatalf("bulk export failed: %v", err)
		}
		close(prog)

		var phases []Phase
		for update := range prog {
			phases = append(phases, update.Phase)
		}
		if len(phases) < 2 {
			t.Fatalf("expected at least 2 progress updates, got %d", len(phases))
		}
		if phases[0] != FetchPlaylists {
			t.Errorf("expected first update to be fetch_playlists, got %s", phases[0])
		}
		if phases[len(phases)-1] != ExportPlaylist {
			t.Errorf("expected final update to be export_playlist, got %s", phases[len(phases)-1])
		}
	})

	t.Run("sendProgress never blocks on a full channel", func(t *testing.T) {
		exporter := newTestExporter(t)
		prog := make(chan ProgressUpdate, 1)
		prog <- ProgressUpdate{}

		exporter.sendProgress(prog, fetchingPlaylistsUpdate(1, 1))
	})
}
