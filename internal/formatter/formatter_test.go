package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	th "github.com/Jimmyu2foru18/Music-Website/internal/testing"
)

func testPlaylist() models.Playlist {
	return models.Playlist{
		ID:        "p_test",
		Name:      "Road Trip",
		CreatorID: "u1",
		Platform:  models.PlatformMixed,
		CoverURL:  "",
		Songs: []models.Song{
			{
				ID:       "s_one",
				Title:    "Song One",
				Artist:   "Artist One",
				Platform: models.PlatformSpotify,
				Duration: "3:20",
			},
			{
				ID:       "s_two",
				Title:    "Song Two",
				Artist:   "Artist Two",
				Platform: models.PlatformYouTube,
				Duration: "Video",
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Artist,Platform,Duration") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "s_one,Song One,Artist One,spotify,3:20") {
			t.Errorf("CSV missing first song row, got: %s", output)
		}
		if !strings.Contains(output, "s_two,Song Two,Artist Two,youtube,Video") {
			t.Errorf("CSV missing second song row, got: %s", output)
		}
	})

	t.Run("ExportToCSV with empty playlist", func(t *testing.T) {
		playlist := testPlaylist()
		playlist.Songs = nil

		data, err := ExportToCSV(playlist)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected headers only, got %d lines", len(lines))
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testPlaylist(), "cover.jpg")
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "# Road Trip") {
			t.Errorf("Markdown missing title, got: %s", output)
		}
		if !strings.Contains(output, "![Cover](cover.jpg)") {
			t.Errorf("Markdown missing cover image, got: %s", output)
		}
		if !strings.Contains(output, "**Songs**: 2") {
			t.Errorf("Markdown missing song count, got: %s", output)
		}
		if !strings.Contains(output, "**Platform**: mixed") {
			t.Errorf("Markdown missing platform, got: %s", output)
		}
		if !strings.Contains(output, "1. Artist One - Song One [3:20]") {
			t.Errorf("Markdown missing numbered song, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown without image", func(t *testing.T) {
		data, err := ExportToMarkdown(testPlaylist(), "")
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if strings.Contains(string(data), "![Cover]") {
			t.Error("expected no cover image reference")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Playlist: Road Trip") {
			t.Errorf("text missing playlist name, got: %s", output)
		}
		if !strings.Contains(output, "Songs: 2") {
			t.Errorf("text missing song count, got: %s", output)
		}
		if !strings.Contains(output, "2. Artist Two - Song Two") {
			t.Errorf("text missing numbered song, got: %s", output)
		}
	})

	t.Run("ToMetadataJSON drops songs", func(t *testing.T) {
		data, err := ToMetadataJSON(testPlaylist())
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, `"Road Trip"`) {
			t.Errorf("metadata missing name, got: %s", output)
		}
		if strings.Contains(output, "Song One") {
			t.Errorf("metadata should not embed songs, got: %s", output)
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "export")

		result, err := WriteCSVExport(testPlaylist(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.SongsFile)
		th.AssertFileExists(t, result.MetadataFile)

		content := th.MustReadFile(t, result.SongsFile)
		if !strings.Contains(content, "Song One") {
			t.Errorf("CSV file missing song data: %s", content)
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "md-export")

		result, err := WriteMarkdownExport(testPlaylist(), dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if result.Directory != dir {
			t.Errorf("unexpected directory %s", result.Directory)
		}

		readme := filepath.Join(dir, "README.md")
		th.AssertFileExists(t, readme)

		content := th.MustReadFile(t, readme)
		if !strings.Contains(content, "# Road Trip") {
			t.Errorf("README missing title: %s", content)
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "songs.txt")

		written, err := WriteTextExport(testPlaylist(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("unexpected path %s", written)
		}
		th.AssertFileExists(t, path)
	})
}

func TestDownloadImage(t *testing.T) {
	if _, err := DownloadImage(""); err == nil {
		t.Error("expected an error for an empty URL")
	}
}
