package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jimmyu2foru18/Music-Website/internal/formatter"
	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/tasks"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/urfave/cli/v3"
)

// fuzzyMatchThreshold is the minimum Jaro-Winkler similarity for a playlist
// name to count as a match when no exact ID or name matches.
const fuzzyMatchThreshold = 0.8

// PlaylistList lists stored playlists.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	playlists, err := r.library.ListPlaylists()
	if err != nil {
		return fmt.Errorf("failed to list playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(playlists)))
	for _, p := range playlists {
		r.writePlain("%s  %s (%d songs, %s)\n", p.ID, p.Name, len(p.Songs), p.Platform)
	}
	return nil
}

// PlaylistShow prints a playlist resolved by ID or fuzzy name.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.resolvePlaylist(cmd.StringArg("name"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlainHeader(playlist.Name)
	r.writePlain("ID:       %s\n", playlist.ID)
	r.writePlain("Platform: %s\n", playlist.Platform)
	r.writePlain("Songs:    %d\n\n", len(playlist.Songs))
	for i, song := range playlist.Songs {
		r.writePlain("%d. %s - %s [%s]\n", i+1, song.Artist, song.Title, song.Duration)
	}
	return nil
}

// PlaylistCreate creates an empty playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	playlist := models.Playlist{
		Name:     name,
		CoverURL: cmd.String("cover"),
	}
	if user := r.library.CurrentUser(); user != nil {
		playlist.CreatorID = user.ID
	}

	created, err := r.library.CreatePlaylist(playlist)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	r.writePlainln("✓ Created playlist %s (%s)", created.Name, created.ID)
	return nil
}

// PlaylistDelete deletes a playlist resolved by ID or fuzzy name.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.resolvePlaylist(cmd.StringArg("name"))
	if err != nil {
		return err
	}

	if err := r.library.DeletePlaylist(playlist.ID); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	r.writePlainln("✓ Deleted playlist %s", playlist.Name)
	return nil
}

// PlaylistAddSong searches the catalogs and adds the top result to a playlist.
func (r *Runner) PlaylistAddSong(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	playlist, err := r.resolvePlaylist(cmd.StringArg("name"))
	if err != nil {
		return err
	}

	query := cmd.String("query")
	songs, err := r.catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if len(songs) == 0 {
		return fmt.Errorf("%w: no results for %q", shared.ErrSongNotFound, query)
	}

	song := songs[0]
	if err := r.library.AddSong(playlist.ID, song); err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	r.writePlainln("✓ Added %s - %s to %s", song.Artist, song.Title, playlist.Name)
	return nil
}

// PlaylistRemoveSong removes a song by ID from a playlist.
func (r *Runner) PlaylistRemoveSong(ctx context.Context, cmd *cli.Command) error {
	playlist, err := r.resolvePlaylist(cmd.StringArg("name"))
	if err != nil {
		return err
	}

	songID := cmd.String("song")
	if !playlist.HasSong(songID) {
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, songID)
	}

	if err := r.library.RemoveSong(playlist.ID, songID); err != nil {
		return fmt.Errorf("failed to remove song: %w", err)
	}

	r.writePlainln("✓ Removed %s from %s", songID, playlist.Name)
	return nil
}

// PlaylistExport writes a playlist to disk in the requested format.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("all") {
		return r.exportAll(ctx, cmd)
	}

	playlist, err := r.resolvePlaylist(cmd.StringArg("name"))
	if err != nil {
		return err
	}

	format := cmd.String("format")
	output := cmd.String("output")

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(playlist, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlainln("✓ Exported %s", playlist.Name)
		r.writePlain("  %s\n  %s\n", result.SongsFile, result.MetadataFile)
	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(playlist, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlainln("✓ Exported %s to %s", playlist.Name, result.Directory)
		for _, f := range result.Files {
			r.writePlain("  %s\n", f)
		}
	case "text", "txt":
		path, err := formatter.WriteTextExport(playlist, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		r.writePlainln("✓ Exported %s to %s", playlist.Name, path)
	default:
		return fmt.Errorf("%w: unknown format %q (want csv, markdown, or text)", shared.ErrInvalidArgument, format)
	}

	return nil
}

// exportAll exports every playlist concurrently, streaming progress to the output.
func (r *Runner) exportAll(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	exporter := tasks.NewExporter(r.library)
	prog := make(chan tasks.ProgressUpdate, 32)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := exporter.BulkExport(ctx, prog, nil, tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
	})
	close(prog)
	<-done
	if err != nil {
		return fmt.Errorf("bulk export failed: %w", err)
	}

	r.writePlainln("✓ Exported %d/%d playlists to %s", result.SuccessfulExports, result.TotalPlaylists, result.OutputDirectory)
	if result.FailedExports > 0 {
		r.writePlain("⚠ %d exports failed (see %s)\n", result.FailedExports, result.ManifestPath)
	}
	return nil
}

// resolvePlaylist finds a playlist by exact ID, exact name (case-insensitive),
// or closest fuzzy name match above [fuzzyMatchThreshold].
func (r *Runner) resolvePlaylist(nameOrID string) (models.Playlist, error) {
	if r.library == nil {
		return models.Playlist{}, fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}
	if nameOrID == "" {
		return models.Playlist{}, fmt.Errorf("%w: playlist name or ID", shared.ErrMissingArgument)
	}

	if playlist, err := r.library.GetPlaylist(nameOrID); err == nil {
		return playlist, nil
	} else if !errors.Is(err, shared.ErrPlaylistNotFound) {
		return models.Playlist{}, err
	}

	playlists, err := r.library.ListPlaylists()
	if err != nil {
		return models.Playlist{}, fmt.Errorf("failed to list playlists: %w", err)
	}

	query := strings.ToLower(nameOrID)
	for _, p := range playlists {
		if strings.ToLower(p.Name) == query {
			return p, nil
		}
	}

	jw := metrics.NewJaroWinkler()
	var best models.Playlist
	bestScore := 0.0
	for _, p := range playlists {
		score := strutil.Similarity(query, strings.ToLower(p.Name), jw)
		if score > bestScore {
			bestScore = score
			best = p
		}
	}

	if bestScore < fuzzyMatchThreshold {
		return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, nameOrID)
	}

	r.logger.Debugf("fuzzy matched %q to %q (%.2f)", nameOrID, best.Name, bestScore)
	return best, nil
}
