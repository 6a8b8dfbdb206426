package main

import (
	"context"
	"fmt"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries both catalogs and prints the combined results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	r.logger.Debugf("searching catalogs for %q", query)

	songs, err := r.catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Results for %q (%d)", query, len(songs)))
	for i, song := range songs {
		r.writePlain("%d. %s - %s [%s, %s]\n", i+1, song.Artist, song.Title, song.Platform, song.Duration)
		r.writePlain("   ID: %s\n", song.ID)
	}
	return nil
}

// SongOfTheDay prints today's pick and optionally the archive.
func (r *Runner) SongOfTheDay(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	pick, history, err := r.library.SongOfTheDay()
	if err != nil {
		return fmt.Errorf("failed to load song of the day: %w", err)
	}

	if cmd.Bool("json") {
		if cmd.Bool("history") {
			return r.writeJSON(map[string]any{"today": pick, "history": history}, cmd.Bool("pretty"))
		}
		return r.writeJSON(pick, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Song of the Day")
	r.writePlain("%s - %s [%s]\n", pick.Song.Artist, pick.Song.Title, pick.Date)

	if cmd.Bool("history") && len(history) > 0 {
		r.writePlainln("Past picks:")
		for _, h := range history {
			r.writePlain("%s  %s - %s\n", h.Date, h.Song.Artist, h.Song.Title)
		}
	}
	return nil
}
