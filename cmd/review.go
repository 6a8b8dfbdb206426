package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/urfave/cli/v3"
)

// ReviewList prints stored reviews, newest first.
func (r *Runner) ReviewList(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}

	reviews, err := r.library.ListReviews()
	if err != nil {
		return fmt.Errorf("failed to list reviews: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(reviews, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Reviews (%d)", len(reviews)))
	for _, review := range reviews {
		stars := strings.Repeat("★", review.Rating) + strings.Repeat("☆", 5-review.Rating)
		r.writePlain("%s  %s - %s  %s\n", review.Date, review.Song.Artist, review.Song.Title, stars)
		r.writePlain("   %s: %s\n", review.Username, review.Content)
	}
	return nil
}

// ReviewAdd searches the catalogs and posts a review for the top result.
func (r *Runner) ReviewAdd(ctx context.Context, cmd *cli.Command) error {
	if r.library == nil {
		return fmt.Errorf("%w: library not initialized", shared.ErrServiceUnavailable)
	}
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog not initialized", shared.ErrServiceUnavailable)
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	songs, err := r.catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if len(songs) == 0 {
		return fmt.Errorf("%w: no results for %q", shared.ErrSongNotFound, query)
	}

	review, err := r.library.AddReview(songs[0], cmd.Int("rating"), cmd.String("comment"))
	if err != nil {
		return fmt.Errorf("failed to post review: %w", err)
	}

	r.writePlainln("✓ Reviewed %s - %s (%d/5)", review.Song.Artist, review.Song.Title, review.Rating)
	return nil
}
