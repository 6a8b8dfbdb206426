package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
)

// Aggregator fans a query out to both catalogs and concatenates whatever
// comes back. Catalog failures are logged and swallowed: a search can come
// back empty but it never fails.
type Aggregator struct {
	youtube *YouTubeService
	spotify *SpotifyService
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewAggregator creates an aggregator over the two catalog clients.
func NewAggregator(yt *YouTubeService, sp *SpotifyService, logger *log.Logger) *Aggregator {
	return &Aggregator{
		youtube: yt,
		spotify: sp,
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		logger:  logger,
	}
}

// Name returns the catalog name.
func (a *Aggregator) Name() string {
	return "aggregate"
}

// Search queries both catalogs concurrently and returns YouTube results
// followed by Spotify results. Without a delegated Spotify credential the
// Spotify half is served from the featured pool instead. An empty query is
// still dispatched; the catalogs decide what it matches.
//
// The returned error is always nil: catalog failures degrade to fewer
// results rather than failing the search.
func (a *Aggregator) Search(ctx context.Context, query string) ([]models.Song, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		a.logger.Warn("search cancelled while throttled", "error", err)
		return []models.Song{}, nil
	}

	var (
		wg      sync.WaitGroup
		ytSongs []models.Song
		spSongs []models.Song
	)

	if a.youtube.Configured() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			songs, err := a.youtube.Search(ctx, query)
			if err != nil {
				a.logger.Warn("catalog search failed", "catalog", a.youtube.Name(), "error", err)
				return
			}
			ytSongs = songs
		}()
	}

	if a.spotify.Connected() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			songs, err := a.spotify.Search(ctx, query)
			if err != nil {
				a.logger.Warn("catalog search failed", "catalog", a.spotify.Name(), "error", err)
				return
			}
			spSongs = songs
		}()
	} else {
		spSongs = substituteResults(query)
	}

	wg.Wait()

	results := make([]models.Song, 0, len(ytSongs)+len(spSongs))
	results = append(results, ytSongs...)
	results = append(results, spSongs...)
	return results, nil
}

// substituteResults serves the Spotify half of a search from the featured
// pool when no credential is delegated. Matches get fresh IDs so repeated
// searches never collide with playlist de-duplication.
func substituteResults(query string) []models.Song {
	needle := strings.ToLower(query)

	matches := []models.Song{}
	for _, s := range models.FeaturedSongs() {
		if s.Platform != models.PlatformSpotify {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), needle) ||
			strings.Contains(strings.ToLower(s.Artist), needle) {
			s.ID = shared.GenerateID()
			matches = append(matches, s)
		}
	}
	return matches
}
