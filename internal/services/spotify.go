// Spotify Web API [Catalog] implementation
//
// Rides the delegated access token held by [auth.Manager]. A 401 from the
// API means the token went stale between the local expiry check and the
// request, so the credential is discarded on the spot.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
)

const (
	spotifyResultLimit = 5

	// Shown when a track carries no album art.
	placeholderCover = "https://picsum.photos/300/300?grayscale"
)

// bearerTransport injects the delegated token into every outgoing request.
type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// SpotifyService implements [Catalog] against the Spotify Web API.
type SpotifyService struct {
	creds  *auth.Manager
	logger *log.Logger

	// transport underlies the per-search client; tests swap it out.
	transport http.RoundTripper
}

// NewSpotifyService creates a Spotify catalog client over the given
// credential manager.
func NewSpotifyService(creds *auth.Manager, logger *log.Logger) *SpotifyService {
	return &SpotifyService{creds: creds, logger: logger}
}

// Name returns the catalog name.
func (s *SpotifyService) Name() string {
	return "Spotify"
}

// Connected reports whether a usable delegated credential is available.
func (s *SpotifyService) Connected() bool {
	return s.creds.Connected()
}

// Search queries the track search endpoint with the delegated credential.
// Without one it fails immediately with [shared.ErrNotAuthenticated].
func (s *SpotifyService) Search(ctx context.Context, query string) ([]models.Song, error) {
	token, ok := s.creds.Token()
	if !ok {
		return nil, shared.ErrNotAuthenticated
	}

	client := spotify.New(&http.Client{
		Transport: &bearerTransport{token: token, base: s.transport},
	})

	result, err := client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(spotifyResultLimit))
	if err != nil {
		var apiErr spotify.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			s.logger.Warn("delegated credential rejected, discarding")
			if derr := s.creds.Disconnect(); derr != nil {
				s.logger.Error("failed to discard credential", "error", derr)
			}
			return nil, shared.ErrTokenExpired
		}
		return nil, fmt.Errorf("spotify search failed: %w", err)
	}

	if result.Tracks == nil {
		return []models.Song{}, nil
	}

	songs := make([]models.Song, 0, len(result.Tracks.Tracks))
	for _, track := range result.Tracks.Tracks {
		artist := ""
		if len(track.Artists) > 0 {
			artist = track.Artists[0].Name
		}
		cover := placeholderCover
		if len(track.Album.Images) > 0 {
			cover = track.Album.Images[0].URL
		}
		songs = append(songs, models.Song{
			ID:         string(track.ID),
			Title:      track.Name,
			Artist:     artist,
			AlbumCover: cover,
			Platform:   models.PlatformSpotify,
			Duration:   models.FormatDuration(int(track.Duration)),
			URI:        string(track.URI),
			PreviewURL: track.PreviewURL,
		})
	}
	return songs, nil
}
