package library

import (
	"fmt"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

func (l *Library) loadPlaylists() ([]models.Playlist, error) {
	var playlists []models.Playlist
	ok, err := l.store.ReadJSON(store.KeyPlaylists, &playlists)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlists: %w", err)
	}
	if !ok {
		playlists = seedPlaylists()
		if err := l.store.WriteJSON(store.KeyPlaylists, playlists); err != nil {
			return nil, fmt.Errorf("failed to seed playlists: %w", err)
		}
		l.logger.Debug("seeded playlist collection", "count", len(playlists))
	}
	return playlists, nil
}

func (l *Library) savePlaylists(playlists []models.Playlist) error {
	if err := l.store.WriteJSON(store.KeyPlaylists, playlists); err != nil {
		return fmt.Errorf("failed to save playlists: %w", err)
	}
	return nil
}

// ListPlaylists returns every stored playlist.
func (l *Library) ListPlaylists() ([]models.Playlist, error) {
	return l.loadPlaylists()
}

// GetPlaylist returns the playlist with the given ID.
func (l *Library) GetPlaylist(playlistID string) (models.Playlist, error) {
	playlists, err := l.loadPlaylists()
	if err != nil {
		return models.Playlist{}, err
	}
	for _, p := range playlists {
		if p.ID == playlistID {
			return p, nil
		}
	}
	return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
}

// CreatePlaylist appends a playlist to the collection. Callers supply the
// full record; an empty ID gets a generated one.
func (l *Library) CreatePlaylist(playlist models.Playlist) (models.Playlist, error) {
	if err := playlist.Validate(); err != nil {
		return models.Playlist{}, err
	}
	if playlist.ID == "" {
		playlist.ID = shared.GenerateID()
	}
	if playlist.Songs == nil {
		playlist.Songs = []models.Song{}
	}

	playlists, err := l.loadPlaylists()
	if err != nil {
		return models.Playlist{}, err
	}
	playlists = append(playlists, playlist)
	if err := l.savePlaylists(playlists); err != nil {
		return models.Playlist{}, err
	}

	l.logger.Info("created playlist", "name", playlist.Name)
	return playlist, nil
}

// DeletePlaylist removes a playlist. Unknown IDs succeed without effect.
func (l *Library) DeletePlaylist(playlistID string) error {
	playlists, err := l.loadPlaylists()
	if err != nil {
		return err
	}

	kept := playlists[:0]
	for _, p := range playlists {
		if p.ID != playlistID {
			kept = append(kept, p)
		}
	}
	return l.savePlaylists(kept)
}

// AddSong appends a song to a playlist and recomputes the playlist's
// platform tag. Adding a song whose ID is already present, or targeting an
// unknown playlist, is a silent no-op.
func (l *Library) AddSong(playlistID string, song models.Song) error {
	playlists, err := l.loadPlaylists()
	if err != nil {
		return err
	}

	for i := range playlists {
		if playlists[i].ID != playlistID {
			continue
		}
		if playlists[i].HasSong(song.ID) {
			return nil
		}
		playlists[i].Songs = append(playlists[i].Songs, song)
		playlists[i].Platform = models.DerivePlatform(playlists[i].Songs, playlists[i].Platform)
		return l.savePlaylists(playlists)
	}
	return nil
}

// RemoveSong removes the song with the given ID from a playlist. The
// platform tag is left as-is; only additions recompute it.
func (l *Library) RemoveSong(playlistID, songID string) error {
	playlists, err := l.loadPlaylists()
	if err != nil {
		return err
	}

	for i := range playlists {
		if playlists[i].ID != playlistID {
			continue
		}
		kept := playlists[i].Songs[:0]
		for _, s := range playlists[i].Songs {
			if s.ID != songID {
				kept = append(kept, s)
			}
		}
		playlists[i].Songs = kept
		return l.savePlaylists(playlists)
	}
	return nil
}
