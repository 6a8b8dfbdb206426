package models

import (
	"fmt"
	"strings"

	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
)

// Platform identifies which catalog a song (or a playlist's songs) came from.
type Platform string

const (
	PlatformSpotify Platform = "spotify"
	PlatformYouTube Platform = "youtube"
	PlatformMixed   Platform = "mixed"
)

// Role controls access to administrative operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Song is a catalog track. Songs have no independent lifecycle: they are
// embedded by value wherever they appear, and two songs are the same song
// when their IDs match.
type Song struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	AlbumCover string   `json:"albumCover"`
	Platform   Platform `json:"platform"`
	Duration   string   `json:"duration"`
	URI        string   `json:"uri,omitempty"`
	PreviewURL string   `json:"previewUrl,omitempty"`
}

// User is an account record. The password field is plaintext: the original
// system stores it that way and fixing that is explicitly out of scope.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role"`
}

// Validate checks that the user carries the fields every stored account needs.
func (u User) Validate() error {
	if u.Username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrInvalidInput)
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", shared.ErrInvalidInput)
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, u.Role)
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Playlist is an ordered sequence of songs owned (by reference, not enforced)
// by a user. The Platform field is derived from the contained songs.
type Playlist struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatorID string   `json:"creatorId"`
	Songs     []Song   `json:"songs"`
	CoverURL  string   `json:"coverUrl"`
	Platform  Platform `json:"platform"`
}

// Validate checks that the playlist can be stored.
func (p Playlist) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}
	return nil
}

// HasSong reports whether a song with the given ID is already present.
func (p Playlist) HasSong(songID string) bool {
	for _, s := range p.Songs {
		if s.ID == songID {
			return true
		}
	}
	return false
}

// Review is a user's rating of a song. The author's username and avatar are
// snapshotted at post time and never updated afterwards; the song is embedded
// whole rather than referenced.
type Review struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	UserAvatar string `json:"userAvatar"`
	Song       Song   `json:"song"`
	Rating     int    `json:"rating"`
	Content    string `json:"content"`
	Date       string `json:"date"`
}

// Validate checks the review's rating bounds and content.
func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", shared.ErrInvalidInput)
	}
	if r.Content == "" {
		return fmt.Errorf("%w: review content is required", shared.ErrInvalidInput)
	}
	return nil
}

// DayPick is the song of the day for one calendar date.
type DayPick struct {
	Date string `json:"date"`
	Song Song   `json:"song"`
}

// DerivePlatform computes a playlist's platform tag from its songs: "mixed"
// when songs span both catalogs, the single catalog present otherwise. With no
// songs from either catalog the current tag is kept unchanged.
//
// The add path recomputes on every mutation; the remove path intentionally
// does not, so a playlist that was ever mixed may keep the tag after the last
// cross-platform song is removed.
func DerivePlatform(songs []Song, current Platform) Platform {
	var hasSpotify, hasYouTube bool
	for _, s := range songs {
		switch s.Platform {
		case PlatformSpotify:
			hasSpotify = true
		case PlatformYouTube:
			hasYouTube = true
		}
	}

	switch {
	case hasSpotify && hasYouTube:
		return PlatformMixed
	case hasSpotify:
		return PlatformSpotify
	case hasYouTube:
		return PlatformYouTube
	default:
		return current
	}
}

// FormatDuration renders a millisecond track length as m:ss for display.
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
