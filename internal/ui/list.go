package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
)

var (
	_ list.Item = songItem{}
	_ list.Item = playlistItem{}
)

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", i.song.Artist, i.song.Platform, i.song.Duration)
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%d songs • %s", len(i.playlist.Songs), i.playlist.Platform)
}
