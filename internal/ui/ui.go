package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jimmyu2foru18/Music-Website/internal/library"
	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/services"
)

// Keystrokes within this window collapse into one catalog lookup.
const searchDebounce = 400 * time.Millisecond

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	PlaylistPickView
)

type searchTickMsg struct {
	seq int
}

type searchResultsMsg struct {
	seq   int
	songs []models.Song
}

type playlistsLoadedMsg struct {
	playlists []models.Playlist
	err       error
}

type songAddedMsg struct {
	playlist string
	err      error
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog services.Catalog
	lib     *library.Library

	width  int
	height int

	input      textinput.Model
	resultList list.Model
	listReady  bool

	// searchSeq invalidates in-flight debounces and lookups after the
	// query changes.
	searchSeq int
	searching bool

	selectedSong *models.Song
	playlistList list.Model

	status string
	err    error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog services.Catalog, lib *library.Library) *Model {
	input := textinput.New()
	input.Placeholder = "Search songs or artists"
	input.Focus()
	input.CharLimit = 100

	return &Model{
		ctx:     ctx,
		view:    SearchView,
		catalog: catalog,
		lib:     lib,
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init shows the featured pool before the first keystroke.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return searchResultsMsg{seq: 0, songs: models.FeaturedSongs()}
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.resultList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case PlaylistPickView:
			return m.handlePickKeys(msg)
		}

	case searchTickMsg:
		// Only the newest debounce timer may fire a lookup.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.searching = true
		return m, m.runSearch(msg.seq, m.input.Value())

	case searchResultsMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.searching = false
		m.setResults(msg.songs)
		return m, nil

	case playlistsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = SearchView
			return m, nil
		}
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.playlistList.Title = fmt.Sprintf("Add '%s' to...", m.selectedSong.Title)
		m.view = PlaylistPickView
		return m, nil

	case songAddedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = fmt.Sprintf("Added to %s", msg.playlist)
		}
		m.selectedSong = nil
		m.view = SearchView
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.searchSeq++
		m.setResults(models.FeaturedSongs())
		return m, nil
	case "up", "ctrl+k", "down", "ctrl+j":
		if m.listReady {
			var cmd tea.Cmd
			m.resultList, cmd = m.resultList.Update(msg)
			return m, cmd
		}
		return m, nil
	case "enter":
		if !m.listReady {
			return m, nil
		}
		selected := m.resultList.SelectedItem()
		if selected == nil {
			return m, nil
		}
		item, ok := selected.(songItem)
		if !ok {
			return m, nil
		}
		song := item.song
		m.selectedSong = &song
		m.status = ""
		m.err = nil
		return m, m.loadPlaylists()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.status = ""
		m.err = nil
		m.searchSeq++
		if m.input.Value() == "" {
			m.setResults(models.FeaturedSongs())
			return m, cmd
		}
		seq := m.searchSeq
		debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchTickMsg{seq: seq}
		})
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

func (m *Model) handlePickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.selectedSong = nil
		m.view = SearchView
		return m, nil
	case "enter":
		selected := m.playlistList.SelectedItem()
		if selected == nil {
			return m, nil
		}
		item, ok := selected.(playlistItem)
		if !ok {
			return m, nil
		}
		return m, m.addSong(item.playlist, *m.selectedSong)
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PlaylistPickView:
		return m.renderPlaylistPick()
	default:
		return m.renderSearch()
	}
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Melody View")

	var status string
	switch {
	case m.err != nil:
		status = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	case m.searching:
		status = styles.warn.Render("Searching...")
	case m.status != "":
		status = styles.ok.Render(m.status)
	}

	listView := ""
	if m.listReady {
		listView = m.resultList.View()
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s", title, m.input.View(), status, listView, helpView)
}

func (m *Model) renderPlaylistPick() string {
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) setResults(songs []models.Song) {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}

	if !m.listReady {
		m.resultList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.resultList.SetShowHelp(false)
		m.resultList.SetFilteringEnabled(false)
		m.listReady = true
	} else {
		m.resultList.SetItems(items)
		m.resultList.ResetSelected()
	}

	if m.input.Value() == "" {
		m.resultList.Title = "Featured"
	} else {
		m.resultList.Title = fmt.Sprintf("Results for '%s'", m.input.Value())
	}
}

func (m *Model) runSearch(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		songs, _ := m.catalog.Search(m.ctx, query)
		return searchResultsMsg{seq: seq, songs: songs}
	}
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.lib.ListPlaylists()
		return playlistsLoadedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) addSong(playlist models.Playlist, song models.Song) tea.Cmd {
	return func() tea.Msg {
		err := m.lib.AddSong(playlist.ID, song)
		return songAddedMsg{playlist: playlist.Name, err: err}
	}
}
