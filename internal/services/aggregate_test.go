package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
	testhelp "github.com/Jimmyu2foru18/Music-Website/internal/testing"
)

func newTestAggregator(t *testing.T, yt *YouTubeService, sp *SpotifyService) *Aggregator {
	t.Helper()
	return NewAggregator(yt, sp, shared.NewLogger(io.Discard))
}

func TestAggregatorSearch(t *testing.T) {
	t.Run("concatenates youtube before spotify", func(t *testing.T) {
		yt := newYouTubeTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(youtubeSearchFixture))
		})
		sp, _ := newSpotifyTestService(t, testhelp.NewMockRoundTripper(jsonResponse(http.StatusOK, spotifySearchFixture), nil))

		songs, err := newTestAggregator(t, yt, sp).Search(context.Background(), "hotel")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(songs) != 4 {
			t.Fatalf("expected 2 youtube + 2 spotify songs, got %d", len(songs))
		}
		if songs[0].Platform != models.PlatformYouTube || songs[1].Platform != models.PlatformYouTube {
			t.Error("expected youtube results first")
		}
		if songs[2].Platform != models.PlatformSpotify || songs[3].Platform != models.PlatformSpotify {
			t.Error("expected spotify results last")
		}
	})

	t.Run("a failing catalog degrades instead of failing", func(t *testing.T) {
		yt := newYouTubeTestService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		})
		sp, _ := newSpotifyTestService(t, testhelp.NewMockRoundTripper(jsonResponse(http.StatusOK, spotifySearchFixture), nil))

		songs, err := newTestAggregator(t, yt, sp).Search(context.Background(), "hotel")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(songs) != 2 {
			t.Fatalf("expected the spotify results alone, got %d songs", len(songs))
		}
		for _, s := range songs {
			if s.Platform != models.PlatformSpotify {
				t.Errorf("unexpected platform %q", s.Platform)
			}
		}
	})

	t.Run("unconfigured youtube is skipped", func(t *testing.T) {
		yt := NewYouTubeService("")
		sp, _ := newSpotifyTestService(t, testhelp.NewMockRoundTripper(jsonResponse(http.StatusOK, spotifySearchFixture), nil))

		songs, err := newTestAggregator(t, yt, sp).Search(context.Background(), "hotel")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(songs) != 2 {
			t.Fatalf("expected the spotify results alone, got %d songs", len(songs))
		}
	})

	t.Run("both halves empty", func(t *testing.T) {
		yt := newYouTubeTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		})
		sp, _ := newSpotifyTestService(t, testhelp.NewMockRoundTripper(jsonResponse(http.StatusOK, `{"tracks": {"items": [], "limit": 5, "offset": 0, "total": 0}}`), nil))

		songs, err := newTestAggregator(t, yt, sp).Search(context.Background(), "zzzzz")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if songs == nil || len(songs) != 0 {
			t.Errorf("expected an empty non-nil slice, got %v", songs)
		}
	})
}

func TestSubstituteResults(t *testing.T) {
	t.Run("matches title and artist case-insensitively", func(t *testing.T) {
		byTitle := substituteResults("BLINDING")
		if len(byTitle) != 1 || byTitle[0].Title != "Blinding Lights" {
			t.Fatalf("expected a title match, got %+v", byTitle)
		}

		byArtist := substituteResults("taylor")
		if len(byArtist) != 1 || byArtist[0].Title != "Cruel Summer" {
			t.Fatalf("expected an artist match, got %+v", byArtist)
		}
	})

	t.Run("only serves the spotify half of the pool", func(t *testing.T) {
		// "Bohemian Rhapsody" is a youtube entry and must not appear.
		if got := substituteResults("bohemian"); len(got) != 0 {
			t.Errorf("expected no matches, got %+v", got)
		}
	})

	t.Run("issues fresh ids", func(t *testing.T) {
		first := substituteResults("blinding")
		second := substituteResults("blinding")
		if first[0].ID == second[0].ID {
			t.Error("expected a fresh id per search")
		}
		if first[0].ID == "s3" {
			t.Error("expected the pool id to be replaced")
		}
	})

	t.Run("empty query matches the whole spotify pool", func(t *testing.T) {
		got := substituteResults("")
		want := 0
		for _, s := range models.FeaturedSongs() {
			if s.Platform == models.PlatformSpotify {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("expected %d songs, got %d", want, len(got))
		}
	})
}

func TestAggregatorSubstitutePath(t *testing.T) {
	yt := NewYouTubeService("")
	sp := newSpotifyTestServiceDisconnected(t)

	songs, err := newTestAggregator(t, yt, sp).Search(context.Background(), "shape of you")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Shape of You" {
		t.Fatalf("expected the substitute match, got %+v", songs)
	}
}

// newSpotifyTestServiceDisconnected builds a service with no stored credential.
func newSpotifyTestServiceDisconnected(t *testing.T) *SpotifyService {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	creds := auth.NewManager(st, "client-id", "http://127.0.0.1:3000/", shared.NewLogger(io.Discard))
	return NewSpotifyService(creds, shared.NewLogger(io.Discard))
}
