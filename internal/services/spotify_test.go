package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Jimmyu2foru18/Music-Website/internal/auth"
	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
	testhelp "github.com/Jimmyu2foru18/Music-Website/internal/testing"
)

const spotifySearchFixture = `{
	"tracks": {
		"href": "https://api.spotify.com/v1/search?query=hotel",
		"items": [
			{
				"album": {
					"images": [
						{"url": "https://i.scdn.co/image/cover-large", "height": 640, "width": 640},
						{"url": "https://i.scdn.co/image/cover-small", "height": 64, "width": 64}
					]
				},
				"artists": [{"name": "Eagles"}, {"name": "Someone Else"}],
				"duration_ms": 390000,
				"id": "40riOy7x9W7GXjyGp4pjAv",
				"name": "Hotel California",
				"preview_url": "https://p.scdn.co/mp3-preview/hotel",
				"uri": "spotify:track:40riOy7x9W7GXjyGp4pjAv"
			},
			{
				"album": {"images": []},
				"artists": [],
				"duration_ms": 200000,
				"id": "bare",
				"name": "Bare Track",
				"uri": "spotify:track:bare"
			}
		],
		"limit": 5,
		"offset": 0,
		"total": 2
	}
}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// newSpotifyTestService returns a service holding a live delegated credential.
func newSpotifyTestService(t *testing.T, transport http.RoundTripper) (*SpotifyService, *auth.Manager) {
	t.Helper()

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	creds := auth.NewManager(st, "client-id", "http://127.0.0.1:3000/", shared.NewLogger(io.Discard))
	if err := creds.HandleCallbackFragment("access_token=tok-live&expires_in=3600"); err != nil {
		t.Fatalf("failed to seed credential: %v", err)
	}

	svc := NewSpotifyService(creds, shared.NewLogger(io.Discard))
	svc.transport = transport
	return svc, creds
}

type captureTransport struct {
	auth string
	next http.RoundTripper
}

func (c *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.auth = req.Header.Get("Authorization")
	return c.next.RoundTrip(req)
}

func TestSpotifySearch(t *testing.T) {
	t.Run("maps tracks onto songs", func(t *testing.T) {
		capture := &captureTransport{
			next: testhelp.NewMockRoundTripper(jsonResponse(http.StatusOK, spotifySearchFixture), nil),
		}
		svc, _ := newSpotifyTestService(t, capture)

		songs, err := svc.Search(context.Background(), "hotel")
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if capture.auth != "Bearer tok-live" {
			t.Errorf("expected the delegated token on the wire, got %q", capture.auth)
		}
		if len(songs) != 2 {
			t.Fatalf("expected 2 songs, got %d", len(songs))
		}

		first := songs[0]
		if first.ID != "40riOy7x9W7GXjyGp4pjAv" {
			t.Errorf("unexpected id %q", first.ID)
		}
		if first.Artist != "Eagles" {
			t.Errorf("expected the first artist only, got %q", first.Artist)
		}
		if first.AlbumCover != "https://i.scdn.co/image/cover-large" {
			t.Errorf("expected the first album image, got %q", first.AlbumCover)
		}
		if first.Duration != "6:30" {
			t.Errorf("expected formatted duration, got %q", first.Duration)
		}
		if first.Platform != models.PlatformSpotify {
			t.Errorf("expected spotify platform, got %q", first.Platform)
		}
		if first.URI != "spotify:track:40riOy7x9W7GXjyGp4pjAv" {
			t.Errorf("unexpected uri %q", first.URI)
		}
		if first.PreviewURL != "https://p.scdn.co/mp3-preview/hotel" {
			t.Errorf("unexpected preview url %q", first.PreviewURL)
		}

		// No artists and no images fall back to safe defaults.
		second := songs[1]
		if second.Artist != "" {
			t.Errorf("expected empty artist, got %q", second.Artist)
		}
		if second.AlbumCover != placeholderCover {
			t.Errorf("expected the placeholder cover, got %q", second.AlbumCover)
		}
	})

	t.Run("no credential fails fast", func(t *testing.T) {
		st, err := store.Open(":memory:")
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		t.Cleanup(func() { st.Close() })

		creds := auth.NewManager(st, "client-id", "http://127.0.0.1:3000/", shared.NewLogger(io.Discard))
		svc := NewSpotifyService(creds, shared.NewLogger(io.Discard))

		if _, err := svc.Search(context.Background(), "q"); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if svc.Connected() {
			t.Error("expected disconnected state")
		}
	})

	t.Run("401 discards the credential", func(t *testing.T) {
		body := `{"error": {"status": 401, "message": "The access token expired"}}`
		svc, creds := newSpotifyTestService(t, testhelp.NewMockRoundTripper(jsonResponse(http.StatusUnauthorized, body), nil))

		if _, err := svc.Search(context.Background(), "q"); !errors.Is(err, shared.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
		if creds.Connected() {
			t.Error("expected the credential to be discarded")
		}
	})

	t.Run("transport failure is surfaced", func(t *testing.T) {
		svc, creds := newSpotifyTestService(t, testhelp.NewMockRoundTripper(nil, errors.New("connection refused")))

		if _, err := svc.Search(context.Background(), "q"); err == nil {
			t.Error("expected an error")
		}
		// A network failure is not a credential problem.
		if !creds.Connected() {
			t.Error("expected the credential to survive a transport failure")
		}
	})
}
