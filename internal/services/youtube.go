// YouTube Data API v3 [Catalog] implementation
//
// Keyed access, no user credential. Search hits the public search endpoint
// and maps videos onto songs; the API's search resource carries no runtime,
// so durations are rendered as a fixed "Video" marker.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/shared"
)

const (
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	youtubeResultLimit    = 5
)

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// YouTubeService implements [Catalog] against the YouTube Data API.
type YouTubeService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeService creates a YouTube catalog client.
func NewYouTubeService(apiKey string) *YouTubeService {
	return &YouTubeService{
		apiKey:     apiKey,
		baseURL:    defaultYouTubeBaseURL,
		httpClient: http.DefaultClient,
	}
}

// Name returns the catalog name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// Configured reports whether a usable API key is present. Placeholder keys
// from an unedited config file do not count.
func (y *YouTubeService) Configured() bool {
	return y.apiKey != "" && !strings.Contains(y.apiKey, "YOUR_")
}

// Search queries the video search endpoint and maps the results.
func (y *YouTubeService) Search(ctx context.Context, query string) ([]models.Song, error) {
	if !y.Configured() {
		return nil, shared.ErrMissingConfig
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", strconv.Itoa(youtubeResultLimit))
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("key", y.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: youtube search returned %d: %s", shared.ErrAPIRequest, resp.StatusCode, body)
	}

	var parsed youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	songs := make([]models.Song, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		cover := item.Snippet.Thumbnails.High.URL
		if cover == "" {
			cover = item.Snippet.Thumbnails.Default.URL
		}
		songs = append(songs, models.Song{
			ID:         item.ID.VideoID,
			Title:      item.Snippet.Title,
			Artist:     item.Snippet.ChannelTitle,
			AlbumCover: cover,
			Platform:   models.PlatformYouTube,
			Duration:   "Video",
			URI:        item.ID.VideoID,
		})
	}
	return songs, nil
}
