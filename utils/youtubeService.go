package utils

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

const (
	PLAYLISTS_URL      = "https://www.googleapis.com/youtube/v3/playlists"
	PLAYLIST_ITEMS_URL = "https://www.googleapis.com/youtube/v3/playlistItems"
	VIDEOS_URL         = "https://www.googleapis.com/youtube/v3/videos"
)

// youtubeAPIBase overrides the API host in tests
var youtubeAPIBase = ""

// ErrInvalidPlaylist means the locator does not reference an existing
// playlist; retrying will not help, the caller should correct the input.
var ErrInvalidPlaylist = errors.New("playlist not found or locator invalid")

// ErrSourceUnreachable means the metadata source could not be reached;
// the caller may retry later.
var ErrSourceUnreachable = errors.New("metadata source unreachable")

// PlaylistItem is the normalized metadata for one playlist entry.
// Duration is nil when the source did not report one.
type PlaylistItem struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    *int   `json:"duration"`
}

var playlistIDRegex = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)
var bareIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)

// ExtractPlaylistID extracts a playlist ID from a YouTube URL, or accepts
// a bare ID as-is
func ExtractPlaylistID(locator string) (string, error) {
	if match := playlistIDRegex.FindStringSubmatch(locator); match != nil {
		return match[1], nil
	}
	if bareIDRegex.MatchString(locator) {
		return locator, nil
	}
	return "", ErrInvalidPlaylist
}

type playlistResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Position    int    `json:"position"`
			ResourceID  struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func apiURL(base string) string {
	if youtubeAPIBase != "" {
		switch base {
		case PLAYLISTS_URL:
			return youtubeAPIBase + "/playlists"
		case PLAYLIST_ITEMS_URL:
			return youtubeAPIBase + "/playlistItems"
		case VIDEOS_URL:
			return youtubeAPIBase + "/videos"
		}
	}
	return base
}

func youtubeClient() *resty.Client {
	timeout := 15
	if config.AppConfig != nil && config.AppConfig.YouTubeTimeoutSec > 0 {
		timeout = config.AppConfig.YouTubeTimeoutSec
	}
	return resty.New().SetTimeout(time.Duration(timeout) * time.Second)
}

// FetchPlaylist retrieves the title and ordered item metadata of a
// YouTube playlist without downloading any media. Partial metadata
// (missing description or duration) is tolerated; only an unreachable
// source or an invalid locator fails the fetch.
func FetchPlaylist(locator string) (string, []PlaylistItem, error) {
	playlistID, err := ExtractPlaylistID(locator)
	if err != nil {
		return "", nil, err
	}

	apiKey := ""
	if config.AppConfig != nil {
		apiKey = config.AppConfig.YouTubeApiKey
	}

	client := youtubeClient()

	// Playlist title
	var plResp playlistResponse
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"part": "snippet",
			"id":   playlistID,
			"key":  apiKey,
		}).
		SetResult(&plResp).
		Get(apiURL(PLAYLISTS_URL))
	if err != nil {
		log.Printf("Error fetching playlist %s: %v", playlistID, err)
		return "", nil, fmt.Errorf("%w: %v", ErrSourceUnreachable, err)
	}
	if resp.StatusCode() >= 500 {
		return "", nil, fmt.Errorf("%w: status %d", ErrSourceUnreachable, resp.StatusCode())
	}
	if resp.StatusCode() != 200 || len(plResp.Items) == 0 {
		return "", nil, ErrInvalidPlaylist
	}
	playlistTitle := plResp.Items[0].Snippet.Title

	// Playlist items, paginated
	var items []PlaylistItem
	pageToken := ""
	for {
		var pageResp playlistItemsResponse
		req := client.R().
			SetQueryParams(map[string]string{
				"part":       "snippet",
				"playlistId": playlistID,
				"maxResults": "50",
				"key":        apiKey,
			}).
			SetResult(&pageResp)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get(apiURL(PLAYLIST_ITEMS_URL))
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrSourceUnreachable, err)
		}
		if resp.StatusCode() >= 500 {
			return "", nil, fmt.Errorf("%w: status %d", ErrSourceUnreachable, resp.StatusCode())
		}
		if resp.StatusCode() != 200 {
			return "", nil, ErrInvalidPlaylist
		}

		for _, item := range pageResp.Items {
			items = append(items, PlaylistItem{
				VideoID:     item.Snippet.ResourceID.VideoID,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				Thumbnail:   item.Snippet.Thumbnails.Medium.URL,
			})
		}

		pageToken = pageResp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	// Durations come from the videos endpoint; failures here leave the
	// durations unknown rather than failing the whole fetch.
	fillDurations(client, apiKey, items)

	return playlistTitle, items, nil
}

// fillDurations resolves per-video durations in batches of 50
func fillDurations(client *resty.Client, apiKey string, items []PlaylistItem) {
	byID := make(map[string]*PlaylistItem, len(items))
	var ids []string
	for i := range items {
		if items[i].VideoID != "" {
			byID[items[i].VideoID] = &items[i]
			ids = append(ids, items[i].VideoID)
		}
	}

	for start := 0; start < len(ids); start += 50 {
		end := start + 50
		if end > len(ids) {
			end = len(ids)
		}

		idParam := ids[start]
		for _, id := range ids[start+1 : end] {
			idParam += "," + id
		}

		var vResp videosResponse
		resp, err := client.R().
			SetQueryParams(map[string]string{
				"part": "contentDetails",
				"id":   idParam,
				"key":  apiKey,
			}).
			SetResult(&vResp).
			Get(apiURL(VIDEOS_URL))
		if err != nil || resp.StatusCode() != 200 {
			log.Printf("Warning: could not fetch video durations, leaving them unknown")
			continue
		}

		for _, v := range vResp.Items {
			if item, ok := byID[v.ID]; ok {
				if secs, ok := ParseISODuration(v.ContentDetails.Duration); ok {
					d := secs
					item.Duration = &d
				}
			}
		}
	}
}

var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts an ISO 8601 duration like "PT1H2M3S" to
// seconds. The second return value is false when the string does not
// parse or encodes no components.
func ParseISODuration(s string) (int, bool) {
	match := isoDurationRegex.FindStringSubmatch(s)
	if match == nil || (match[1] == "" && match[2] == "" && match[3] == "") {
		return 0, false
	}

	total := 0
	if match[1] != "" {
		h, _ := strconv.Atoi(match[1])
		total += h * 3600
	}
	if match[2] != "" {
		m, _ := strconv.Atoi(match[2])
		total += m * 60
	}
	if match[3] != "" {
		sec, _ := strconv.Atoi(match[3])
		total += sec
	}
	return total, true
}
