package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type YouTubeConfig struct {
	APIKey  string
	BaseURL string
}

// YouTubeRepository wraps the two Data API v3 calls the ingestion job
// needs: search.list and videos.list.
type YouTubeRepository struct {
	youtubeConfig YouTubeConfig
	client        *http.Client
}

func NewYouTubeRepository(cfg YouTubeConfig) *YouTubeRepository {
	return &YouTubeRepository{
		youtubeConfig: cfg,
		client:        &http.Client{Timeout: 15 * time.Second},
	}
}

type SearchResult struct {
	VideoID      string
	Title        string
	Description  string
	ChannelTitle string
	ChannelID    string
	PublishedAt  string
	ThumbnailURL string
}

type VideoDetails struct {
	Description string
	Tags        []string
	Duration    string // ISO-8601, e.g. PT4M13S
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			ChannelID    string `json:"channelId"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Description string   `json:"description"`
			Tags        []string `json:"tags"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// Search returns the most-viewed videos matching the query, optionally
// restricted to one channel.
func (r *YouTubeRepository) Search(ctx context.Context, query string, maxResults int, channelID string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "viewCount")
	params.Set("key", r.youtubeConfig.APIKey)
	if channelID != "" {
		params.Set("channelId", channelID)
	}

	var parsed searchListResponse
	if err := r.get(ctx, "/search", params, &parsed); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, SearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			ChannelID:    item.Snippet.ChannelID,
			PublishedAt:  item.Snippet.PublishedAt,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		})
	}

	return results, nil
}

// VideoDetails fetches the full description, tags and duration for one
// video id.
func (r *YouTubeRepository) VideoDetails(ctx context.Context, videoID string) (VideoDetails, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", videoID)
	params.Set("key", r.youtubeConfig.APIKey)

	var parsed videoListResponse
	if err := r.get(ctx, "/videos", params, &parsed); err != nil {
		return VideoDetails{}, err
	}

	if len(parsed.Items) == 0 {
		return VideoDetails{}, fmt.Errorf("no metadata returned for video %s", videoID)
	}

	item := parsed.Items[0]
	return VideoDetails{
		Description: item.Snippet.Description,
		Tags:        item.Snippet.Tags,
		Duration:    item.ContentDetails.Duration,
	}, nil
}

func (r *YouTubeRepository) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := r.youtubeConfig.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("youtube api returned status %v", res.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal youtube response: %w", err)
	}

	return nil
}
