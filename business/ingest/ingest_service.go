package ingest

import (
	"context"
	"fmt"
	"strings"

	"sparetime/domain"
	"sparetime/internal/repository/youtube"
	"sparetime/pkg/logger"
)

// YouTubeRepository is the Data API surface the job consumes.
type YouTubeRepository interface {
	Search(ctx context.Context, query string, maxResults int, channelID string) ([]youtube.SearchResult, error)
	VideoDetails(ctx context.Context, videoID string) (youtube.VideoDetails, error)
}

type VideoRepository interface {
	ExistsByVideoID(ctx context.Context, videoID string) (bool, error)
	Upsert(ctx context.Context, video *domain.Video) error
}

type Embedder interface {
	Embed(ctx context.Context, text string) (domain.Vector, error)
	EmbedList(ctx context.Context, items []string) (domain.Vector, error)
}

// SearchQuery drives one catalog search. The query string doubles as
// the stored category label for every video it surfaces.
type SearchQuery struct {
	Query      string
	MaxResults int
	ChannelID  string
}

type ingestService struct {
	youtubeRepo YouTubeRepository
	videoRepo   VideoRepository
	embedder    Embedder
}

func NewIngestService(
	youtubeRepo YouTubeRepository,
	videoRepo VideoRepository,
	embedder Embedder,
) *ingestService {
	return &ingestService{
		youtubeRepo: youtubeRepo,
		videoRepo:   videoRepo,
		embedder:    embedder,
	}
}

// Run executes every search and stores the videos it finds. A failing
// search or video is logged and skipped so one bad query cannot sink
// the whole job. Returns how many videos were ingested.
func (s *ingestService) Run(ctx context.Context, searches []SearchQuery) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	ingested := 0
	for _, search := range searches {
		n, err := s.runSearch(ctx, search)
		if err != nil {
			logger.Error("Search failed", "query", search.Query, "error", err)
			continue
		}
		ingested += n
	}

	return ingested, nil
}

func (s *ingestService) runSearch(ctx context.Context, search SearchQuery) (int, error) {
	results, err := s.youtubeRepo.Search(ctx, search.Query, search.MaxResults, search.ChannelID)
	if err != nil {
		return 0, fmt.Errorf("youtube search %q: %w", search.Query, err)
	}

	ingested := 0
	for _, result := range results {
		exists, err := s.videoRepo.ExistsByVideoID(ctx, result.VideoID)
		if err != nil {
			return ingested, fmt.Errorf("check existing video: %w", err)
		}
		if exists {
			logger.Debug("Video already ingested, skipping", "video_id", result.VideoID)
			continue
		}

		video, err := s.buildVideo(ctx, result, search.Query)
		if err != nil {
			logger.Error("Failed to build video", "video_id", result.VideoID, "error", err)
			continue
		}

		if err := s.videoRepo.Upsert(ctx, &video); err != nil {
			return ingested, fmt.Errorf("store video %s: %w", result.VideoID, err)
		}

		logger.Info("Ingested video", "video_id", video.VideoID, "title", video.Title)
		ingested++
	}

	return ingested, nil
}

// buildVideo fetches full metadata and embeds the five scored fields.
// The search query becomes the category; a video without tags gets an
// empty tags embedding rather than an embedding of nothing.
func (s *ingestService) buildVideo(ctx context.Context, result youtube.SearchResult, category string) (domain.Video, error) {
	details, err := s.youtubeRepo.VideoDetails(ctx, result.VideoID)
	if err != nil {
		return domain.Video{}, err
	}

	description := details.Description
	if description == "" {
		description = result.Description
	}

	video := domain.Video{
		VideoID:         result.VideoID,
		Title:           result.Title,
		Description:     description,
		ChannelTitle:    result.ChannelTitle,
		ChannelID:       result.ChannelID,
		Category:        category,
		Tags:            domain.StringList(details.Tags),
		ThumbnailURL:    result.ThumbnailURL,
		DurationSeconds: parseISODuration(details.Duration),
		PublishedAt:     result.PublishedAt,
	}

	if video.TitleEmbedding, err = s.embedder.Embed(ctx, video.Title); err != nil {
		return domain.Video{}, fmt.Errorf("embed title: %w", err)
	}
	if video.DescriptionEmbedding, err = s.embedder.Embed(ctx, video.Description); err != nil {
		return domain.Video{}, fmt.Errorf("embed description: %w", err)
	}
	if video.ChannelTitleEmbedding, err = s.embedder.Embed(ctx, video.ChannelTitle); err != nil {
		return domain.Video{}, fmt.Errorf("embed channel title: %w", err)
	}
	if video.CategoryEmbedding, err = s.embedder.Embed(ctx, video.Category); err != nil {
		return domain.Video{}, fmt.Errorf("embed category: %w", err)
	}

	if len(video.Tags) > 0 {
		if video.TagsEmbedding, err = s.embedder.EmbedList(ctx, video.Tags); err != nil {
			return domain.Video{}, fmt.Errorf("embed tags %q: %w", strings.Join(video.Tags, ", "), err)
		}
	} else {
		video.TagsEmbedding = domain.Vector{}
	}

	return video, nil
}
