package ingest

import (
	"context"
	"errors"
	"testing"

	"sparetime/domain"
	"sparetime/internal/repository/youtube"
)

type stubYouTubeRepo struct {
	results map[string][]youtube.SearchResult
	details map[string]youtube.VideoDetails
	err     error
}

func (s *stubYouTubeRepo) Search(_ context.Context, query string, _ int, _ string) ([]youtube.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

func (s *stubYouTubeRepo) VideoDetails(_ context.Context, videoID string) (youtube.VideoDetails, error) {
	d, ok := s.details[videoID]
	if !ok {
		return youtube.VideoDetails{}, errors.New("no such video")
	}
	return d, nil
}

type stubVideoStore struct {
	existing map[string]bool
	stored   []domain.Video
}

func (s *stubVideoStore) ExistsByVideoID(_ context.Context, videoID string) (bool, error) {
	return s.existing[videoID], nil
}

func (s *stubVideoStore) Upsert(_ context.Context, video *domain.Video) error {
	s.stored = append(s.stored, *video)
	return nil
}

type fixedEmbedder struct{}

func (fixedEmbedder) Embed(_ context.Context, text string) (domain.Vector, error) {
	return domain.Vector{float64(len(text)), 1}, nil
}

func (f fixedEmbedder) EmbedList(ctx context.Context, items []string) (domain.Vector, error) {
	joined := ""
	for i, it := range items {
		if i > 0 {
			joined += ", "
		}
		joined += it
	}
	return f.Embed(ctx, joined)
}

func TestRun_IngestsNewVideosAndSkipsExisting(t *testing.T) {
	yt := &stubYouTubeRepo{
		results: map[string][]youtube.SearchResult{
			"space documentaries": {
				{VideoID: "v1", Title: "Inside a Black Hole", ChannelTitle: "Cosmos"},
				{VideoID: "v2", Title: "Mars in 4K", ChannelTitle: "Cosmos"},
			},
		},
		details: map[string]youtube.VideoDetails{
			"v1": {Description: "A tour of event horizons", Tags: []string{"space", "physics"}, Duration: "PT12M30S"},
			"v2": {Description: "Rover footage", Duration: "PT9M"},
		},
	}
	store := &stubVideoStore{existing: map[string]bool{"v2": true}}

	svc := NewIngestService(yt, store, fixedEmbedder{})

	n, err := svc.Run(context.Background(), []SearchQuery{
		{Query: "space documentaries", MaxResults: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("ingested %d videos, want 1", n)
	}
	if len(store.stored) != 1 {
		t.Fatalf("stored %d videos, want 1", len(store.stored))
	}

	video := store.stored[0]
	if video.VideoID != "v1" {
		t.Errorf("stored video id = %s, want v1", video.VideoID)
	}
	if video.Category != "space documentaries" {
		t.Errorf("category = %q, want the search query", video.Category)
	}
	if video.DurationSeconds != 750 {
		t.Errorf("duration = %d, want 750", video.DurationSeconds)
	}
	if len(video.TitleEmbedding) == 0 || len(video.TagsEmbedding) == 0 {
		t.Error("expected title and tags embeddings to be populated")
	}
}

func TestRun_EmptyTagsGetEmptyEmbedding(t *testing.T) {
	yt := &stubYouTubeRepo{
		results: map[string][]youtube.SearchResult{
			"cooking": {{VideoID: "v3", Title: "Fresh Pasta", ChannelTitle: "Kitchen"}},
		},
		details: map[string]youtube.VideoDetails{
			"v3": {Description: "Flour and eggs", Duration: "PT8M"},
		},
	}
	store := &stubVideoStore{}

	svc := NewIngestService(yt, store, fixedEmbedder{})

	if _, err := svc.Run(context.Background(), []SearchQuery{{Query: "cooking", MaxResults: 5}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.stored) != 1 {
		t.Fatalf("stored %d videos, want 1", len(store.stored))
	}

	video := store.stored[0]
	if video.TagsEmbedding == nil || len(video.TagsEmbedding) != 0 {
		t.Errorf("tags embedding = %v, want empty non-nil vector", video.TagsEmbedding)
	}
}

func TestRun_FailingSearchIsSkipped(t *testing.T) {
	yt := &stubYouTubeRepo{err: errors.New("quota exceeded")}
	store := &stubVideoStore{}

	svc := NewIngestService(yt, store, fixedEmbedder{})

	n, err := svc.Run(context.Background(), []SearchQuery{{Query: "anything"}})
	if err != nil {
		t.Fatalf("run should not fail on a bad search, got %v", err)
	}
	if n != 0 || len(store.stored) != 0 {
		t.Errorf("ingested %d, stored %d; want 0, 0", n, len(store.stored))
	}
}
