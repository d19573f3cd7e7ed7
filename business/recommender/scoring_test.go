package recommender

import (
	"math"
	"testing"

	"sparetime/domain"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Vector
		want float64
	}{
		{"identical", domain.Vector{1, 2, 3}, domain.Vector{1, 2, 3}, 1},
		{"opposite", domain.Vector{1, 0}, domain.Vector{-1, 0}, -1},
		{"orthogonal", domain.Vector{1, 0}, domain.Vector{0, 1}, 0},
		{"zero vector", domain.Vector{0, 0}, domain.Vector{1, 1}, 0},
		{"length mismatch", domain.Vector{1, 2}, domain.Vector{1, 2, 3}, 0},
		{"empty", domain.Vector{}, domain.Vector{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if !almostEqual(got, tc.want) {
				t.Errorf("cosineSimilarity = %v, want %v", got, tc.want)
			}
			if got < -1 || got > 1 {
				t.Errorf("cosineSimilarity = %v, out of [-1, 1]", got)
			}
		})
	}
}

func TestScoreByInterest_RanksCloserVideoFirst(t *testing.T) {
	interest := domain.Vector{1, 0, 0}

	videos := []domain.Video{
		{
			VideoID:              "far",
			TitleEmbedding:       domain.Vector{0, 1, 0},
			DescriptionEmbedding: domain.Vector{0, 1, 1},
		},
		{
			VideoID:              "near",
			TitleEmbedding:       domain.Vector{1, 0.1, 0},
			DescriptionEmbedding: domain.Vector{1, 0, 0},
		},
	}

	got := scoreByInterest(interest, videos, 20)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].videoID != "near" {
		t.Errorf("top result = %s, want near", got[0].videoID)
	}
	for _, s := range got {
		if s.score < -1 || s.score > 1 {
			t.Errorf("score %v for %s out of [-1, 1]", s.score, s.videoID)
		}
	}
}

func TestScoreByInterest_EmptyReference(t *testing.T) {
	got := scoreByInterest(nil, []domain.Video{testVideo()}, 20)
	if len(got) != 0 {
		t.Errorf("got %d results for empty interest, want 0", len(got))
	}
}

func TestScoreVideos_SparseMetadataNotPenalized(t *testing.T) {
	ref := domain.Vector{1, 0}

	// Both videos match the reference exactly on every field they carry;
	// the sparse one must not score lower for the fields it lacks.
	full := domain.Video{
		VideoID:               "full",
		TitleEmbedding:        domain.Vector{1, 0},
		DescriptionEmbedding:  domain.Vector{1, 0},
		ChannelTitleEmbedding: domain.Vector{1, 0},
		TagsEmbedding:         domain.Vector{1, 0},
		CategoryEmbedding:     domain.Vector{1, 0},
	}
	sparse := domain.Video{
		VideoID:        "sparse",
		TitleEmbedding: domain.Vector{1, 0},
	}

	got := scoreByInterest(ref, []domain.Video{full, sparse}, 20)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if !almostEqual(got[0].score, got[1].score) {
		t.Errorf("scores differ: %v vs %v", got[0].score, got[1].score)
	}
}

func TestScoreVideos_DropsVideoWithNoUsableFeature(t *testing.T) {
	got := scoreByInterest(domain.Vector{1, 0}, []domain.Video{{VideoID: "bare"}}, 20)
	if len(got) != 0 {
		t.Errorf("got %d results for featureless video, want 0", len(got))
	}
}

func TestScoreByProfile_EmptyProfile(t *testing.T) {
	profile := domain.NewUserProfile(1)
	got := scoreByProfile(profile.AverageVideo, []domain.Video{testVideo()}, 20)
	if len(got) != 0 {
		t.Errorf("got %d results for empty profile, want 0", len(got))
	}
}

func TestScoreByProfile_UsesPerFeatureReferences(t *testing.T) {
	avg := domain.FeatureEmbeddings{
		domain.FeatureTitle:       {1, 0},
		domain.FeatureDescription: {0, 1},
	}

	videos := []domain.Video{
		{
			VideoID:              "aligned",
			TitleEmbedding:       domain.Vector{1, 0},
			DescriptionEmbedding: domain.Vector{0, 1},
		},
		{
			VideoID:              "crossed",
			TitleEmbedding:       domain.Vector{0, 1},
			DescriptionEmbedding: domain.Vector{1, 0},
		},
	}

	got := scoreByProfile(avg, videos, 20)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].videoID != "aligned" {
		t.Errorf("top result = %s, want aligned", got[0].videoID)
	}
	if !almostEqual(got[0].score, 1) {
		t.Errorf("aligned score = %v, want 1", got[0].score)
	}
	if !almostEqual(got[1].score, 0) {
		t.Errorf("crossed score = %v, want 0", got[1].score)
	}
}

func TestScoreVideos_LimitAndTieBreak(t *testing.T) {
	ref := domain.Vector{1, 0}

	videos := make([]domain.Video, 0, 4)
	for _, id := range []string{"d", "b", "c", "a"} {
		videos = append(videos, domain.Video{
			VideoID:        id,
			TitleEmbedding: domain.Vector{1, 0},
		})
	}

	got := scoreByInterest(ref, videos, 3)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].videoID != want {
			t.Errorf("result[%d] = %s, want %s", i, got[i].videoID, want)
		}
	}
}

func TestWeightTables(t *testing.T) {
	sum := func(m map[string]float64) float64 {
		var s float64
		for _, w := range m {
			s += w
		}
		return s
	}

	if s := sum(interestWeights); math.Abs(s-1) > 1e-9 {
		t.Errorf("interest weights sum to %v, want 1", s)
	}
	if s := sum(profileWeights); math.Abs(s-1) > 1e-9 {
		t.Errorf("profile weights sum to %v, want 1", s)
	}
	if _, ok := profileWeights[domain.FeatureTags]; ok {
		t.Error("profile weights must not include tags")
	}
}
