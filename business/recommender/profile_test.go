package recommender

import (
	"errors"
	"math"
	"testing"

	"sparetime/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testVideo() domain.Video {
	return domain.Video{
		VideoID:               "vid-1",
		DurationSeconds:       600,
		TitleEmbedding:        domain.Vector{1, 0, 2},
		DescriptionEmbedding:  domain.Vector{0, 1, 0},
		ChannelTitleEmbedding: domain.Vector{2, 2, 2},
		CategoryEmbedding:     domain.Vector{0, 0, 1},
	}
}

func TestUpdateProfile_SeedsEmptyProfile(t *testing.T) {
	cfg := DefaultConfig()
	profile := domain.NewUserProfile(1)
	video := testVideo()

	rating := 8.0
	w := rating - cfg.RatingMidpoint

	newAvg, newTotal, err := UpdateProfile(cfg, profile.AverageVideo, profile.TotalRatings, video, rating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(newTotal, w) {
		t.Errorf("newTotal = %v, want %v", newTotal, w)
	}

	for _, feature := range []string{
		domain.FeatureTitle,
		domain.FeatureDescription,
		domain.FeatureChannelTitle,
		domain.FeatureCategory,
	} {
		src := video.FeatureEmbedding(feature)
		got := newAvg[feature]
		if len(got) != len(src) {
			t.Fatalf("feature %s: length %d, want %d", feature, len(got), len(src))
		}
		for i := range src {
			if !almostEqual(got[i], src[i]*w) {
				t.Errorf("feature %s[%d] = %v, want %v", feature, i, got[i], src[i]*w)
			}
		}
	}
}

func TestUpdateProfile_RunningMean(t *testing.T) {
	cfg := DefaultConfig()
	video := testVideo()

	avg := domain.FeatureEmbeddings{
		domain.FeatureTitle:        {2, 2, 2},
		domain.FeatureDescription:  {1, 1, 1},
		domain.FeatureChannelTitle: {0, 0, 0},
		domain.FeatureCategory:     {1, 0, 0},
	}
	totalRatings := 3.0
	rating := 7.0
	w := rating - cfg.RatingMidpoint // 2.5

	newAvg, newTotal, err := UpdateProfile(cfg, avg, totalRatings, video, rating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(newTotal, totalRatings+w) {
		t.Errorf("newTotal = %v, want %v", newTotal, totalRatings+w)
	}

	// The divisor is the pre-update total plus one unit, not plus w.
	want := (2.0*totalRatings + 1.0*w) / (totalRatings + 1)
	if got := newAvg[domain.FeatureTitle][0]; !almostEqual(got, want) {
		t.Errorf("title[0] = %v, want %v", got, want)
	}
}

func TestUpdateProfile_DegenerateDivisor(t *testing.T) {
	cfg := DefaultConfig()
	video := testVideo()

	avg := domain.FeatureEmbeddings{
		domain.FeatureTitle: {1, 1, 1},
	}

	_, _, err := UpdateProfile(cfg, avg, -1.0, video, 7.0)
	if !errors.Is(err, domain.ErrDegenerateUpdate) {
		t.Fatalf("err = %v, want ErrDegenerateUpdate", err)
	}
}

func TestUpdateProfile_DoesNotAliasInput(t *testing.T) {
	cfg := DefaultConfig()
	video := testVideo()

	avg := domain.FeatureEmbeddings{
		domain.FeatureTitle: {5, 5, 5},
	}

	newAvg, _, err := UpdateProfile(cfg, avg, 2.0, video, 9.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newAvg[domain.FeatureTitle][0] = 999

	if avg[domain.FeatureTitle][0] != 5 {
		t.Error("input average video was mutated through the result")
	}
}
