package recommender

import (
	"testing"

	"sparetime/domain"
)

func TestFilterCandidates_DurationWindowInclusive(t *testing.T) {
	videos := []domain.Video{
		{VideoID: "low-out", DurationSeconds: 449},
		{VideoID: "low-edge", DurationSeconds: 450},
		{VideoID: "mid", DurationSeconds: 600},
		{VideoID: "high-edge", DurationSeconds: 750},
		{VideoID: "high-out", DurationSeconds: 751},
	}

	got := filterCandidates(videos, nil, 600, 150)

	want := []string{"low-edge", "mid", "high-edge"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].VideoID != id {
			t.Errorf("candidate[%d] = %s, want %s", i, got[i].VideoID, id)
		}
	}
}

func TestFilterCandidates_ExcludesSeen(t *testing.T) {
	videos := []domain.Video{
		{VideoID: "seen", DurationSeconds: 600},
		{VideoID: "fresh", DurationSeconds: 600},
	}

	got := filterCandidates(videos, domain.StringList{"seen"}, 600, 150)
	if len(got) != 1 || got[0].VideoID != "fresh" {
		t.Fatalf("got %v, want only fresh", got)
	}
}

func TestFilterCandidates_EmptyPool(t *testing.T) {
	got := filterCandidates(nil, domain.StringList{"a"}, 600, 150)
	if len(got) != 0 {
		t.Errorf("got %d candidates from empty pool, want 0", len(got))
	}
}
