package recommender

import (
	"math"
	"testing"

	"sparetime/domain"
)

func TestBiasFactor(t *testing.T) {
	if got := biasFactor(0.80, 0); got != 0 {
		t.Errorf("biasFactor(0) = %v, want 0", got)
	}
	if got := biasFactor(0.80, -3); got != 0 {
		t.Errorf("biasFactor(-3) = %v, want 0", got)
	}

	want := 1 - math.Exp(-0.80*5)
	if got := biasFactor(0.80, 5); !almostEqual(got, want) {
		t.Errorf("biasFactor(5) = %v, want %v", got, want)
	}

	prev := 0.0
	for n := 1; n <= 30; n++ {
		b := biasFactor(0.80, n)
		if b <= prev || b >= 1 {
			t.Fatalf("biasFactor(%d) = %v, want strictly rising in (0, 1)", n, b)
		}
		prev = b
	}
}

func TestBlendScores_UnionWithMissingSideZero(t *testing.T) {
	bias := biasFactor(0.80, 5)

	interestList := []scored{
		{videoID: "both", score: 0.9},
		{videoID: "interest-only", score: 0.8},
	}
	ratingList := []scored{
		{videoID: "both", score: 0.5},
		{videoID: "rating-only", score: 0.7},
	}

	got := blendScores(interestList, ratingList, bias)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}

	byID := make(map[string]float64, len(got))
	for _, s := range got {
		byID[s.videoID] = s.score
	}

	if want := (1-bias)*0.9 + bias*0.5; !almostEqual(byID["both"], want) {
		t.Errorf("both = %v, want %v", byID["both"], want)
	}
	if want := (1 - bias) * 0.8; !almostEqual(byID["interest-only"], want) {
		t.Errorf("interest-only = %v, want %v", byID["interest-only"], want)
	}
	if want := bias * 0.7; !almostEqual(byID["rating-only"], want) {
		t.Errorf("rating-only = %v, want %v", byID["rating-only"], want)
	}

	for i := 1; i < len(got); i++ {
		if got[i].score > got[i-1].score {
			t.Errorf("results not sorted: %v before %v", got[i-1], got[i])
		}
	}
}

func TestTopN(t *testing.T) {
	list := []scored{
		{videoID: "a", score: 3},
		{videoID: "b", score: 2},
		{videoID: "c", score: 1},
	}

	if got := topN(list, 2); len(got) != 2 || got[1].videoID != "b" {
		t.Errorf("topN(2) = %v", got)
	}
	if got := topN(list, 5); len(got) != 3 {
		t.Errorf("topN(5) returned %d, want all 3", len(got))
	}
	if got := topN(nil, 3); len(got) != 0 {
		t.Errorf("topN on nil returned %d results", len(got))
	}
}

func TestAppendSeen(t *testing.T) {
	seen := domain.StringList{"a", "b"}
	picks := []scored{
		{videoID: "b"},
		{videoID: "c"},
		{videoID: "c"},
		{videoID: "d"},
	}

	got := appendSeen(seen, picks)

	want := domain.StringList{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("seen[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if len(seen) != 2 {
		t.Error("input seen list was mutated")
	}
}
