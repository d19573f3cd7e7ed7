package recommender

import (
	"math"

	"sparetime/domain"
)

// biasFactor rises monotonically from 0 toward 1 with rating history,
// shifting weight from declared interests to learned behavior.
func biasFactor(decay float64, totalVideos int) float64 {
	if totalVideos <= 0 {
		return 0
	}
	return 1 - math.Exp(-decay*float64(totalVideos))
}

// blendScores combines the two scorers' lists over the union of their
// video ids:
//
//	combined = (1-bias)*interest + bias*rating
//
// A video present in only one list keeps the available signal scaled by
// its weight; the missing side contributes 0. That systematically
// disadvantages single-list videos relative to ones both scorers saw,
// which is accepted as a simplification.
func blendScores(interestList, ratingList []scored, bias float64) []scored {
	interestByID := make(map[string]float64, len(interestList))
	for _, s := range interestList {
		interestByID[s.videoID] = s.score
	}
	ratingByID := make(map[string]float64, len(ratingList))
	for _, s := range ratingList {
		ratingByID[s.videoID] = s.score
	}

	combined := make([]scored, 0, len(interestByID)+len(ratingByID))
	for id, is := range interestByID {
		combined = append(combined, scored{
			videoID: id,
			score:   (1-bias)*is + bias*ratingByID[id],
		})
	}
	for id, rs := range ratingByID {
		if _, ok := interestByID[id]; ok {
			continue
		}
		combined = append(combined, scored{
			videoID: id,
			score:   bias * rs,
		})
	}

	sortScored(combined)
	return combined
}

func topN(list []scored, n int) []scored {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}

// appendSeen records the returned ids on the profile's seen list,
// skipping any id already present.
func appendSeen(seen domain.StringList, picks []scored) domain.StringList {
	known := make(map[string]struct{}, len(seen))
	for _, id := range seen {
		known[id] = struct{}{}
	}

	out := append(domain.StringList{}, seen...)
	for _, p := range picks {
		if _, ok := known[p.videoID]; ok {
			continue
		}
		known[p.videoID] = struct{}{}
		out = append(out, p.videoID)
	}
	return out
}
