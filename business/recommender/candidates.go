package recommender

import (
	"sparetime/domain"
)

// filterCandidates builds the candidate pool for one recommendation
// call: previously shown videos are excluded and only durations within
// [target-tolerance, target+tolerance] seconds (inclusive) survive.
func filterCandidates(
	videos []domain.Video,
	exclude domain.StringList,
	targetSeconds int,
	toleranceSeconds int,
) []domain.Video {

	seen := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		seen[id] = struct{}{}
	}

	minDur := targetSeconds - toleranceSeconds
	maxDur := targetSeconds + toleranceSeconds

	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.VideoID]; ok {
			continue
		}
		if v.DurationSeconds < minDur || v.DurationSeconds > maxDur {
			continue
		}
		out = append(out, v)
	}
	return out
}
