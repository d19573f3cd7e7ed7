package recommender

import (
	"sort"

	"sparetime/domain"
)

// Feature weights for the interest scorer. Sums to 1.0.
var interestWeights = map[string]float64{
	domain.FeatureTitle:        0.32,
	domain.FeatureDescription:  0.32,
	domain.FeatureChannelTitle: 0.12,
	domain.FeatureTags:         0.12,
	domain.FeatureCategory:     0.12,
}

// Feature weights for the rating-profile scorer. Tags are excluded:
// the profile never accumulates a tags vector. Sums to 1.0.
var profileWeights = map[string]float64{
	domain.FeatureTitle:        0.35,
	domain.FeatureDescription:  0.35,
	domain.FeatureChannelTitle: 0.15,
	domain.FeatureCategory:     0.15,
}

type scored struct {
	videoID string
	score   float64
}

// scoreByInterest ranks candidates against a single embedding of the
// user's joined interest list. A nil/empty reference yields no results.
func scoreByInterest(interest domain.Vector, videos []domain.Video, limit int) []scored {
	if len(interest) == 0 {
		return []scored{}
	}
	return scoreVideos(videos, interestWeights, func(string) domain.Vector {
		return interest
	}, limit)
}

// scoreByProfile ranks candidates against the per-feature average-video
// embedding. An empty profile yields no results.
func scoreByProfile(avg domain.FeatureEmbeddings, videos []domain.Video, limit int) []scored {
	if avg.IsEmpty() {
		return []scored{}
	}
	return scoreVideos(videos, profileWeights, func(name string) domain.Vector {
		return avg[name]
	}, limit)
}

// scoreVideos computes the weighted multi-field cosine similarity for
// each candidate. Only features that are both weighted and non-empty on
// the video contribute; the sum is normalized by the weight actually
// used so sparse metadata is not penalized. Videos with no usable
// feature are dropped rather than scored zero.
func scoreVideos(
	videos []domain.Video,
	weights map[string]float64,
	refFor func(feature string) domain.Vector,
	limit int,
) []scored {

	results := make([]scored, 0, len(videos))

	for _, video := range videos {
		var weightedSum, activeWeight float64

		for feature, weight := range weights {
			emb := video.FeatureEmbedding(feature)
			if len(emb) == 0 {
				continue
			}
			ref := refFor(feature)
			if len(ref) == 0 {
				continue
			}
			weightedSum += weight * cosineSimilarity(ref, emb)
			activeWeight += weight
		}

		if activeWeight > 0 {
			results = append(results, scored{
				videoID: video.VideoID,
				score:   weightedSum / activeWeight,
			})
		}
	}

	sortScored(results)

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// sortScored orders by score descending, then video id ascending so
// equal scores rank deterministically.
func sortScored(list []scored) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].score == list[j].score {
			return list[i].videoID < list[j].videoID
		}
		return list[i].score > list[j].score
	})
}
