package recommender

import (
	"sparetime/domain"
)

// UpdateProfile absorbs one rating event into the running average-video
// embedding. Inputs are taken by value and a fresh map is returned; the
// caller owns persistence and the total_videos counter.
//
// The raw rating is re-centered by the configured midpoint, so ratings
// below it pull the profile away from the video's features. The running
// mean deliberately mixes a weight-scaled numerator with a unit-step
// denominator:
//
//	new[f] = (old[f]*total + video[f]*w) / (total + 1)
//
// Changing this to a textbook weighted mean would break compatibility
// with profiles already persisted under this rule.
func UpdateProfile(
	cfg Config,
	avg domain.FeatureEmbeddings,
	totalRatings float64,
	video domain.Video,
	rating float64,
) (domain.FeatureEmbeddings, float64, error) {

	w := rating - cfg.RatingMidpoint
	newTotal := totalRatings + w

	next := make(domain.FeatureEmbeddings, len(avg))

	if avg.IsEmpty() {
		// First observation seeds the average, unnormalized by count.
		for name := range avg {
			src := video.FeatureEmbedding(name)
			vec := make(domain.Vector, len(src))
			for i := range src {
				vec[i] = src[i] * w
			}
			next[name] = vec
		}
		return next, newTotal, nil
	}

	divisor := totalRatings + 1
	if divisor == 0 {
		return nil, 0, domain.ErrDegenerateUpdate
	}

	for name, old := range avg {
		src := video.FeatureEmbedding(name)
		vec := make(domain.Vector, len(old))
		for i := range old {
			var contrib float64
			if i < len(src) {
				contrib = src[i] * w
			}
			vec[i] = (old[i]*totalRatings + contrib) / divisor
		}
		next[name] = vec
	}

	return next, newTotal, nil
}
