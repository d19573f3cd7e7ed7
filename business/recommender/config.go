package recommender

type Config struct {
	// TopN is the number of videos returned per recommendation call.
	TopN int

	// ScorerCap bounds each scorer's intermediate result list.
	ScorerCap int

	// RatingMidpoint re-centers raw ratings: weight = rating - midpoint.
	RatingMidpoint float64
	RatingMin      float64
	RatingMax      float64

	// BiasDecay is k in bias = 1 - exp(-k * total_videos).
	BiasDecay float64

	// DurationTolerance widens the requested duration window, seconds.
	DurationTolerance int
}

const (
	defaultTopN              = 3
	defaultScorerCap         = 20
	defaultRatingMidpoint    = 4.5
	defaultRatingMin         = 1.0
	defaultRatingMax         = 10.0
	defaultBiasDecay         = 0.80
	defaultDurationTolerance = 150
)

func DefaultConfig() Config {
	return Config{
		TopN:              defaultTopN,
		ScorerCap:         defaultScorerCap,
		RatingMidpoint:    defaultRatingMidpoint,
		RatingMin:         defaultRatingMin,
		RatingMax:         defaultRatingMax,
		BiasDecay:         defaultBiasDecay,
		DurationTolerance: defaultDurationTolerance,
	}
}
