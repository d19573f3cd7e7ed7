package recommender

import (
	"context"
	"fmt"
	"strings"

	"sparetime/domain"
	"sparetime/pkg/logger"
)

// ---- Repository interfaces ----

type VideoRepository interface {
	FindByDurationRange(ctx context.Context, minSeconds, maxSeconds int) ([]domain.Video, error)
	FindByVideoID(ctx context.Context, videoID string) (domain.Video, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, profile domain.UserProfile) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type RatingRepository interface {
	Save(ctx context.Context, rating domain.Rating) error
}

// Embedder is the external text-to-vector service. Deterministic for a
// frozen model; the only potentially slow collaborator, so it takes the
// caller's ctx.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.Vector, error)
	EmbedList(ctx context.Context, items []string) (domain.Vector, error)
}

// ---- Usecase / Service ----

type RecommenderService struct {
	videoRepo   VideoRepository
	profileRepo ProfileRepository
	userRepo    UserRepository
	ratingRepo  RatingRepository
	embedder    Embedder
	cfg         Config
}

func NewRecommenderService(
	videoRepo VideoRepository,
	profileRepo ProfileRepository,
	userRepo UserRepository,
	ratingRepo RatingRepository,
	embedder Embedder,
	cfg Config,
) *RecommenderService {
	return &RecommenderService{
		videoRepo:   videoRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		ratingRepo:  ratingRepo,
		embedder:    embedder,
		cfg:         cfg,
	}
}

// Recommend returns up to n ranked video ids near the requested
// duration, excluding everything the user has already been shown, and
// records the returned ids on the profile. A small catalog yields a
// short (possibly empty) list, not an error.
func (s *RecommenderService) Recommend(
	ctx context.Context,
	userID uint,
	durationMinutes int,
	n int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if durationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	if n <= 0 {
		n = s.cfg.TopN
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := durationMinutes * 60
	videos, err := s.videoRepo.FindByDurationRange(
		ctx,
		target-s.cfg.DurationTolerance,
		target+s.cfg.DurationTolerance,
	)
	if err != nil {
		return nil, fmt.Errorf("load candidate videos: %w", err)
	}

	candidates := filterCandidates(videos, profile.VideosSeen, target, s.cfg.DurationTolerance)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"user_id", userID,
		"target_seconds", target,
		"candidate_count", len(candidates),
		"total_videos", profile.TotalVideos,
	)

	if len(candidates) == 0 {
		// Valid "nothing available" outcome, not an error.
		return []domain.Recommendation{}, nil
	}

	interestList, err := s.scoreInterests(ctx, user, candidates)
	if err != nil {
		return nil, err
	}

	var picks []scored
	path := "warm"

	if profile.TotalVideos == 0 {
		picks = topN(interestList, n)
		path = "cold"
	} else {
		ratingList := scoreByProfile(profile.AverageVideo, candidates, s.cfg.ScorerCap)
		bias := biasFactor(s.cfg.BiasDecay, profile.TotalVideos)
		picks = topN(blendScores(interestList, ratingList, bias), n)
	}

	profile.VideosSeen = appendSeen(profile.VideosSeen, picks)
	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("persist videos seen: %w", err)
	}

	RecommendationsServedTotal.WithLabelValues(path).Inc()

	out := make([]domain.Recommendation, 0, len(picks))
	for _, p := range picks {
		out = append(out, domain.Recommendation{VideoID: p.videoID, Score: p.score})
	}
	return out, nil
}

// scoreInterests embeds the user's joined interest list and runs the
// interest scorer. No interests means an empty list, not an error.
func (s *RecommenderService) scoreInterests(
	ctx context.Context,
	user domain.User,
	candidates []domain.Video,
) ([]scored, error) {

	if len(user.Interests) == 0 {
		return []scored{}, nil
	}

	ref, err := s.embedder.EmbedList(ctx, user.Interests)
	if err != nil {
		return nil, fmt.Errorf("embed interests %q: %w", strings.Join(user.Interests, ", "), err)
	}

	return scoreByInterest(ref, candidates, s.cfg.ScorerCap), nil
}

// RateVideo absorbs one rating event: re-centers the rating, updates
// the running average-video embedding and total weight, bumps the
// event counter by exactly one, and logs the raw event. Nothing is
// persisted when validation or the update itself fails.
func (s *RecommenderService) RateVideo(
	ctx context.Context,
	userID uint,
	videoID string,
	rating float64,
) error {

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if rating < s.cfg.RatingMin || rating > s.cfg.RatingMax {
		return fmt.Errorf("%w: %v not in [%v, %v]",
			domain.ErrInvalidRating, rating, s.cfg.RatingMin, s.cfg.RatingMax)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	video, err := s.videoRepo.FindByVideoID(ctx, videoID)
	if err != nil {
		return err
	}

	newAvg, newTotal, err := UpdateProfile(s.cfg, profile.AverageVideo, profile.TotalRatings, video, rating)
	if err != nil {
		return err
	}

	profile.AverageVideo = newAvg
	profile.TotalRatings = newTotal
	profile.TotalVideos++

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}

	event := domain.Rating{
		UserID:  userID,
		VideoID: videoID,
		Rating:  rating,
		Weight:  rating - s.cfg.RatingMidpoint,
	}
	if err := s.ratingRepo.Save(ctx, event); err != nil {
		return fmt.Errorf("save rating event: %w", err)
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("rating_absorbed",
		"trace_id", tid,
		"user_id", userID,
		"video_id", videoID,
		"rating", rating,
		"total_videos", profile.TotalVideos,
	)

	RatingEventsTotal.Inc()

	return nil
}

// VideoInfo returns the catalog entry for one video id.
func (s *RecommenderService) VideoInfo(ctx context.Context, videoID string) (domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return domain.Video{}, fmt.Errorf("context error: %w", err)
	}
	return s.videoRepo.FindByVideoID(ctx, videoID)
}
