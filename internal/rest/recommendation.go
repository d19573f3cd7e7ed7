package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sparetime/domain"
	"sparetime/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate           *validator.Validate
		recommenderService RecommenderService
	}

	RecommenderService interface {
		Recommend(ctx context.Context, userID uint, durationMinutes int, n int) ([]domain.Recommendation, error)
		RateVideo(ctx context.Context, userID uint, videoID string, rating float64) error
		VideoInfo(ctx context.Context, videoID string) (domain.Video, error)
	}

	RecommendQuery struct {
		Duration int `query:"duration" validate:"required,min=1"`
		N        int `query:"n"`
	}

	RatingRequest struct {
		VideoID string  `json:"video_id" validate:"required"`
		Rating  float64 `json:"rating" validate:"required"`
	}
)

func NewRecommendationHandler(svc RecommenderService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:           validator.New(),
		recommenderService: svc,
	}
}

// GET /api/v1/recommendations?duration=15&n=3
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	start := time.Now()
	recs, err := h.recommenderService.Recommend(c.Request().Context(), userID, q.Duration, q.N)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/rating
func (h *RecommendationHandler) Rate(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.recommenderService.RateVideo(c.Request().Context(), userID, req.VideoID, req.Rating); err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("rating recorded"))
}

// GET /api/v1/videos/:video_id
func (h *RecommendationHandler) VideoInfo(c echo.Context) error {
	videoID := c.Param("video_id")
	if videoID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "video_id is required"})
	}

	video, err := h.recommenderService.VideoInfo(c.Request().Context(), videoID)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(video))
}

// statusForError maps engine errors onto HTTP statuses: unknown ids are
// client lookups gone wrong, bad input is the client's fault, anything
// else (including a degenerate profile update) is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRating), errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
