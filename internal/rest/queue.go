package rest

import (
	"context"
	"net/http"

	"sparetime/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	QueueHandler struct {
		validate     *validator.Validate
		queueService QueueService
	}

	QueueService interface {
		Add(ctx context.Context, userID uint, videoID string) (domain.QueueItem, error)
		List(ctx context.Context, userID uint) ([]domain.QueueItem, error)
		Remove(ctx context.Context, userID uint, videoID string) error
	}

	QueueRequest struct {
		VideoID string `json:"video_id" validate:"required"`
	}
)

func NewQueueHandler(svc QueueService) *QueueHandler {
	return &QueueHandler{
		validate:     validator.New(),
		queueService: svc,
	}
}

func (h *QueueHandler) Add(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req QueueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	item, err := h.queueService.Add(c.Request().Context(), userID, req.VideoID)
	if err != nil {
		return c.JSON(statusForError(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(item))
}

func (h *QueueHandler) List(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	items, err := h.queueService.List(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

func (h *QueueHandler) Remove(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req QueueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.queueService.Remove(c.Request().Context(), userID, req.VideoID); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("queue item removed"))
}
