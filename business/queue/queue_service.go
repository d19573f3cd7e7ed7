package queue

import (
	"context"
	"fmt"

	"sparetime/domain"
	"sparetime/pkg/logger"

	"github.com/google/uuid"
)

type QueueRepository interface {
	Create(ctx context.Context, item *domain.QueueItem) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.QueueItem, error)
	DeleteByUserAndVideo(ctx context.Context, userID uint, videoID string) error
}

type VideoRepository interface {
	FindByVideoID(ctx context.Context, videoID string) (domain.Video, error)
}

type queueService struct {
	queueRepo QueueRepository
	videoRepo VideoRepository
}

func NewQueueService(queueRepo QueueRepository, videoRepo VideoRepository) *queueService {
	return &queueService{
		queueRepo: queueRepo,
		videoRepo: videoRepo,
	}
}

// Add puts a video on the user's watch queue. The video must exist in
// the catalog; duplicates are allowed, matching the original behavior.
func (s *queueService) Add(ctx context.Context, userID uint, videoID string) (domain.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.QueueItem{}, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.videoRepo.FindByVideoID(ctx, videoID); err != nil {
		return domain.QueueItem{}, err
	}

	item := domain.QueueItem{
		ID:      uuid.NewString(),
		UserID:  userID,
		VideoID: videoID,
	}

	if err := s.queueRepo.Create(ctx, &item); err != nil {
		logger.Error("Failed to add queue item", err)
		return domain.QueueItem{}, err
	}

	return item, nil
}

func (s *queueService) List(ctx context.Context, userID uint) ([]domain.QueueItem, error) {
	items, err := s.queueRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list queue", err)
		return nil, err
	}

	return items, nil
}

func (s *queueService) Remove(ctx context.Context, userID uint, videoID string) error {
	if err := s.queueRepo.DeleteByUserAndVideo(ctx, userID, videoID); err != nil {
		logger.Error("Failed to remove queue item", err)
		return err
	}

	return nil
}
