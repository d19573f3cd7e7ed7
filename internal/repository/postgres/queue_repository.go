package postgres

import (
	"context"
	"errors"

	"sparetime/domain"

	"gorm.io/gorm"
)

type QueueRepository struct {
	DB *gorm.DB
}

func NewQueueRepository(db *gorm.DB) *QueueRepository {
	return &QueueRepository{DB: db}
}

func (r *QueueRepository) Create(ctx context.Context, item *domain.QueueItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}

	return nil
}

func (r *QueueRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.QueueItem, error) {
	var items []domain.QueueItem

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *QueueRepository) DeleteByUserAndVideo(ctx context.Context, userID uint, videoID string) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&domain.QueueItem{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("queue item not found")
	}

	return nil
}
