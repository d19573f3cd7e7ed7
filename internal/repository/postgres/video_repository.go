package postgres

import (
	"context"
	"errors"
	"fmt"

	"sparetime/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{
		DB: db,
	}
}

func (r *VideoRepository) FindByVideoID(ctx context.Context, videoID string) (domain.Video, error) {
	var video domain.Video

	err := r.DB.WithContext(ctx).Where("video_id = ?", videoID).First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Video{}, domain.ErrVideoNotFound
		}
		return domain.Video{}, err
	}

	return video, nil
}

// FindByDurationRange returns all catalog entries whose duration falls
// inside [minSeconds, maxSeconds], inclusive.
func (r *VideoRepository) FindByDurationRange(ctx context.Context, minSeconds, maxSeconds int) ([]domain.Video, error) {
	var videos []domain.Video

	err := r.DB.WithContext(ctx).
		Where("duration_seconds >= ? AND duration_seconds <= ?", minSeconds, maxSeconds).
		Find(&videos).Error
	if err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *VideoRepository) ExistsByVideoID(ctx context.Context, videoID string) (bool, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Video{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *VideoRepository) Upsert(ctx context.Context, video *domain.Video) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "video_id"}},
			UpdateAll: true,
		},
	).Create(video).Error; err != nil {
		return fmt.Errorf("failed to upsert video: %w", err)
	}

	return nil
}
