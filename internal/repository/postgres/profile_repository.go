package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparetime/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		DB: db,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if err := r.DB.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create user profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uint) (domain.UserProfile, error) {
	var profile domain.UserProfile

	err := r.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	return profile, nil
}

// UpdateProfile writes only the engine-owned fields so concurrent
// writers cannot clobber columns they never read.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	profile.UpdatedAt = time.Now()

	result := r.DB.WithContext(ctx).Model(&domain.UserProfile{}).
		Where("user_id = ?", profile.UserID).
		Select("average_video", "total_ratings", "total_videos", "videos_seen", "updated_at").
		Updates(&profile)
	if result.Error != nil {
		return fmt.Errorf("failed to update user profile: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
