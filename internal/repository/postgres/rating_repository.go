package postgres

import (
	"context"
	"fmt"

	"sparetime/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Save(ctx context.Context, rating domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&rating).Error; err != nil {
		return fmt.Errorf("failed to save rating event: %w", err)
	}

	return nil
}
