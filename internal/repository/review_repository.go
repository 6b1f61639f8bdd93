package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	CRUD[model.Review]
	FindByUserID(ctx context.Context, userID int64) ([]model.Review, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]model.Review, error)
	FindByMinRating(ctx context.Context, minRating int) ([]model.Review, error)
	ExistsByUserAndOrder(ctx context.Context, userID, orderID int64) (bool, error)
}

type reviewRepository struct {
	base[model.Review]
}

// NewReviewRepository builds a GORM-backed review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{base[model.Review]{db: db}}
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByOrderID(ctx context.Context, orderID int64) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("orderid = ?", orderID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) FindByMinRating(ctx context.Context, minRating int) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("rating >= ?", minRating).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsByUserAndOrder(ctx context.Context, userID, orderID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Review{}).Where("userid = ? AND orderid = ?", userID, orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
