package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// ReviewService exposes review CRUD and filtered reads.
type ReviewService interface {
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	GetReview(ctx context.Context, id int64) (*model.Review, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
	ListReviewsByUser(ctx context.Context, userID int64) ([]model.Review, error)
	ListReviewsByOrder(ctx context.Context, orderID int64) ([]model.Review, error)
	ListReviewsByMinRating(ctx context.Context, minRating int) ([]model.Review, error)
	UpdateReview(ctx context.Context, id int64, review *model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type reviewService struct {
	repo   repository.ReviewRepository
	users  repository.UserRepository
	orders repository.OrderRepository
}

// NewReviewService builds a ReviewService with its reference repositories.
func NewReviewService(repo repository.ReviewRepository, users repository.UserRepository, orders repository.OrderRepository) ReviewService {
	return &reviewService{repo: repo, users: users, orders: orders}
}

// checkRefs verifies user then order, stopping at the first missing one.
func (s *reviewService) checkRefs(ctx context.Context, review *model.Review) error {
	if err := ensureExists(ctx, s.users.ExistsByID, "User", review.UserID); err != nil {
		return err
	}
	return ensureExists(ctx, s.orders.ExistsByID, "Order", review.OrderID)
}

func (s *reviewService) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	review.ID = 0
	review.Version = 0

	if err := s.checkRefs(ctx, review); err != nil {
		return nil, err
	}

	// One review per (user, order) pair.
	exists, err := s.repo.ExistsByUserAndOrder(ctx, review.UserID, review.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (*model.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Review", id)
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.repo.FindAll(ctx)
}

func (s *reviewService) ListReviewsByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *reviewService) ListReviewsByOrder(ctx context.Context, orderID int64) ([]model.Review, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *reviewService) ListReviewsByMinRating(ctx context.Context, minRating int) ([]model.Review, error) {
	if minRating < 1 || minRating > 5 {
		return nil, errors.NewInvalidArgument("Rating must be between 1 and 5")
	}
	return s.repo.FindByMinRating(ctx, minRating)
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, review *model.Review) (*model.Review, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Review", id)
		}
		return nil, err
	}

	if err := s.checkRefs(ctx, review); err != nil {
		return nil, err
	}

	review.ID = id
	review.Version = existing.Version
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Review", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
