package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
)

func TestReviewService_CreateReview(t *testing.T) {
	tests := []struct {
		name          string
		review        *model.Review
		setupMock     func(*MockReviewRepository, *MockUserRepository, *MockOrderRepository)
		expectedError string
	}{
		{
			name:   "successful creation",
			review: &model.Review{ReviewTitle: "Great", Rating: 5, UserID: 1, OrderID: 2},
			setupMock: func(r *MockReviewRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
				r.On("ExistsByUserAndOrder", mock.Anything, int64(1), int64(2)).Return(false, nil)
				r.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)
			},
		},
		{
			name:   "missing user reported before the order is checked",
			review: &model.Review{ReviewTitle: "Great", Rating: 5, UserID: 42, OrderID: 2},
			setupMock: func(r *MockReviewRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(42)).Return(false, nil)
			},
			expectedError: "User not found with id: 42",
		},
		{
			name:   "missing order",
			review: &model.Review{ReviewTitle: "Great", Rating: 5, UserID: 1, OrderID: 77},
			setupMock: func(r *MockReviewRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("ExistsByID", mock.Anything, int64(77)).Return(false, nil)
			},
			expectedError: "Order not found with id: 77",
		},
		{
			name:   "second review for the same user and order conflicts",
			review: &model.Review{ReviewTitle: "Again", Rating: 4, UserID: 1, OrderID: 2},
			setupMock: func(r *MockReviewRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
				r.On("ExistsByUserAndOrder", mock.Anything, int64(1), int64(2)).Return(true, nil)
			},
			expectedError: errors.ErrConflict.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockUsers := new(MockUserRepository)
			mockOrders := new(MockOrderRepository)
			tt.setupMock(mockReviews, mockUsers, mockOrders)

			service := NewReviewService(mockReviews, mockUsers, mockOrders)
			review, err := service.CreateReview(context.Background(), tt.review)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Nil(t, review)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, review)
				assert.Equal(t, int64(0), review.ID)
			}

			mockReviews.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
			mockOrders.AssertExpectations(t)
		})
	}
}

func TestReviewService_ListReviewsByMinRating(t *testing.T) {
	t.Run("out-of-range rating rejected before any lookup", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			mockReviews := new(MockReviewRepository)
			mockUsers := new(MockUserRepository)
			mockOrders := new(MockOrderRepository)

			service := NewReviewService(mockReviews, mockUsers, mockOrders)
			reviews, err := service.ListReviewsByMinRating(context.Background(), rating)

			assert.Nil(t, reviews)
			var invalid *errors.InvalidArgumentError
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, "Rating must be between 1 and 5", err.Error())
			mockReviews.AssertNotCalled(t, "FindByMinRating", mock.Anything, mock.Anything)
		}
	})

	t.Run("in-range rating delegates to the repository", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockUsers := new(MockUserRepository)
		mockOrders := new(MockOrderRepository)
		mockReviews.On("FindByMinRating", mock.Anything, 4).Return([]model.Review{{ID: 1, Rating: 5}}, nil)

		service := NewReviewService(mockReviews, mockUsers, mockOrders)
		reviews, err := service.ListReviewsByMinRating(context.Background(), 4)

		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		mockReviews.AssertExpectations(t)
	})
}

func TestReviewService_UpdateReview(t *testing.T) {
	t.Run("carries the stored version forward", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockUsers := new(MockUserRepository)
		mockOrders := new(MockOrderRepository)
		mockReviews.On("FindByID", mock.Anything, int64(9)).Return(&model.Review{ID: 9, Version: 2, ReviewTitle: "Old", Rating: 3, UserID: 1, OrderID: 2}, nil)
		mockUsers.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
		mockOrders.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
		mockReviews.On("Update", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		service := NewReviewService(mockReviews, mockUsers, mockOrders)
		review, err := service.UpdateReview(context.Background(), 9, &model.Review{Version: 50, ReviewTitle: "Better", Rating: 4, UserID: 1, OrderID: 2})

		assert.NoError(t, err)
		assert.Equal(t, int64(9), review.ID)
		assert.Equal(t, 2, review.Version)
		mockReviews.AssertExpectations(t)
	})

	t.Run("missing review", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockUsers := new(MockUserRepository)
		mockOrders := new(MockOrderRepository)
		mockReviews.On("FindByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewReviewService(mockReviews, mockUsers, mockOrders)
		review, err := service.UpdateReview(context.Background(), 9, &model.Review{ReviewTitle: "X", Rating: 1, UserID: 1, OrderID: 2})

		assert.Nil(t, review)
		assert.EqualError(t, err, "Review not found with id: 9")
	})
}
