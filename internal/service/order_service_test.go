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

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         *model.Order
		setupMock     func(*MockOrderRepository, *MockUserRepository)
		expectedError string
	}{
		{
			name:  "successful creation",
			order: &model.Order{Status: "NEW", UserID: 1},
			setupMock: func(o *MockOrderRepository, u *MockUserRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			},
		},
		{
			name:          "non-positive user id rejected before any lookup",
			order:         &model.Order{Status: "NEW", UserID: 0},
			setupMock:     func(o *MockOrderRepository, u *MockUserRepository) {},
			expectedError: "User ID must be a positive number",
		},
		{
			name:  "missing user",
			order: &model.Order{Status: "NEW", UserID: 42},
			setupMock: func(o *MockOrderRepository, u *MockUserRepository) {
				u.On("ExistsByID", mock.Anything, int64(42)).Return(false, nil)
			},
			expectedError: "User not found with id: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := new(MockOrderRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockOrders, mockUsers)

			service := NewOrderService(mockOrders, mockUsers)
			order, err := service.CreateOrder(context.Background(), tt.order)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, int64(0), order.ID)
				assert.Equal(t, 0, order.Version)
			}

			mockOrders.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_InvalidUserIDError(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)

	service := NewOrderService(mockOrders, mockUsers)
	_, err := service.CreateOrder(context.Background(), &model.Order{Status: "NEW", UserID: -3})

	var invalid *errors.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
	// No existence lookup happens for a rejected id.
	mockUsers.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("missing user leaves the stored order untouched", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		mockOrders.On("FindByID", mock.Anything, int64(7)).Return(&model.Order{ID: 7, Version: 1, Status: "NEW", UserID: 1}, nil)
		mockUsers.On("ExistsByID", mock.Anything, int64(404)).Return(false, nil)

		service := NewOrderService(mockOrders, mockUsers)
		order, err := service.UpdateOrder(context.Background(), 7, &model.Order{Status: "SHIPPED", UserID: 404})

		assert.Nil(t, order)
		assert.EqualError(t, err, "User not found with id: 404")
		mockOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("successful update carries the stored version", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		mockOrders.On("FindByID", mock.Anything, int64(7)).Return(&model.Order{ID: 7, Version: 4, Status: "NEW", UserID: 1}, nil)
		mockUsers.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
		mockOrders.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

		service := NewOrderService(mockOrders, mockUsers)
		order, err := service.UpdateOrder(context.Background(), 7, &model.Order{Version: 99, Status: "SHIPPED", UserID: 1})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), order.ID)
		assert.Equal(t, 4, order.Version)
		assert.Equal(t, "SHIPPED", order.Status)
		mockOrders.AssertExpectations(t)
	})
}

func TestOrderService_ListOrdersByDateRange(t *testing.T) {
	start, _ := model.ParseDate("2026-01-01")
	end, _ := model.ParseDate("2026-01-31")

	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockOrders.On("FindByDateRange", mock.Anything, start, end).Return([]model.Order{{ID: 1, Status: "NEW", UserID: 1}}, nil)

	service := NewOrderService(mockOrders, mockUsers)
	orders, err := service.ListOrdersByDateRange(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		mockOrders.On("ExistsByID", mock.Anything, int64(12)).Return(false, nil)

		service := NewOrderService(mockOrders, mockUsers)
		err := service.DeleteOrder(context.Background(), 12)

		assert.EqualError(t, err, "Order not found with id: 12")
		mockOrders.AssertExpectations(t)
	})

	t.Run("existing order", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		mockOrders.On("ExistsByID", mock.Anything, int64(12)).Return(true, nil)
		mockOrders.On("DeleteByID", mock.Anything, int64(12)).Return(nil)

		service := NewOrderService(mockOrders, mockUsers)
		assert.NoError(t, service.DeleteOrder(context.Background(), 12))
		mockOrders.AssertExpectations(t)
	})
}

func TestOrderService_CreateOrder_DefaultsHandledByStorage(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockUsers.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	mockOrders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.OrderDate.IsZero()
	})).Return(nil)

	service := NewOrderService(mockOrders, mockUsers)
	// The order date stays zero through the service; the storage hook
	// stamps today's date on insert.
	_, err := service.CreateOrder(context.Background(), &model.Order{Status: "NEW", UserID: 1})

	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_GetOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockOrders.On("FindByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	service := NewOrderService(mockOrders, mockUsers)
	order, err := service.GetOrder(context.Background(), 3)

	assert.Nil(t, order)
	var notFound *errors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Order", notFound.Resource)
}
