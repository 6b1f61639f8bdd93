package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Terracotich/apitest/internal/model"
)

func TestPaymentService_CreatePayment(t *testing.T) {
	tests := []struct {
		name          string
		payment       *model.Payment
		setupMock     func(*MockPaymentRepository, *MockUserRepository, *MockOrderRepository)
		expectedError string
	}{
		{
			name:    "successful creation",
			payment: &model.Payment{Price: 500, PaymentMethod: "CARD", UserID: 1, OrderID: 2},
			setupMock: func(p *MockPaymentRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("ExistsByID", mock.Anything, int64(2)).Return(true, nil)
				p.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)
			},
		},
		{
			name:    "missing user reported before the order is checked",
			payment: &model.Payment{Price: 500, PaymentMethod: "CARD", UserID: 7, OrderID: 2},
			setupMock: func(p *MockPaymentRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(7)).Return(false, nil)
			},
			expectedError: "User not found with id: 7",
		},
		{
			name:    "missing order",
			payment: &model.Payment{Price: 500, PaymentMethod: "CARD", UserID: 1, OrderID: 8},
			setupMock: func(p *MockPaymentRepository, u *MockUserRepository, o *MockOrderRepository) {
				u.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
				o.On("ExistsByID", mock.Anything, int64(8)).Return(false, nil)
			},
			expectedError: "Order not found with id: 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPayments := new(MockPaymentRepository)
			mockUsers := new(MockUserRepository)
			mockOrders := new(MockOrderRepository)
			tt.setupMock(mockPayments, mockUsers, mockOrders)

			service := NewPaymentService(mockPayments, mockUsers, mockOrders)
			payment, err := service.CreatePayment(context.Background(), tt.payment)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, payment)
				assert.Equal(t, int64(0), payment.ID)
			}

			mockPayments.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
			mockOrders.AssertExpectations(t)
		})
	}
}

func TestPaymentService_ListPaymentsByMethod(t *testing.T) {
	mockPayments := new(MockPaymentRepository)
	mockUsers := new(MockUserRepository)
	mockOrders := new(MockOrderRepository)
	mockPayments.On("FindByMethod", mock.Anything, "CARD").Return([]model.Payment{{ID: 1, PaymentMethod: "CARD"}}, nil)

	service := NewPaymentService(mockPayments, mockUsers, mockOrders)
	payments, err := service.ListPaymentsByMethod(context.Background(), "CARD")

	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	mockPayments.AssertExpectations(t)
}
