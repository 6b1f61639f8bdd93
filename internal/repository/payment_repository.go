package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	CRUD[model.Payment]
	FindByUserID(ctx context.Context, userID int64) ([]model.Payment, error)
	FindByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error)
	FindByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error)
	FindByMethod(ctx context.Context, method string) ([]model.Payment, error)
}

type paymentRepository struct {
	base[model.Payment]
}

// NewPaymentRepository builds a GORM-backed payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{base[model.Payment]{db: db}}
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("orderid = ?", orderID).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByDateRange returns payments with a date inside the inclusive range.
func (r *paymentRepository) FindByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("paymentdate BETWEEN ? AND ?", start, end).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByMethod(ctx context.Context, method string) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Where("paymentmethod = ?", method).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
