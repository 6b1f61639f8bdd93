package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	CRUD[model.Order]
	FindByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	FindByStatus(ctx context.Context, status string) ([]model.Order, error)
	FindByDateRange(ctx context.Context, start, end model.Date) ([]model.Order, error)
}

type orderRepository struct {
	base[model.Order]
}

// NewOrderRepository builds a GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{base[model.Order]{db: db}}
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("userid = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByStatus(ctx context.Context, status string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByDateRange returns orders with a date inside the inclusive range.
func (r *orderRepository) FindByDateRange(ctx context.Context, start, end model.Date) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Where("orderdate BETWEEN ? AND ?", start, end).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
