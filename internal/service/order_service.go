package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// OrderService exposes order CRUD and filtered reads.
type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]model.Order, error)
	ListOrdersByDateRange(ctx context.Context, start, end model.Date) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int64, order *model.Order) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderService struct {
	repo  repository.OrderRepository
	users repository.UserRepository
}

// NewOrderService builds an OrderService with its user reference repository.
func NewOrderService(repo repository.OrderRepository, users repository.UserRepository) OrderService {
	return &orderService{repo: repo, users: users}
}

func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	order.ID = 0
	order.Version = 0

	// Rejected before any existence lookup.
	if order.UserID <= 0 {
		return nil, errors.NewInvalidArgument("User ID must be a positive number")
	}
	if err := ensureExists(ctx, s.users.ExistsByID, "User", order.UserID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Order", id)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *orderService) ListOrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return s.repo.FindByStatus(ctx, status)
}

func (s *orderService) ListOrdersByDateRange(ctx context.Context, start, end model.Date) ([]model.Order, error) {
	return s.repo.FindByDateRange(ctx, start, end)
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, order *model.Order) (*model.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Order", id)
		}
		return nil, err
	}

	if err := ensureExists(ctx, s.users.ExistsByID, "User", order.UserID); err != nil {
		return nil, err
	}

	order.ID = id
	order.Version = existing.Version
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Order", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
