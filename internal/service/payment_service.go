package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// PaymentService exposes payment CRUD and filtered reads.
type PaymentService interface {
	CreatePayment(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	GetPayment(ctx context.Context, id int64) (*model.Payment, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID int64) ([]model.Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
	ListPaymentsByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error)
	ListPaymentsByMethod(ctx context.Context, method string) ([]model.Payment, error)
	UpdatePayment(ctx context.Context, id int64, payment *model.Payment) (*model.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

type paymentService struct {
	repo   repository.PaymentRepository
	users  repository.UserRepository
	orders repository.OrderRepository
}

// NewPaymentService builds a PaymentService with its reference repositories.
func NewPaymentService(repo repository.PaymentRepository, users repository.UserRepository, orders repository.OrderRepository) PaymentService {
	return &paymentService{repo: repo, users: users, orders: orders}
}

// checkRefs verifies user then order, stopping at the first missing one.
func (s *paymentService) checkRefs(ctx context.Context, payment *model.Payment) error {
	if err := ensureExists(ctx, s.users.ExistsByID, "User", payment.UserID); err != nil {
		return err
	}
	return ensureExists(ctx, s.orders.ExistsByID, "Order", payment.OrderID)
}

func (s *paymentService) CreatePayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	payment.ID = 0
	payment.Version = 0

	if err := s.checkRefs(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Payment", id)
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return s.repo.FindAll(ctx)
}

func (s *paymentService) ListPaymentsByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *paymentService) ListPaymentsByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *paymentService) ListPaymentsByDateRange(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	return s.repo.FindByDateRange(ctx, start, end)
}

func (s *paymentService) ListPaymentsByMethod(ctx context.Context, method string) ([]model.Payment, error) {
	return s.repo.FindByMethod(ctx, method)
}

func (s *paymentService) UpdatePayment(ctx context.Context, id int64, payment *model.Payment) (*model.Payment, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Payment", id)
		}
		return nil, err
	}

	if err := s.checkRefs(ctx, payment); err != nil {
		return nil, err
	}

	payment.ID = id
	payment.Version = existing.Version
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Payment", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
