package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// UserService exposes user CRUD operations.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListUsersByRole(ctx context.Context, roleID int) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	// Identity, version and key are always storage-assigned.
	user.ID = 0
	user.Version = 0
	user.Key = nil

	exists, err := s.repo.ExistsByPhoneNumber(ctx, user.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("User", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) ListUsersByRole(ctx context.Context, roleID int) ([]model.User, error) {
	return s.repo.FindByRoleID(ctx, roleID)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("User", id)
		}
		return nil, err
	}

	user.ID = id
	user.Version = existing.Version
	// The key tracks the user id once the row exists, regardless of
	// what the client submitted.
	user.Key = &id
	if user.RegDate.IsZero() {
		user.RegDate = existing.RegDate
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("User", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
