package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// RoleService exposes role CRUD operations.
type RoleService interface {
	CreateRole(ctx context.Context, role *model.Role) (*model.Role, error)
	GetRole(ctx context.Context, id int64) (*model.Role, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	UpdateRole(ctx context.Context, id int64, role *model.Role) (*model.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService builds a RoleService.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) CreateRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	// Identity and version are always storage-assigned.
	role.ID = 0
	role.Version = 0

	exists, err := s.repo.ExistsByTitle(ctx, role.CharacterTitle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) GetRole(ctx context.Context, id int64) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Role", id)
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.repo.FindAll(ctx)
}

func (s *roleService) UpdateRole(ctx context.Context, id int64, role *model.Role) (*model.Role, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Role", id)
		}
		return nil, err
	}

	// Path identity wins; the client-submitted version is ignored and the
	// stored one carried forward (storage advances it on save).
	role.ID = id
	role.Version = existing.Version
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Role", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
