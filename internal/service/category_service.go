package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// CategoryService exposes category CRUD operations.
type CategoryService interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id int64, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	category.ID = 0
	category.Version = 0

	exists, err := s.repo.ExistsByTitle(ctx, category.CategoryTitle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, category *model.Category) (*model.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Category", id)
		}
		return nil, err
	}

	category.ID = id
	category.Version = existing.Version
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Category", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
