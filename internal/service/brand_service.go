package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// BrandService exposes brand CRUD operations.
type BrandService interface {
	CreateBrand(ctx context.Context, brand *model.Brand) (*model.Brand, error)
	GetBrand(ctx context.Context, id int64) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	UpdateBrand(ctx context.Context, id int64, brand *model.Brand) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}

type brandService struct {
	repo repository.BrandRepository
}

// NewBrandService builds a BrandService.
func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) CreateBrand(ctx context.Context, brand *model.Brand) (*model.Brand, error) {
	brand.ID = 0
	brand.Version = 0

	exists, err := s.repo.ExistsByTitle(ctx, brand.BrandTitle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Brand", id)
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.repo.FindAll(ctx)
}

func (s *brandService) UpdateBrand(ctx context.Context, id int64, brand *model.Brand) (*model.Brand, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Brand", id)
		}
		return nil, err
	}

	brand.ID = id
	brand.Version = existing.Version
	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

func (s *brandService) DeleteBrand(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Brand", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
