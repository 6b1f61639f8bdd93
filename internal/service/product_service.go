package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/errors"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
)

// ProductService exposes product CRUD and filtered reads.
type ProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, title string) ([]model.Product, error)
	ListProductsByBrand(ctx context.Context, brandID int64) ([]model.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo       repository.ProductRepository
	brands     repository.BrandRepository
	categories repository.CategoryRepository
}

// NewProductService builds a ProductService with its reference repositories.
func NewProductService(repo repository.ProductRepository, brands repository.BrandRepository, categories repository.CategoryRepository) ProductService {
	return &productService{repo: repo, brands: brands, categories: categories}
}

// resolveRefs loads the referenced brand and category, checking them in
// declaration order and failing on the first missing one.
func (s *productService) resolveRefs(ctx context.Context, product *model.Product) error {
	brand, err := s.brands.FindByID(ctx, product.Brand.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFound("Brand", product.Brand.ID)
		}
		return err
	}

	category, err := s.categories.FindByID(ctx, product.Category.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFound("Category", product.Category.ID)
		}
		return err
	}

	product.Brand = *brand
	product.BrandID = brand.ID
	product.Category = *category
	product.CategoryID = category.ID
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.ID = 0
	product.Version = 0

	if err := s.resolveRefs(ctx, product); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, product.ProductTitle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrConflict
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Product", id)
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *productService) SearchProducts(ctx context.Context, title string) ([]model.Product, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *productService) ListProductsByBrand(ctx context.Context, brandID int64) ([]model.Product, error) {
	return s.repo.FindByBrandID(ctx, brandID)
}

func (s *productService) ListProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return s.repo.FindByCategoryID(ctx, categoryID)
}

func (s *productService) ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]model.Product, error) {
	return s.repo.FindByPriceRange(ctx, minPrice, maxPrice)
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, product *model.Product) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFound("Product", id)
		}
		return nil, err
	}

	if err := s.resolveRefs(ctx, product); err != nil {
		return nil, err
	}

	product.ID = id
	product.Version = existing.Version
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFound("Product", id)
	}
	return s.repo.DeleteByID(ctx, id)
}
