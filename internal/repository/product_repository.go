package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Terracotich/apitest/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	CRUD[model.Product]
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Product, error)
	FindByBrandID(ctx context.Context, brandID int64) ([]model.Product, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]model.Product, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]model.Product, error)
}

type productRepository struct {
	base[model.Product]
}

// NewProductRepository builds a GORM-backed product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{base[model.Product]{db: db}}
}

// Create persists the product without touching the referenced brand
// and category rows.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

// Update overwrites the product row, leaving associations untouched.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Preload("Brand").Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("producttitle = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) SearchByTitle(ctx context.Context, title string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		Where("LOWER(producttitle) LIKE LOWER(?)", "%"+title+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByBrandID(ctx context.Context, brandID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		Where("brandid = ?", brandID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		Where("categoryid = ?", categoryID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Brand").Preload("Category").
		Where("price BETWEEN ? AND ?", minPrice, maxPrice).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
