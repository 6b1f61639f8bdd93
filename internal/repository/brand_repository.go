package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// BrandRepository defines brand persistence operations.
type BrandRepository interface {
	CRUD[model.Brand]
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type brandRepository struct {
	base[model.Brand]
}

// NewBrandRepository builds a GORM-backed brand repository.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{base[model.Brand]{db: db}}
}

func (r *brandRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Brand{}).Where("brandtitle = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
