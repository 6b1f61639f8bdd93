package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	CRUD[model.Category]
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type categoryRepository struct {
	base[model.Category]
}

// NewCategoryRepository builds a GORM-backed category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{base[model.Category]{db: db}}
}

func (r *categoryRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("categorytitle = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
