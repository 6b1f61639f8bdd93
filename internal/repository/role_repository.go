package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	CRUD[model.Role]
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type roleRepository struct {
	base[model.Role]
}

// NewRoleRepository builds a GORM-backed role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{base[model.Role]{db: db}}
}

func (r *roleRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Role{}).Where("charactertitle = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
