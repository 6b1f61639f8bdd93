package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Terracotich/apitest/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	CRUD[model.User]
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	FindByRoleID(ctx context.Context, roleID int) ([]model.User, error)
}

type userRepository struct {
	base[model.User]
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base[model.User]{db: db}}
}

func (r *userRepository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("phonenumber = ?", phone).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) FindByRoleID(ctx context.Context, roleID int) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("roleid = ?", roleID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
