package model

import "gorm.io/gorm"

// Role represents a user role in the system.
type Role struct {
	ID             int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version        int    `json:"version" gorm:"column:version;not null;default:0"`
	CharacterTitle string `json:"characterTitle" gorm:"column:charactertitle;size:13;not null;uniqueIndex" validate:"required,max=13"`
}

// TableName overrides the default table name.
func (Role) TableName() string {
	return "roles"
}

// BeforeUpdate advances the optimistic-concurrency version.
func (r *Role) BeforeUpdate(tx *gorm.DB) error {
	r.Version++
	return nil
}
