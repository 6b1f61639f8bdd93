package model

import "gorm.io/gorm"

// Category represents a product category.
type Category struct {
	ID            int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version       int    `json:"version" gorm:"column:version;not null;default:0"`
	CategoryTitle string `json:"categoryTitle" gorm:"column:categorytitle;size:30;not null;uniqueIndex" validate:"required,max=30"`
}

// TableName overrides the default table name.
func (Category) TableName() string {
	return "category"
}

// BeforeUpdate advances the optimistic-concurrency version.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.Version++
	return nil
}
