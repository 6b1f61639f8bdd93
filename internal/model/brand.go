package model

import "gorm.io/gorm"

// Brand represents a product brand.
type Brand struct {
	ID         int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version    int    `json:"version" gorm:"column:version;not null;default:0"`
	BrandTitle string `json:"brandTitle" gorm:"column:brandtitle;size:30;not null;uniqueIndex" validate:"required,max=30"`
}

// TableName overrides the default table name.
func (Brand) TableName() string {
	return "brand"
}

// BeforeUpdate advances the optimistic-concurrency version.
func (b *Brand) BeforeUpdate(tx *gorm.DB) error {
	b.Version++
	return nil
}
