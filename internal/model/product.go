package model

import "gorm.io/gorm"

// Product represents a catalog item belonging to a brand and category.
type Product struct {
	ID           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version      int    `json:"version" gorm:"column:version;not null;default:0"`
	ProductTitle string `json:"productTitle" gorm:"column:producttitle;size:30;not null;uniqueIndex" validate:"required,max=30"`
	Price        int    `json:"price" gorm:"column:price;not null" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" gorm:"column:quantity;not null" validate:"gte=0"`
	BrandID      int64  `json:"-" gorm:"column:brandid;not null"`
	CategoryID   int64  `json:"-" gorm:"column:categoryid;not null"`

	// Relations
	Brand    Brand    `json:"brand" gorm:"foreignKey:BrandID" validate:"-"`
	Category Category `json:"category" gorm:"foreignKey:CategoryID" validate:"-"`
}

// TableName overrides the default table name.
func (Product) TableName() string {
	return "product"
}

// BeforeUpdate advances the optimistic-concurrency version.
func (p *Product) BeforeUpdate(tx *gorm.DB) error {
	p.Version++
	return nil
}
