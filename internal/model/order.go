package model

import "gorm.io/gorm"

// Order represents a customer order.
type Order struct {
	ID        int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version   int    `json:"version" gorm:"column:version;not null;default:0"`
	OrderDate Date   `json:"orderDate" gorm:"column:orderdate;not null"`
	Status    string `json:"status" gorm:"column:status;not null" validate:"required"`
	UserID    int64  `json:"userId" gorm:"column:userid;not null" validate:"required"`
}

// TableName overrides the default table name.
func (Order) TableName() string {
	return "orders"
}

// BeforeSave defaults the order date to today when absent, on insert
// and update alike; the column is not nullable.
func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = Today()
	}
	return nil
}

// BeforeUpdate advances the optimistic-concurrency version.
func (o *Order) BeforeUpdate(tx *gorm.DB) error {
	o.Version++
	return nil
}
