package model

import "gorm.io/gorm"

// Payment represents a payment made by a user against an order.
type Payment struct {
	ID            int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version       int    `json:"version" gorm:"column:version;not null;default:0"`
	Price         int    `json:"price" gorm:"column:price;not null" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" gorm:"column:paymentmethod;size:10;not null" validate:"required,max=10"`
	PaymentDate   Date   `json:"paymentDate" gorm:"column:paymentdate;not null"`
	UserID        int64  `json:"userId" gorm:"column:userid;not null" validate:"required"`
	OrderID       int64  `json:"orderId" gorm:"column:orderid;not null" validate:"required"`
}

// TableName overrides the default table name.
func (Payment) TableName() string {
	return "payment"
}

// BeforeSave defaults the payment date to today when absent, on insert
// and update alike; the column is not nullable.
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if p.PaymentDate.IsZero() {
		p.PaymentDate = Today()
	}
	return nil
}

// BeforeUpdate advances the optimistic-concurrency version.
func (p *Payment) BeforeUpdate(tx *gorm.DB) error {
	p.Version++
	return nil
}
