package model

import "gorm.io/gorm"

// Review represents a review a user leaves on an order. A user can
// review a given order at most once.
type Review struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version     int    `json:"version" gorm:"column:version;not null;default:0"`
	ReviewTitle string `json:"reviewTitle" gorm:"column:reviewtitle;size:200;not null" validate:"required,max=200"`
	Rating      int    `json:"rating" gorm:"column:rating;not null" validate:"required,gte=1,lte=5"`
	ReviewDate  Date   `json:"reviewDate" gorm:"column:reviewdate;not null"`
	UserID      int64  `json:"userId" gorm:"column:userid;not null;uniqueIndex:idx_review_user_order" validate:"required"`
	OrderID     int64  `json:"orderId" gorm:"column:orderid;not null;uniqueIndex:idx_review_user_order" validate:"required"`
}

// TableName overrides the default table name.
func (Review) TableName() string {
	return "review"
}

// BeforeSave defaults the review date to today when absent, on insert
// and update alike; the column is not nullable.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.ReviewDate.IsZero() {
		r.ReviewDate = Today()
	}
	return nil
}

// BeforeUpdate advances the optimistic-concurrency version.
func (r *Review) BeforeUpdate(tx *gorm.DB) error {
	r.Version++
	return nil
}
