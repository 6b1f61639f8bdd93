package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered client.
type User struct {
	ID             int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Version        int       `json:"version" gorm:"column:version;not null;default:0"`
	Key            *int64    `json:"key" gorm:"column:key;uniqueIndex"`
	FirstName      string    `json:"firstName" gorm:"column:firstname;size:30;not null" validate:"required,max=30"`
	SurName        string    `json:"surName" gorm:"column:surname;size:30;not null" validate:"required,max=30"`
	LastName       string    `json:"lastName" gorm:"column:lastname;size:30" validate:"omitempty,max=30"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"column:phonenumber;size:21;not null;uniqueIndex" validate:"required,phone"`
	ClientLogin    string    `json:"clientLogin" gorm:"column:clientlogin;size:20;not null;uniqueIndex" validate:"required,min=3,max=20"`
	ClientPassword string    `json:"clientPassword" gorm:"column:clientpassword;not null" validate:"required,min=6"`
	RoleID         int       `json:"roleId" gorm:"column:roleid;not null" validate:"required"`
	RegDate        time.Time `json:"regDate" gorm:"column:regdate"`
}

// TableName overrides the default table name.
func (User) TableName() string {
	return "users"
}

// BeforeCreate stamps the registration timestamp when absent.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.RegDate.IsZero() {
		u.RegDate = time.Now()
	}
	return nil
}

// BeforeUpdate advances the optimistic-concurrency version.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.Version++
	return nil
}
