package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email       string `gorm:"size:40;uniqueIndex;not null"`
	Username    string `gorm:"size:30;uniqueIndex;not null"`
	FirstName   string `gorm:"size:20;not null"`
	LastName    string `gorm:"size:20;not null"`
	Password    string `gorm:"size:200;not null"` // bcrypt hash
	Avatar      string `gorm:"size:255"`
	IsStaff     bool
	IsSuperuser bool
}
