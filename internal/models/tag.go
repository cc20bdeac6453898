package models

import "gorm.io/gorm"

type Tag struct {
	gorm.Model
	Name string `gorm:"size:50;uniqueIndex;not null"`
	Slug string `gorm:"size:50;uniqueIndex;not null"`
}
