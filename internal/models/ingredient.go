package models

import "gorm.io/gorm"

type Ingredient struct {
	gorm.Model
	Name            string `gorm:"size:100;not null;uniqueIndex:idx_name_unit"`
	MeasurementUnit string `gorm:"size:20;not null;uniqueIndex:idx_name_unit"`
}
