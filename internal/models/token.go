package models

import "time"

// AuthToken records an issued JWT by its ID. Logout deletes the row,
// which invalidates the token even before it expires.
type AuthToken struct {
	ID        uint   `gorm:"primarykey"`
	JTI       string `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint   `gorm:"not null;index"`
	User      User   `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}
