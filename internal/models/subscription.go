package models

import "time"

// Subscription links a follower to the author they follow. Hard rows,
// no soft delete: unsubscribing must free the unique pair again.
type Subscription struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UserID      uint `gorm:"not null;uniqueIndex:idx_user_following"`
	User        User `gorm:"foreignKey:UserID"`
	FollowingID uint `gorm:"not null;uniqueIndex:idx_user_following"`
	Following   User `gorm:"foreignKey:FollowingID"`
}
