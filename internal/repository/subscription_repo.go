package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(sub *models.Subscription) (*models.Subscription, error)
	Delete(userID, followingID uint) (bool, error)
	Exists(userID, followingID uint) (bool, error)
	FindPageByUser(userID uint, offset, limit int) ([]*models.Subscription, error)
	CountByUser(userID uint) (int64, error)
}

type subscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(sub *models.Subscription) (*models.Subscription, error) {
	err := r.db.Create(sub).Error
	return sub, err
}

func (r *subscriptionRepo) Delete(userID, followingID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND following_id = ?", userID, followingID).
		Delete(&models.Subscription{})
	return result.RowsAffected > 0, result.Error
}

func (r *subscriptionRepo) Exists(userID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepo) FindPageByUser(userID uint, offset, limit int) ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := r.db.Preload("Following").
		Joins("JOIN users ON users.id = subscriptions.following_id").
		Where("subscriptions.user_id = ?", userID).
		Order("users.username").
		Offset(offset).Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
