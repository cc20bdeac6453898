package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(token *models.AuthToken) (*models.AuthToken, error)
	Exists(jti string) (bool, error)
	Delete(jti string) error
	DeleteByUser(userID uint) error
}

type tokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(token *models.AuthToken) (*models.AuthToken, error) {
	err := r.db.Create(token).Error
	return token, err
}

func (r *tokenRepo) Exists(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AuthToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}

func (r *tokenRepo) Delete(jti string) error {
	return r.db.Where("jti = ?", jti).Delete(&models.AuthToken{}).Error
}

func (r *tokenRepo) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}
