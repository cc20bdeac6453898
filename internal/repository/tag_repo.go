package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) (*models.Tag, error)
	FindAll() ([]*models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindBySlugs(slugs []string) ([]models.Tag, error)
}

type tagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(tag *models.Tag) (*models.Tag, error) {
	err := r.db.Create(tag).Error
	return tag, err
}

func (r *tagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

func (r *tagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return &tag, err
}

func (r *tagRepo) FindBySlugs(slugs []string) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("slug IN ?", slugs).Find(&tags).Error
	return tags, err
}
