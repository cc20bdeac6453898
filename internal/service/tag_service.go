package service

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

type TagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) ListTags() ([]*models.Tag, error) {
	return s.repo.FindAll()
}

func (s *TagService) GetTagByID(id uint) (*models.Tag, error) {
	return s.repo.FindByID(id)
}
