package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) (*models.Ingredient, error)
	CreateBatch(ingredients []*models.Ingredient) error
	FindAll() ([]*models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	FindByIDs(ids []uint) ([]models.Ingredient, error)
	Search(name string) ([]*models.Ingredient, error)
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db: db}
}

func (r *ingredientRepo) Create(ingredient *models.Ingredient) (*models.Ingredient, error) {
	err := r.db.Create(ingredient).Error
	return ingredient, err
}

func (r *ingredientRepo) CreateBatch(ingredients []*models.Ingredient) error {
	return r.db.CreateInBatches(ingredients, 500).Error
}

func (r *ingredientRepo) FindAll() ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, id).Error
	return &ingredient, err
}

func (r *ingredientRepo) FindByIDs(ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

// Search ranks names starting with the term before names merely
// containing it, both groups alphabetical.
func (r *ingredientRepo) Search(name string) ([]*models.Ingredient, error) {
	if name == "" {
		return r.FindAll()
	}

	var prefix []*models.Ingredient
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", name+"%").
		Order("name").Find(&prefix).Error; err != nil {
		return nil, err
	}

	seen := make([]uint, 0, len(prefix))
	for _, ing := range prefix {
		seen = append(seen, ing.ID)
	}

	query := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	if len(seen) > 0 {
		query = query.Where("id NOT IN ?", seen)
	}

	var contains []*models.Ingredient
	if err := query.Order("name").Find(&contains).Error; err != nil {
		return nil, err
	}

	return append(prefix, contains...), nil
}
