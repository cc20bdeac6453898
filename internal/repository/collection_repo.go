package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

// CartIngredient is one aggregated line of a shopping list.
type CartIngredient struct {
	Name            string
	MeasurementUnit string
	Amount          float64
}

type FavoriteRepository interface {
	Add(authorID, recipeID uint) error
	Remove(authorID, recipeID uint) (bool, error)
	Exists(authorID, recipeID uint) (bool, error)
}

type CartRepository interface {
	Add(authorID, recipeID uint) error
	Remove(authorID, recipeID uint) (bool, error)
	Exists(authorID, recipeID uint) (bool, error)
	Count(authorID uint) (int64, error)
	AggregateIngredients(authorID uint) ([]CartIngredient, error)
}

type favoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(authorID, recipeID uint) error {
	return r.db.Create(&models.Favorite{AuthorID: authorID, RecipeID: recipeID}).Error
}

func (r *favoriteRepo) Remove(authorID, recipeID uint) (bool, error) {
	result := r.db.Where("author_id = ? AND recipe_id = ?", authorID, recipeID).
		Delete(&models.Favorite{})
	return result.RowsAffected > 0, result.Error
}

func (r *favoriteRepo) Exists(authorID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("author_id = ? AND recipe_id = ?", authorID, recipeID).
		Count(&count).Error
	return count > 0, err
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) Add(authorID, recipeID uint) error {
	return r.db.Create(&models.ShoppingCartItem{AuthorID: authorID, RecipeID: recipeID}).Error
}

func (r *cartRepo) Remove(authorID, recipeID uint) (bool, error) {
	result := r.db.Where("author_id = ? AND recipe_id = ?", authorID, recipeID).
		Delete(&models.ShoppingCartItem{})
	return result.RowsAffected > 0, result.Error
}

func (r *cartRepo) Exists(authorID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCartItem{}).
		Where("author_id = ? AND recipe_id = ?", authorID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *cartRepo) Count(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShoppingCartItem{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

// AggregateIngredients sums the amounts of every ingredient across all
// recipes in the user's cart. One row per ingredient and unit.
func (r *cartRepo) AggregateIngredients(authorID uint) ([]CartIngredient, error) {
	var rows []CartIngredient
	err := r.db.Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, " +
			"ingredients.measurement_unit AS measurement_unit, " +
			"SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_items ON shopping_cart_items.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_items.author_id = ?", authorID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&rows).Error
	return rows, err
}
