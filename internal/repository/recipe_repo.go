package repository

import (
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"gorm.io/gorm"
)

// RecipeFilter mirrors the query parameters of the recipe list
// endpoint. UserID is the requesting user, needed for the favorite and
// cart relation filters.
type RecipeFilter struct {
	AuthorID   *uint
	TagSlugs   []string
	Favorited  *bool
	InCart     *bool
	UserID     uint
	NameSearch string
	Offset     int
	Limit      int
}

type RecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)
	FindByID(id uint) (*models.Recipe, error)
	FindByHash(hash string) (*models.Recipe, error)
	FindPage(filter RecipeFilter) ([]*models.Recipe, int64, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
	ExistsByAuthorAndName(authorID uint, name string) (bool, error)
	CountByAuthor(authorID uint) (int64, error)
	FindPageByAuthor(authorID uint, limit int) ([]*models.Recipe, error)
	SetHash(id uint, hash string) error
	ReplaceTags(recipe *models.Recipe, tags []models.Tag) error
	ReplaceIngredients(recipeID uint, items []models.RecipeIngredient) error
}

type recipeRepo struct {
	db *gorm.DB
}

func NewRecipeRepo(db *gorm.DB) RecipeRepository {
	return &recipeRepo{db: db}
}

func (r *recipeRepo) Create(recipe *models.Recipe) (*models.Recipe, error) {
	err := r.db.Create(recipe).Error
	return recipe, err
}

func (r *recipeRepo) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepo) FindByHash(hash string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Where("hash = ?", hash).First(&recipe).Error
	return &recipe, err
}

func (r *recipeRepo) filtered(f RecipeFilter) *gorm.DB {
	q := r.db.Model(&models.Recipe{})

	if f.AuthorID != nil {
		q = q.Where("recipes.author_id = ?", *f.AuthorID)
	}
	if f.NameSearch != "" {
		q = q.Where("LOWER(recipes.name) LIKE LOWER(?)", "%"+f.NameSearch+"%")
	}
	if len(f.TagSlugs) > 0 {
		tagged := r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
		q = q.Where("recipes.id IN (?)", tagged)
	}
	if f.Favorited != nil && f.UserID != 0 {
		favorited := r.db.Model(&models.Favorite{}).
			Select("recipe_id").
			Where("author_id = ?", f.UserID)
		if *f.Favorited {
			q = q.Where("recipes.id IN (?)", favorited)
		} else {
			q = q.Where("recipes.id NOT IN (?)", favorited)
		}
	}
	if f.InCart != nil && f.UserID != 0 {
		carted := r.db.Model(&models.ShoppingCartItem{}).
			Select("recipe_id").
			Where("author_id = ?", f.UserID)
		if *f.InCart {
			q = q.Where("recipes.id IN (?)", carted)
		} else {
			q = q.Where("recipes.id NOT IN (?)", carted)
		}
	}

	return q
}

func (r *recipeRepo) FindPage(f RecipeFilter) ([]*models.Recipe, int64, error) {
	var count int64
	if err := r.filtered(f).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*models.Recipe
	err := r.filtered(f).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&recipes).Error
	return recipes, count, err
}

func (r *recipeRepo) Update(recipe *models.Recipe) error {
	return r.db.Omit("Tags", "Ingredients").Save(recipe).Error
}

func (r *recipeRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.ShoppingCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Recipe{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

func (r *recipeRepo) ExistsByAuthorAndName(authorID uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).
		Where("author_id = ? AND name = ?", authorID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *recipeRepo) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (r *recipeRepo) FindPageByAuthor(authorID uint, limit int) ([]*models.Recipe, error) {
	q := r.db.Where("author_id = ?", authorID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recipes []*models.Recipe
	err := q.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) SetHash(id uint, hash string) error {
	return r.db.Model(&models.Recipe{}).Where("id = ?", id).
		Update("hash", hash).Error
}

func (r *recipeRepo) ReplaceTags(recipe *models.Recipe, tags []models.Tag) error {
	return r.db.Model(recipe).Association("Tags").Replace(tags)
}

func (r *recipeRepo) ReplaceIngredients(recipeID uint, items []models.RecipeIngredient) error {
	if err := r.db.Where("recipe_id = ?", recipeID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].RecipeID = recipeID
	}
	return r.db.Create(&items).Error
}
