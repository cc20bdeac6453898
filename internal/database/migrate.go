package database

import (
	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
)

// Migrate runs auto-migration for the full schema.
func Migrate(db *gorm.DB) error {
	return AutoMigrateTables(db,
		&models.User{},
		&models.Subscription{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favorite{},
		&models.ShoppingCartItem{},
		&models.AuthToken{},
	)
}
