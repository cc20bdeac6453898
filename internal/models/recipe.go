package models

import "time"

// Recipe rows are deleted for real, so the (author, name) pair can be
// reused after deletion.
type Recipe struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AuthorID    uint   `gorm:"not null;uniqueIndex:idx_author_name"`
	Author      User   `gorm:"foreignKey:AuthorID"`
	Name        string `gorm:"size:50;not null;uniqueIndex:idx_author_name"`
	Text        string `gorm:"size:200;not null"`
	Image       string `gorm:"size:255"`
	CookingTime int     `gorm:"not null"` // minutes
	Hash        *string `gorm:"size:6;uniqueIndex"` // short link, NULL until requested
	Tags        []Tag   `gorm:"many2many:recipe_tags;"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
}

// RecipeIngredient attaches an amount of an ingredient to a recipe.
type RecipeIngredient struct {
	ID           uint       `gorm:"primarykey"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID"`
	Amount       float64    `gorm:"not null"`
}

// Favorite and ShoppingCartItem share the same shape, mirroring each
// other the way the favorites and cart tables do.
type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	AuthorID  uint   `gorm:"not null;uniqueIndex:idx_favorite_author_recipe"`
	RecipeID  uint   `gorm:"not null;uniqueIndex:idx_favorite_author_recipe"`
	Recipe    Recipe `gorm:"foreignKey:RecipeID"`
}

type ShoppingCartItem struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	AuthorID  uint   `gorm:"not null;uniqueIndex:idx_cart_author_recipe"`
	RecipeID  uint   `gorm:"not null;uniqueIndex:idx_cart_author_recipe"`
	Recipe    Recipe `gorm:"foreignKey:RecipeID"`
}
