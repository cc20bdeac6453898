package service

// User DTOs
type RegisterUserDTO struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type ChangePasswordDTO struct {
	CurrentPassword string
	NewPassword     string
}

// Recipe DTOs
type RecipeIngredientDTO struct {
	ID     uint
	Amount float64
}

type CreateRecipeDTO struct {
	Name        string
	Text        string
	Image       string // base64 data URI
	CookingTime int
	TagSlugs    []string
	Ingredients []RecipeIngredientDTO
}

type UpdateRecipeDTO struct {
	Name        string
	Text        string
	Image       string // base64 data URI, empty keeps the current image
	CookingTime int
	TagSlugs    []string
	Ingredients []RecipeIngredientDTO
}
