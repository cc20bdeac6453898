package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/database"
	"github.com/aleksej-tulko/drf-foodgram/internal/media"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

// 1x1 transparent png
const testImage = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABAgMAAABieywaAAAACVBMVEUAAAD///9fX1/S0ecCAAAACXBIWXMAAA7EAAAOxAGVKw4bAAAACklEQVQImWNoAAAAggCByxOyYQAAAABJRU5ErkJggg=="

type testEnv struct {
	db      *gorm.DB
	store   *media.Store
	users   *UserService
	auth    *AuthService
	subs    *SubscriptionService
	tags    *TagService
	recipes *RecipeService
	cart    *CartService
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	store := media.NewStore(t.TempDir())

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	subRepo := repository.NewSubscriptionRepo(db)
	tagRepo := repository.NewTagRepo(db)
	ingredientRepo := repository.NewIngredientRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	cartRepo := repository.NewCartRepo(db)

	return &testEnv{
		db:      db,
		store:   store,
		users:   NewUserService(userRepo, store),
		auth:    NewAuthService(userRepo, tokenRepo, "test-secret"),
		subs:    NewSubscriptionService(subRepo, userRepo, recipeRepo),
		tags:    NewTagService(tagRepo),
		recipes: NewRecipeService(recipeRepo, tagRepo, ingredientRepo, store),
		cart:    NewCartService(favoriteRepo, cartRepo, recipeRepo),
	}
}

func (e *testEnv) registerUser(t *testing.T, username string) *models.User {
	user, err := e.users.Register(RegisterUserDTO{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "Qwerty123",
	})
	assert.NoError(t, err)
	return user
}

func (e *testEnv) seedTag(t *testing.T, name, slug string) models.Tag {
	tag := models.Tag{Name: name, Slug: slug}
	assert.NoError(t, e.db.Create(&tag).Error)
	return tag
}

func (e *testEnv) seedIngredient(t *testing.T, name, unit string) models.Ingredient {
	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	assert.NoError(t, e.db.Create(&ingredient).Error)
	return ingredient
}

func (e *testEnv) createRecipe(t *testing.T, author *models.User, name string) *models.Recipe {
	tag := e.seedTag(t, "Tag for "+name, "tag-"+name)
	ingredient := e.seedIngredient(t, "ingredient for "+name, "g")

	recipe, err := e.recipes.CreateRecipe(author, CreateRecipeDTO{
		Name:        name,
		Text:        "cook it well",
		Image:       testImage,
		CookingTime: 25,
		TagSlugs:    []string{tag.Slug},
		Ingredients: []RecipeIngredientDTO{{ID: ingredient.ID, Amount: 100}},
	})
	assert.NoError(t, err)
	return recipe
}
