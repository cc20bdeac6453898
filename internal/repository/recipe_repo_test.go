package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/database"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "hash",
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name string,
	tags []models.Tag, ingredients []models.RecipeIngredient) *models.Recipe {
	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "cook it",
		Image:       "images/recipes/" + name + ".png",
		CookingTime: 30,
		Tags:        tags,
		Ingredients: ingredients,
	}
	assert.NoError(t, db.Create(recipe).Error)
	return recipe
}

func TestRecipeRepoCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	author := createTestUser(t, db, "chef")
	tag := models.Tag{Name: "Lunch", Slug: "lunch"}
	assert.NoError(t, db.Create(&tag).Error)
	flour := models.Ingredient{Name: "flour", MeasurementUnit: "g"}
	assert.NoError(t, db.Create(&flour).Error)

	created, err := repo.Create(&models.Recipe{
		AuthorID:    author.ID,
		Name:        "Pancakes",
		Text:        "mix and fry",
		Image:       "images/recipes/p.png",
		CookingTime: 20,
		Tags:        []models.Tag{tag},
		Ingredients: []models.RecipeIngredient{
			{IngredientID: flour.ID, Amount: 200},
		},
	})
	assert.NoError(t, err)

	got, err := repo.FindByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Pancakes", got.Name)
	assert.Equal(t, "chef", got.Author.Username)
	assert.Len(t, got.Tags, 1)
	assert.Len(t, got.Ingredients, 1)
	assert.Equal(t, "flour", got.Ingredients[0].Ingredient.Name)
	assert.Equal(t, float64(200), got.Ingredients[0].Amount)
}

func TestRecipeRepoUniqueAuthorName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	chef := createTestUser(t, db, "chef")
	other := createTestUser(t, db, "other")
	createTestRecipe(t, db, chef, "Pancakes", nil, nil)

	exists, err := repo.ExistsByAuthorAndName(chef.ID, "Pancakes")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByAuthorAndName(other.ID, "Pancakes")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestRecipeRepoFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	chef := createTestUser(t, db, "chef")
	reader := createTestUser(t, db, "reader")

	lunch := models.Tag{Name: "Lunch", Slug: "lunch"}
	dinner := models.Tag{Name: "Dinner", Slug: "dinner"}
	assert.NoError(t, db.Create(&lunch).Error)
	assert.NoError(t, db.Create(&dinner).Error)

	soup := createTestRecipe(t, db, chef, "Soup", []models.Tag{lunch}, nil)
	stew := createTestRecipe(t, db, chef, "Stew", []models.Tag{dinner}, nil)
	createTestRecipe(t, db, reader, "Salad", []models.Tag{lunch, dinner}, nil)

	assert.NoError(t, db.Create(&models.Favorite{AuthorID: reader.ID, RecipeID: soup.ID}).Error)
	assert.NoError(t, db.Create(&models.ShoppingCartItem{AuthorID: reader.ID, RecipeID: stew.ID}).Error)

	names := func(recipes []*models.Recipe) []string {
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Name)
		}
		return out
	}

	all, count, err := repo.FindPage(RecipeFilter{Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, all, 3)

	byAuthor, count, err := repo.FindPage(RecipeFilter{AuthorID: &chef.ID, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.ElementsMatch(t, []string{"Soup", "Stew"}, names(byAuthor))

	byTag, count, err := repo.FindPage(RecipeFilter{TagSlugs: []string{"lunch"}, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.ElementsMatch(t, []string{"Soup", "Salad"}, names(byTag))

	yes := true
	favorited, count, err := repo.FindPage(RecipeFilter{Favorited: &yes, UserID: reader.ID, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, []string{"Soup"}, names(favorited))

	no := false
	notFavorited, count, err := repo.FindPage(RecipeFilter{Favorited: &no, UserID: reader.ID, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.ElementsMatch(t, []string{"Stew", "Salad"}, names(notFavorited))

	inCart, count, err := repo.FindPage(RecipeFilter{InCart: &yes, UserID: reader.ID, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, []string{"Stew"}, names(inCart))

	bySearch, count, err := repo.FindPage(RecipeFilter{NameSearch: "sa", Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, []string{"Salad"}, names(bySearch))
}

func TestRecipeRepoDeleteCleansRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	chef := createTestUser(t, db, "chef")
	flour := models.Ingredient{Name: "flour", MeasurementUnit: "g"}
	assert.NoError(t, db.Create(&flour).Error)

	recipe := createTestRecipe(t, db, chef, "Pancakes", nil,
		[]models.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}})
	assert.NoError(t, db.Create(&models.Favorite{AuthorID: chef.ID, RecipeID: recipe.ID}).Error)
	assert.NoError(t, db.Create(&models.ShoppingCartItem{AuthorID: chef.ID, RecipeID: recipe.ID}).Error)

	assert.NoError(t, repo.Delete(recipe.ID))

	_, err := repo.FindByID(recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Favorite{}).Where("recipe_id = ?", recipe.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ShoppingCartItem{}).Where("recipe_id = ?", recipe.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRecipeRepoShortLinkHash(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	chef := createTestUser(t, db, "chef")
	recipe := createTestRecipe(t, db, chef, "Pancakes", nil, nil)

	assert.NoError(t, repo.SetHash(recipe.ID, "aB3"))

	got, err := repo.FindByHash("aB3")
	assert.NoError(t, err)
	assert.Equal(t, recipe.ID, got.ID)

	_, err = repo.FindByHash("zzz")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecipeRepoReplaceIngredients(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepo(db)

	chef := createTestUser(t, db, "chef")
	flour := models.Ingredient{Name: "flour", MeasurementUnit: "g"}
	sugar := models.Ingredient{Name: "sugar", MeasurementUnit: "g"}
	assert.NoError(t, db.Create(&flour).Error)
	assert.NoError(t, db.Create(&sugar).Error)

	recipe := createTestRecipe(t, db, chef, "Pancakes", nil,
		[]models.RecipeIngredient{{IngredientID: flour.ID, Amount: 100}})

	err := repo.ReplaceIngredients(recipe.ID,
		[]models.RecipeIngredient{{IngredientID: sugar.ID, Amount: 50}})
	assert.NoError(t, err)

	got, err := repo.FindByID(recipe.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Ingredients, 1)
	assert.Equal(t, "sugar", got.Ingredients[0].Ingredient.Name)
	assert.Equal(t, float64(50), got.Ingredients[0].Amount)
}
