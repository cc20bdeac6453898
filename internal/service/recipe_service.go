package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/aleksej-tulko/drf-foodgram/internal/media"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

var (
	ErrRecipeExists = errors.New("a recipe with this name already exists")
	ErrNoImage      = errors.New("the image field is empty")
	ErrNotOwner     = errors.New("only the author can modify this recipe")
)

const (
	hashLength  = 3
	hashCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type RecipeService struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
	store       *media.Store
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	store *media.Store,
) *RecipeService {
	return &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		store:       store,
	}
}

func (s *RecipeService) validateDTO(name, text string, cookingTime int,
	tagSlugs []string, items []RecipeIngredientDTO) error {
	if err := validateRecipeName(name); err != nil {
		return err
	}
	if err := validateRecipeText(text); err != nil {
		return err
	}
	if err := validateCookingTime(cookingTime); err != nil {
		return err
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if item.Amount < 1 {
			return fmt.Errorf("the minimum allowed value is 1")
		}
		ids = append(ids, item.ID)
	}
	return validateTagsAndIngredients(tagSlugs, ids)
}

// resolve maps tag slugs and ingredient IDs onto stored rows.
func (s *RecipeService) resolve(tagSlugs []string, items []RecipeIngredientDTO,
) ([]models.Tag, []models.RecipeIngredient, error) {
	tags, err := s.tags.FindBySlugs(tagSlugs)
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(tagSlugs) {
		return nil, nil, fmt.Errorf("unknown tag in %v", tagSlugs)
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	stored, err := s.ingredients.FindByIDs(ids)
	if err != nil {
		return nil, nil, err
	}
	known := make(map[uint]struct{}, len(stored))
	for _, ing := range stored {
		known[ing.ID] = struct{}{}
	}

	rows := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		if _, ok := known[item.ID]; !ok {
			return nil, nil, fmt.Errorf("ingredient with ID %d not found", item.ID)
		}
		rows = append(rows, models.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return tags, rows, nil
}

func (s *RecipeService) CreateRecipe(author *models.User, dto CreateRecipeDTO) (*models.Recipe, error) {
	if err := s.validateDTO(dto.Name, dto.Text, dto.CookingTime,
		dto.TagSlugs, dto.Ingredients); err != nil {
		return nil, err
	}
	if dto.Image == "" {
		return nil, ErrNoImage
	}

	exists, err := s.recipes.ExistsByAuthorAndName(author.ID, dto.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRecipeExists
	}

	tags, rows, err := s.resolve(dto.TagSlugs, dto.Ingredients)
	if err != nil {
		return nil, err
	}

	image, err := s.store.SaveBase64(dto.Image, "images/recipes")
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    author.ID,
		Name:        dto.Name,
		Text:        dto.Text,
		Image:       image,
		CookingTime: dto.CookingTime,
		Tags:        tags,
		Ingredients: rows,
	}
	if _, err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}
	return s.recipes.FindByID(recipe.ID)
}

func (s *RecipeService) UpdateRecipe(user *models.User, id uint, dto UpdateRecipeDTO) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanEditRecipe(user, recipe) {
		return nil, ErrNotOwner
	}

	if err := s.validateDTO(dto.Name, dto.Text, dto.CookingTime,
		dto.TagSlugs, dto.Ingredients); err != nil {
		return nil, err
	}

	if dto.Name != recipe.Name {
		exists, err := s.recipes.ExistsByAuthorAndName(recipe.AuthorID, dto.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrRecipeExists
		}
	}

	tags, rows, err := s.resolve(dto.TagSlugs, dto.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe.Name = dto.Name
	recipe.Text = dto.Text
	recipe.CookingTime = dto.CookingTime

	if dto.Image != "" {
		image, err := s.store.SaveBase64(dto.Image, "images/recipes")
		if err != nil {
			return nil, err
		}
		old := recipe.Image
		recipe.Image = image
		if old != "" {
			_ = s.store.Remove(old)
		}
	}

	if err := s.recipes.Update(recipe); err != nil {
		return nil, err
	}
	if err := s.recipes.ReplaceTags(recipe, tags); err != nil {
		return nil, err
	}
	if err := s.recipes.ReplaceIngredients(recipe.ID, rows); err != nil {
		return nil, err
	}
	return s.recipes.FindByID(recipe.ID)
}

func (s *RecipeService) GetRecipeByID(id uint) (*models.Recipe, error) {
	return s.recipes.FindByID(id)
}

func (s *RecipeService) ListRecipes(filter repository.RecipeFilter) ([]*models.Recipe, int64, error) {
	return s.recipes.FindPage(filter)
}

func (s *RecipeService) DeleteRecipe(user *models.User, id uint) error {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return err
	}
	if !CanEditRecipe(user, recipe) {
		return ErrNotOwner
	}
	if err := s.recipes.Delete(id); err != nil {
		return err
	}
	return s.store.Remove(recipe.Image)
}

// ShortLinkHash returns the recipe's short link hash, assigning a
// random one on first request. Collisions are retried.
func (s *RecipeService) ShortLinkHash(id uint) (string, error) {
	recipe, err := s.recipes.FindByID(id)
	if err != nil {
		return "", err
	}
	if recipe.Hash != nil {
		return *recipe.Hash, nil
	}

	for attempt := 0; attempt < 10; attempt++ {
		hash, err := randomHash(hashLength)
		if err != nil {
			return "", err
		}
		if err := s.recipes.SetHash(id, hash); err == nil {
			return hash, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique short link")
}

func (s *RecipeService) ResolveShortLink(hash string) (*models.Recipe, error) {
	return s.recipes.FindByHash(hash)
}

// CanEditRecipe mirrors the owner-or-staff object permission.
func CanEditRecipe(user *models.User, recipe *models.Recipe) bool {
	return recipe.AuthorID == user.ID || user.IsStaff || user.IsSuperuser
}

func randomHash(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(hashCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = hashCharset[n.Int64()]
	}
	return string(out), nil
}
