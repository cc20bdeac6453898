package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

var (
	ErrAlreadyInCollection = errors.New("the recipe has already been added")
	ErrNotInCollection     = errors.New("the recipe is not in the collection")
	ErrEmptyCart           = errors.New("the shopping cart is empty")
)

const shoppingListFont = "DejaVuSans.ttf"

// collection abstracts favorites and the shopping cart, which share
// the add/remove/exists contract.
type collection interface {
	Add(authorID, recipeID uint) error
	Remove(authorID, recipeID uint) (bool, error)
	Exists(authorID, recipeID uint) (bool, error)
}

type CartService struct {
	favorites repository.FavoriteRepository
	cart      repository.CartRepository
	recipes   repository.RecipeRepository
}

func NewCartService(
	favorites repository.FavoriteRepository,
	cart repository.CartRepository,
	recipes repository.RecipeRepository,
) *CartService {
	return &CartService{favorites: favorites, cart: cart, recipes: recipes}
}

func (s *CartService) add(col collection, userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.recipes.FindByID(recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := col.Exists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCollection
	}

	if err := col.Add(userID, recipeID); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *CartService) remove(col collection, userID, recipeID uint) error {
	if _, err := s.recipes.FindByID(recipeID); err != nil {
		return err
	}
	removed, err := col.Remove(userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInCollection
	}
	return nil
}

func (s *CartService) AddFavorite(userID, recipeID uint) (*models.Recipe, error) {
	return s.add(s.favorites, userID, recipeID)
}

func (s *CartService) RemoveFavorite(userID, recipeID uint) error {
	return s.remove(s.favorites, userID, recipeID)
}

func (s *CartService) IsFavorited(userID, recipeID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.favorites.Exists(userID, recipeID)
}

func (s *CartService) AddToCart(userID, recipeID uint) (*models.Recipe, error) {
	return s.add(s.cart, userID, recipeID)
}

func (s *CartService) RemoveFromCart(userID, recipeID uint) error {
	return s.remove(s.cart, userID, recipeID)
}

func (s *CartService) IsInCart(userID, recipeID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.cart.Exists(userID, recipeID)
}

// ShoppingList returns the aggregated ingredient lines for the user's
// cart.
func (s *CartService) ShoppingList(userID uint) ([]repository.CartIngredient, error) {
	count, err := s.cart.Count(userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyCart
	}
	return s.cart.AggregateIngredients(userID)
}

// ShoppingListPDF renders the aggregated list as a PDF document, one
// line per ingredient.
func (s *CartService) ShoppingListPDF(userID uint) ([]byte, error) {
	lines, err := s.ShoppingList(userID)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	font := "Helvetica"
	if _, err := os.Stat(shoppingListFont); err == nil {
		font = "DejaVu"
		pdf.AddUTF8Font(font, "", shoppingListFont)
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 16)
	pdf.Cell(0, 10, "Shopping list")
	pdf.Ln(14)
	pdf.SetFont(font, "", 12)
	for _, line := range lines {
		amount := strconv.FormatFloat(line.Amount, 'f', -1, 64)
		pdf.Cell(0, 8, fmt.Sprintf("%s — %s %s", line.Name, amount, line.MeasurementUnit))
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render shopping list: %w", err)
	}
	return buf.Bytes(), nil
}
