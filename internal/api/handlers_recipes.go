package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
)

type recipeIngredientRequest struct {
	ID     uint    `json:"id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type recipeRequest struct {
	Name        string                    `json:"name" binding:"required"`
	Text        string                    `json:"text" binding:"required"`
	Image       string                    `json:"image"`
	CookingTime int                       `json:"cooking_time" binding:"required"`
	Tags        []string                  `json:"tags"`
	Ingredients []recipeIngredientRequest `json:"ingredients"`
}

func (r recipeRequest) ingredientDTOs() []service.RecipeIngredientDTO {
	items := make([]service.RecipeIngredientDTO, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		items = append(items, service.RecipeIngredientDTO{ID: ing.ID, Amount: ing.Amount})
	}
	return items
}

// recipeView assembles the full payload with the requester's relation
// flags.
func (h *Handlers) recipeView(c *gin.Context, recipe *models.Recipe) (gin.H, error) {
	requester := currentUserID(c)

	subscribed, err := h.subs.IsSubscribed(requester, recipe.AuthorID)
	if err != nil {
		return nil, err
	}
	favorited, err := h.cart.IsFavorited(requester, recipe.ID)
	if err != nil {
		return nil, err
	}
	inCart, err := h.cart.IsInCart(requester, recipe.ID)
	if err != nil {
		return nil, err
	}
	return recipePayload(recipe, subscribed, favorited, inCart), nil
}

func boolFilter(c *gin.Context, name string) *bool {
	raw, present := c.GetQuery(name)
	if !present {
		return nil
	}
	value := raw == "1" || raw == "true"
	return &value
}

func (h *Handlers) listRecipes(c *gin.Context) {
	p := pagination(c)
	filter := repository.RecipeFilter{
		UserID:     currentUserID(c),
		TagSlugs:   c.QueryArray("tags"),
		NameSearch: c.Query("search"),
		Favorited:  boolFilter(c, "is_favorited"),
		InCart:     boolFilter(c, "is_in_shopping_cart"),
		Offset:     p.Offset(),
		Limit:      p.Limit,
	}
	if raw := c.Query("author"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			authorID := uint(id)
			filter.AuthorID = &authorID
		}
	}

	recipes, count, err := h.recipes.ListRecipes(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(recipes))
	for _, recipe := range recipes {
		view, err := h.recipeView(c, recipe)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		results = append(results, view)
	}
	c.JSON(http.StatusOK, paginated(c, count, p, results))
}

func (h *Handlers) createRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(currentUser(c), service.CreateRecipeDTO{
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		TagSlugs:    req.Tags,
		Ingredients: req.ingredientDTOs(),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.recipeView(c, recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handlers) retrieveRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipeByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	view, err := h.recipeView(c, recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) updateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(currentUser(c), id, service.UpdateRecipeDTO{
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		TagSlugs:    req.Tags,
		Ingredients: req.ingredientDTOs(),
	})
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	view, err := h.recipeView(c, recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handlers) deleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipes.DeleteRecipe(currentUser(c), id); err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) getShortLink(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	hash, err := h.recipes.ShortLinkHash(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	link := fmt.Sprintf("%s://%s/s/%s/", requestScheme(c), c.Request.Host, hash)
	c.JSON(http.StatusOK, gin.H{"short-link": link})
}

func (h *Handlers) shortLinkRedirect(c *gin.Context) {
	recipe, err := h.recipes.ResolveShortLink(c.Param("hash"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/recipes/%d", recipe.ID))
}

func (h *Handlers) addToCollection(c *gin.Context,
	add func(userID, recipeID uint) (*models.Recipe, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := add(currentUserID(c), id)
	if err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrAlreadyInCollection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, shortRecipePayload(recipe))
}

func (h *Handlers) removeFromCollection(c *gin.Context,
	remove func(userID, recipeID uint) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := remove(currentUserID(c), id); err != nil {
		switch {
		case isNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrNotInCollection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) addFavorite(c *gin.Context) {
	h.addToCollection(c, h.cart.AddFavorite)
}

func (h *Handlers) removeFavorite(c *gin.Context) {
	h.removeFromCollection(c, h.cart.RemoveFavorite)
}

func (h *Handlers) addToShoppingCart(c *gin.Context) {
	h.addToCollection(c, h.cart.AddToCart)
}

func (h *Handlers) removeFromShoppingCart(c *gin.Context) {
	h.removeFromCollection(c, h.cart.RemoveFromCart)
}

func (h *Handlers) downloadShoppingCart(c *gin.Context) {
	pdf, err := h.cart.ShoppingListPDF(currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
