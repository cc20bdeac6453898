package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/config"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
)

// Handlers bundles the services the HTTP layer depends on.
type Handlers struct {
	cfg         *config.Config
	auth        *service.AuthService
	users       *service.UserService
	subs        *service.SubscriptionService
	tags        *service.TagService
	ingredients *service.IngredientService
	recipes     *service.RecipeService
	cart        *service.CartService
}

func NewHandlers(
	cfg *config.Config,
	auth *service.AuthService,
	users *service.UserService,
	subs *service.SubscriptionService,
	tags *service.TagService,
	ingredients *service.IngredientService,
	recipes *service.RecipeService,
	cart *service.CartService,
) *Handlers {
	return &Handlers{
		cfg:         cfg,
		auth:        auth,
		users:       users,
		subs:        subs,
		tags:        tags,
		ingredients: ingredients,
		recipes:     recipes,
		cart:        cart,
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
