package api

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aleksej-tulko/drf-foodgram/internal/config"
)

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), AllowedHosts(cfg.Hosts()))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	SetupRoutes(r, cfg, h)
	return r
}

// SetupRoutes registers every endpoint of the API.
func SetupRoutes(r *gin.Engine, cfg *config.Config, h *Handlers) {
	api := r.Group("/api", Authenticate(h.auth))

	authGroup := api.Group("/auth/token")
	authGroup.POST("/login", h.login)
	authGroup.POST("/logout", RequireAuth(), h.logout)

	users := api.Group("/users")
	users.GET("", h.listUsers)
	users.POST("", h.register)
	users.GET("/me", RequireAuth(), h.me)
	users.PUT("/me/avatar", RequireAuth(), h.putAvatar)
	users.DELETE("/me/avatar", RequireAuth(), h.deleteAvatar)
	users.POST("/set_password", RequireAuth(), h.setPassword)
	users.GET("/subscriptions", RequireAuth(), h.listSubscriptions)
	users.GET("/:id", h.retrieveUser)
	users.POST("/:id/subscribe", RequireAuth(), h.subscribe)
	users.DELETE("/:id/subscribe", RequireAuth(), h.unsubscribe)

	tags := api.Group("/tags")
	tags.GET("", h.listTags)
	tags.GET("/:id", h.retrieveTag)

	ingredients := api.Group("/ingredients")
	ingredients.GET("", h.listIngredients)
	ingredients.GET("/:id", h.retrieveIngredient)

	recipes := api.Group("/recipes")
	recipes.GET("", h.listRecipes)
	recipes.POST("", RequireAuth(), h.createRecipe)
	recipes.GET("/download_shopping_cart", RequireAuth(), h.downloadShoppingCart)
	recipes.GET("/:id", h.retrieveRecipe)
	recipes.PUT("/:id", RequireAuth(), h.updateRecipe)
	recipes.PATCH("/:id", RequireAuth(), h.updateRecipe)
	recipes.DELETE("/:id", RequireAuth(), h.deleteRecipe)
	recipes.GET("/:id/get-link", h.getShortLink)
	recipes.POST("/:id/favorite", RequireAuth(), h.addFavorite)
	recipes.DELETE("/:id/favorite", RequireAuth(), h.removeFavorite)
	recipes.POST("/:id/shopping_cart", RequireAuth(), h.addToShoppingCart)
	recipes.DELETE("/:id/shopping_cart", RequireAuth(), h.removeFromShoppingCart)

	r.GET("/s/:hash", h.shortLinkRedirect)

	// The gateway serves media and docs in production; in debug the
	// backend does it itself.
	if cfg.Debug {
		r.Static("/media", cfg.MediaRoot)
	}
	if _, err := os.Stat("docs"); err == nil {
		r.Static("/api/docs", "docs")
	}
}
