package main

import (
	"os"

	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/api"
	"github.com/aleksej-tulko/drf-foodgram/internal/config"
	"github.com/aleksej-tulko/drf-foodgram/internal/database"
	"github.com/aleksej-tulko/drf-foodgram/internal/media"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
	"github.com/aleksej-tulko/drf-foodgram/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}
	logger.Setup(cfg.Debug)

	var db *gorm.DB
	if cfg.UseSQLite {
		db, err = database.NewSQLite(cfg.SQLitePath)
	} else {
		db, err = database.NewPostgres(cfg.PostgresDSN())
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Error().Err(err).Msg("failed to migrate database")
		os.Exit(1)
	}

	store := media.NewStore(cfg.MediaRoot)

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)
	tagRepo := repository.NewTagRepo(db)
	ingredientRepo := repository.NewIngredientRepo(db)
	recipeRepo := repository.NewRecipeRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	cartRepo := repository.NewCartRepo(db)

	authService := service.NewAuthService(userRepo, tokenRepo, cfg.SecretKey)
	userService := service.NewUserService(userRepo, store)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, recipeRepo)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, store)
	cartService := service.NewCartService(favoriteRepo, cartRepo, recipeRepo)

	handlers := api.NewHandlers(
		cfg,
		authService,
		userService,
		subscriptionService,
		tagService,
		ingredientService,
		recipeService,
		cartService,
	)
	router := api.NewRouter(cfg, handlers)

	logger.Log.Info().Msg("foodgram backend starting on :8000")
	if err := router.Run(":8000"); err != nil {
		logger.Log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
