package main

import (
	"flag"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/auth"
	"github.com/aleksej-tulko/drf-foodgram/internal/config"
	"github.com/aleksej-tulko/drf-foodgram/internal/database"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
	"github.com/aleksej-tulko/drf-foodgram/pkg/logger"
)

const usage = `usage: manage <command> [arguments]

commands:
  migrate                   apply the database schema
  createsuperuser           create a staff account
  import_json <path>        load ingredients from a JSON file
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}
	logger.Setup(cfg.Debug)

	db, err := connect(cfg)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "migrate":
		err = database.Migrate(db)
	case "createsuperuser":
		err = createSuperuser(db, os.Args[2:])
	case "import_json":
		err = importJSON(db, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UseSQLite {
		return database.NewSQLite(cfg.SQLitePath)
	}
	return database.NewPostgres(cfg.PostgresDSN())
}

func createSuperuser(db *gorm.DB, args []string) error {
	fs := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	email := fs.String("email", "", "superuser email")
	username := fs.String("username", "", "superuser username")
	firstName := fs.String("first-name", "Admin", "first name")
	lastName := fs.String("last-name", "Admin", "last name")
	password := fs.String("password", "", "superuser password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *username == "" || *password == "" {
		return fmt.Errorf("email, username and password are required")
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return err
	}

	repo := repository.NewUserRepo(db)
	user, err := repo.Create(&models.User{
		Email:       *email,
		Username:    *username,
		FirstName:   *firstName,
		LastName:    *lastName,
		Password:    hash,
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	logger.Log.Info().Str("username", user.Username).Msg("superuser created")
	return nil
}

func importJSON(db *gorm.DB, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: manage import_json <path>")
	}

	ingredients := service.NewIngredientService(repository.NewIngredientRepo(db))
	count, err := ingredients.ImportJSON(args[0])
	if err != nil {
		return err
	}

	logger.Log.Info().Int("count", count).Msg("ingredients imported")
	return nil
}
