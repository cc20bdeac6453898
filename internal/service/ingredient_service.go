package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

type IngredientService struct {
	repo repository.IngredientRepository
}

func NewIngredientService(repo repository.IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

func (s *IngredientService) ListIngredients(name string) ([]*models.Ingredient, error) {
	return s.repo.Search(name)
}

func (s *IngredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	return s.repo.FindByID(id)
}

// ImportJSON loads ingredients from a JSON array of
// {"name": ..., "measurement_unit": ...} objects.
func (s *IngredientService) ImportJSON(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ingredients := make([]*models.Ingredient, 0, len(items))
	for _, item := range items {
		if item.Name == "" || item.MeasurementUnit == "" {
			return 0, fmt.Errorf("entry with empty name or measurement_unit in %s", path)
		}
		ingredients = append(ingredients, &models.Ingredient{
			Name:            item.Name,
			MeasurementUnit: item.MeasurementUnit,
		})
	}

	if err := s.repo.CreateBatch(ingredients); err != nil {
		return 0, fmt.Errorf("failed to import ingredients: %w", err)
	}
	return len(ingredients), nil
}
