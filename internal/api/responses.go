package api

import (
	"github.com/gin-gonic/gin"

	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/service"
)

func mediaURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}

func userPayload(u *models.User, subscribed bool) gin.H {
	return gin.H{
		"id":            u.ID,
		"username":      u.Username,
		"email":         u.Email,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"avatar":        mediaURL(u.Avatar),
		"is_subscribed": subscribed,
	}
}

func tagPayload(t *models.Tag) gin.H {
	return gin.H{"id": t.ID, "name": t.Name, "slug": t.Slug}
}

func ingredientPayload(i *models.Ingredient) gin.H {
	return gin.H{
		"id":               i.ID,
		"name":             i.Name,
		"measurement_unit": i.MeasurementUnit,
	}
}

func shortRecipePayload(r *models.Recipe) gin.H {
	return gin.H{
		"id":           r.ID,
		"name":         r.Name,
		"image":        mediaURL(r.Image),
		"cooking_time": r.CookingTime,
	}
}

// recipePayload is the full recipe representation with the nested
// author and the requesting user's relation flags.
func recipePayload(r *models.Recipe, authorSubscribed, favorited, inCart bool) gin.H {
	tags := make([]gin.H, 0, len(r.Tags))
	for i := range r.Tags {
		tags = append(tags, tagPayload(&r.Tags[i]))
	}

	ingredients := make([]gin.H, 0, len(r.Ingredients))
	for _, row := range r.Ingredients {
		ingredients = append(ingredients, gin.H{
			"id":               row.Ingredient.ID,
			"name":             row.Ingredient.Name,
			"measurement_unit": row.Ingredient.MeasurementUnit,
			"amount":           row.Amount,
		})
	}

	return gin.H{
		"id":                  r.ID,
		"author":              userPayload(&r.Author, authorSubscribed),
		"name":                r.Name,
		"text":                r.Text,
		"image":               mediaURL(r.Image),
		"cooking_time":        r.CookingTime,
		"tags":                tags,
		"ingredients":         ingredients,
		"is_favorited":        favorited,
		"is_in_shopping_cart": inCart,
	}
}

func subscribedAuthorPayload(sa *service.SubscribedAuthor) gin.H {
	recipes := make([]gin.H, 0, len(sa.Recipes))
	for _, r := range sa.Recipes {
		recipes = append(recipes, shortRecipePayload(r))
	}

	payload := userPayload(sa.Author, true)
	payload["recipes"] = recipes
	payload["recipes_count"] = sa.RecipesCount
	return payload
}
