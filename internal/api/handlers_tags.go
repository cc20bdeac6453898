package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) listTags(c *gin.Context) {
	tags, err := h.tags.ListTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(tags))
	for _, tag := range tags {
		results = append(results, tagPayload(tag))
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handlers) retrieveTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tag, err := h.tags.GetTagByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}
	c.JSON(http.StatusOK, tagPayload(tag))
}

func (h *Handlers) listIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.ListIngredients(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	results := make([]gin.H, 0, len(ingredients))
	for _, ingredient := range ingredients {
		results = append(results, ingredientPayload(ingredient))
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handlers) retrieveIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ingredient, err := h.ingredients.GetIngredientByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, ingredientPayload(ingredient))
}
