package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okonek/guidedcooking/backend/internal/upstream"
)

// Gateway is the slice of the upstream client the proxy routes need.
type Gateway interface {
	SearchRecipes(ctx context.Context, params upstream.SearchParams) ([]byte, error)
	RecipeInformation(ctx context.Context, id string) ([]byte, error)
	Nutrition(ctx context.Context, id string) ([]byte, error)
	IngredientSubstitutes(ctx context.Context, ingredientName string) ([]byte, error)
}

// ProxyHandler serves the external recipe API proxy routes. Successful
// upstream bodies pass through untouched.
type ProxyHandler struct {
	gateway Gateway
}

// NewProxyHandler creates a proxy handler.
func NewProxyHandler(gateway Gateway) *ProxyHandler {
	return &ProxyHandler{gateway: gateway}
}

// RegisterRoutes attaches the proxy routes to the given group.
func (h *ProxyHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/search-recipes", h.SearchRecipes)
	router.GET("/recipe/:id", h.RecipeInformation)
	router.GET("/recipe/:id/nutrition", h.Nutrition)
	router.GET("/ingredient-substitutes", h.IngredientSubstitutes)
}

// SearchRecipes handles GET /api/search-recipes.
func (h *ProxyHandler) SearchRecipes(c *gin.Context) {
	body, err := h.gateway.SearchRecipes(c.Request.Context(), upstream.SearchParams{
		Query:        c.Query("query"),
		Cuisine:      c.Query("cuisine"),
		Diet:         c.Query("diet"),
		Intolerances: c.Query("intolerances"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// RecipeInformation handles GET /api/recipe/:id.
func (h *ProxyHandler) RecipeInformation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id is required"})
		return
	}

	body, err := h.gateway.RecipeInformation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// Nutrition handles GET /api/recipe/:id/nutrition.
func (h *ProxyHandler) Nutrition(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe id is required"})
		return
	}

	body, err := h.gateway.Nutrition(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// IngredientSubstitutes handles GET /api/ingredient-substitutes.
func (h *ProxyHandler) IngredientSubstitutes(c *gin.Context) {
	name := c.Query("ingredientName")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredientName is required"})
		return
	}

	body, err := h.gateway.IngredientSubstitutes(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
