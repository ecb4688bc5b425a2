package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okonek/guidedcooking/backend/internal/model"
	"github.com/okonek/guidedcooking/backend/internal/service"
	"github.com/okonek/guidedcooking/backend/internal/types"
)

// RecipeHandler serves the local recipe CRUD surface.
type RecipeHandler struct {
	recipes  *service.RecipeService
	resolver *service.Resolver
}

// NewRecipeHandler creates a recipe handler.
func NewRecipeHandler(recipes *service.RecipeService, resolver *service.Resolver) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, resolver: resolver}
}

// RegisterRoutes attaches the recipe routes to the given group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.POST("/favorites", h.ResolveFavorites)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}

	router.GET("/bangla-recipes", h.ListSecondaryRecipes)
	router.GET("/sources/:source/:id", h.ResolveSource)
}

// ListRecipes handles GET /api/recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /api/recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrNotFound)
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe handles POST /api/recipes.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe handles PUT /api/recipes/:id.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrNotFound)
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /api/recipes/:id.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, service.ErrNotFound)
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResolveFavorites handles POST /api/recipes/favorites: it resolves a
// client-held id list to the subset of records that still exist.
func (h *RecipeHandler) ResolveFavorites(c *gin.Context) {
	var req types.FavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids list is required"})
		return
	}

	recipes, err := h.recipes.GetManyRecipes(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ListSecondaryRecipes handles GET /api/bangla-recipes.
func (h *RecipeHandler) ListSecondaryRecipes(c *gin.Context) {
	recipes, err := service.SecondaryRecipes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ResolveSource handles GET /api/sources/:source/:id, dispatching a tagged
// recipe reference to whichever source owns it.
func (h *RecipeHandler) ResolveSource(c *gin.Context) {
	source, err := model.ParseRecipeSource(c.Param("source"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload, err := h.resolver.Resolve(c.Request.Context(), model.RecipeRef{
		Source: source,
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
