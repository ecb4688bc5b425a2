// Package types holds request payloads shared by handlers and services.
package types

import "github.com/okonek/guidedcooking/backend/internal/model"

// CreateRecipeRequest is the payload for POST /api/recipes.
type CreateRecipeRequest struct {
	Title          string               `json:"title"`
	ImageURL       string               `json:"image_url"`
	ReadyInMinutes *int                 `json:"ready_in_minutes"`
	Servings       *int                 `json:"servings"`
	Difficulty     string               `json:"difficulty"`
	Starred        bool                 `json:"starred"`
	Ingredients    model.IngredientList `json:"ingredients"`
	Steps          model.StepList       `json:"steps"`
}

// UpdateRecipeRequest is the payload for PUT /api/recipes/:id. Nil fields
// are left untouched; an id in the body is ignored.
type UpdateRecipeRequest struct {
	Title          *string               `json:"title"`
	ImageURL       *string               `json:"image_url"`
	ReadyInMinutes *int                  `json:"ready_in_minutes"`
	Servings       *int                  `json:"servings"`
	Difficulty     *string               `json:"difficulty"`
	Starred        *bool                 `json:"starred"`
	Ingredients    *model.IngredientList `json:"ingredients"`
	Steps          *model.StepList       `json:"steps"`
}

// FavoritesRequest is the payload for POST /api/recipes/favorites.
type FavoritesRequest struct {
	IDs []string `json:"ids"`
}
