package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/okonek/guidedcooking/backend/internal/model"
)

// RecipeDetailFetcher is the part of the upstream gateway the resolver needs.
type RecipeDetailFetcher interface {
	RecipeInformation(ctx context.Context, id string) ([]byte, error)
}

// Resolver dispatches a tagged recipe reference to the store, the upstream
// gateway or the bundled secondary set. This replaces ad hoc source string
// checks in callers.
type Resolver struct {
	recipes  *RecipeService
	upstream RecipeDetailFetcher
}

// NewResolver creates a recipe source resolver.
func NewResolver(recipes *RecipeService, upstream RecipeDetailFetcher) *Resolver {
	return &Resolver{recipes: recipes, upstream: upstream}
}

// Resolve returns the JSON payload of the referenced recipe, whatever its
// source.
func (r *Resolver) Resolve(ctx context.Context, ref model.RecipeRef) (json.RawMessage, error) {
	switch ref.Source {
	case model.SourceLocal:
		id, err := uuid.Parse(ref.ID)
		if err != nil {
			return nil, &ValidationError{Field: "id", Message: "must be a uuid for local recipes"}
		}
		recipe, err := r.recipes.GetRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		return json.Marshal(recipe)

	case model.SourceUpstream:
		return r.upstream.RecipeInformation(ctx, ref.ID)

	case model.SourceSecondary:
		recipe, err := SecondaryRecipeBySlug(ref.ID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(recipe)

	default:
		return nil, fmt.Errorf("unknown recipe source %q", ref.Source)
	}
}
