package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okonek/guidedcooking/backend/internal/model"
	"github.com/okonek/guidedcooking/backend/internal/types"
)

// RecipeService handles recipe store operations. All writes are synchronous
// write-through; concurrent writers to the same id are last-write-wins.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe persists a new recipe and returns it with its assigned id.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.CreateRecipeRequest) (*model.Recipe, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if req.ReadyInMinutes != nil && *req.ReadyInMinutes < 0 {
		return nil, &ValidationError{Field: "ready_in_minutes", Message: "must not be negative"}
	}
	if req.Servings != nil && *req.Servings <= 0 {
		return nil, &ValidationError{Field: "servings", Message: "must be positive"}
	}

	recipe := &model.Recipe{
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		Difficulty:     req.Difficulty,
		Starred:        req.Starred,
		Ingredients:    req.Ingredients,
		Steps:          req.Steps,
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListRecipes returns all stored recipes in insertion order.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe merges the supplied fields onto the stored record. The id is
// never altered; steps are renumbered after the merge.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, &ValidationError{Field: "title", Message: "must not be empty"}
		}
		recipe.Title = *req.Title
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.ReadyInMinutes != nil {
		if *req.ReadyInMinutes < 0 {
			return nil, &ValidationError{Field: "ready_in_minutes", Message: "must not be negative"}
		}
		recipe.ReadyInMinutes = req.ReadyInMinutes
	}
	if req.Servings != nil {
		if *req.Servings <= 0 {
			return nil, &ValidationError{Field: "servings", Message: "must be positive"}
		}
		recipe.Servings = req.Servings
	}
	if req.Difficulty != nil {
		recipe.Difficulty = *req.Difficulty
	}
	if req.Starred != nil {
		recipe.Starred = *req.Starred
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}
	recipe.Steps.Renumber()

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe. A second delete of the same id reports
// ErrNotFound again, never success.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetManyRecipes resolves a favorites id list to the subset of records that
// exist. Malformed and unknown ids are silently omitted; an empty list is a
// validation error.
func (s *RecipeService) GetManyRecipes(ctx context.Context, ids []string) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return nil, &ValidationError{Field: "ids", Message: "must not be empty"}
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, id)
	}

	recipes := []model.Recipe{}
	if len(parsed) == 0 {
		return recipes, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", parsed).Order("created_at").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
