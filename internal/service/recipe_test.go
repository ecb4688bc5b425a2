package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/okonek/guidedcooking/backend/internal/model"
	"github.com/okonek/guidedcooking/backend/internal/types"
)

func setupTestService(t *testing.T) *RecipeService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return NewRecipeService(db)
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestCreateAndGetRoundtrip(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{
		Title:          "Dal Soup",
		ImageURL:       "http://example.com/dal.jpg",
		ReadyInMinutes: intPtr(25),
		Servings:       intPtr(4),
		Ingredients: model.IngredientList{
			{Name: "Red lentils", Amount: 200, Unit: "g"},
			{Name: "Water", Amount: 800, Unit: "ml"},
		},
		Steps: model.StepList{
			{Text: "Rinse the lentils."},
			{Text: "Simmer until soft."},
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dal Soup", got.Title)
	assert.Equal(t, 25, *got.ReadyInMinutes)
	assert.Len(t, got.Ingredients, 2)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{Title: "   "})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateRejectsNegativePrepTime(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title:          "Bad",
		ReadyInMinutes: intPtr(-5),
	})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestStepsAreRenumberedOnCreate(t *testing.T) {
	svc := setupTestService(t)

	created, err := svc.CreateRecipe(context.Background(), &types.CreateRecipeRequest{
		Title: "Tea",
		Steps: model.StepList{
			{Number: 7, Text: "Boil water."},
			{Number: 2, Text: "Steep the leaves."},
			{Number: 9, Text: "Pour."},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Steps, 3)
	for i, step := range created.Steps {
		assert.Equal(t, i+1, step.Number)
	}
}

func TestUpdateMergesSuppliedFieldsOnly(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{
		Title:          "Original",
		ImageURL:       "http://example.com/original.jpg",
		ReadyInMinutes: intPtr(30),
		Servings:       intPtr(2),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.ID, &types.UpdateRecipeRequest{
		Title: strPtr("Renamed"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "http://example.com/original.jpg", updated.ImageURL)
	assert.Equal(t, 30, *updated.ReadyInMinutes)
	assert.Equal(t, 2, *updated.Servings)
}

func TestUpdateRenumbersSteps(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{
		Title: "Tea",
		Steps: model.StepList{{Text: "Boil."}, {Text: "Steep."}},
	})
	require.NoError(t, err)

	newSteps := model.StepList{{Number: 4, Text: "Boil."}, {Number: 1, Text: "Steep."}, {Number: 2, Text: "Pour."}}
	updated, err := svc.UpdateRecipe(ctx, created.ID, &types.UpdateRecipeRequest{Steps: &newSteps})
	require.NoError(t, err)

	require.Len(t, updated.Steps, 3)
	for i, step := range updated.Steps {
		assert.Equal(t, i+1, step.Number)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.UpdateRecipe(context.Background(), uuid.New(), &types.UpdateRecipeRequest{
		Title: strPtr("Nope"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMakesRecipeUnreachable(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))

	_, err = svc.GetRecipe(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateRecipe(ctx, created.ID, &types.UpdateRecipeRequest{Title: strPtr("Back")})
	assert.ErrorIs(t, err, ErrNotFound)

	// A second delete reports not-found again, not success.
	assert.ErrorIs(t, svc.DeleteRecipe(ctx, created.ID), ErrNotFound)
}

func TestListReturnsInsertionOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{Title: title})
		require.NoError(t, err)
	}

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "First", recipes[0].Title)
	assert.Equal(t, "Third", recipes[2].Title)
}

func TestGetManyOmitsMissingIDs(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	a, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{Title: "Kept"})
	require.NoError(t, err)

	got, err := svc.GetManyRecipes(ctx, []string{a.ID.String(), uuid.New().String(), "not-a-uuid"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}

func TestGetManyRejectsEmptyList(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.GetManyRecipes(context.Background(), nil)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
