package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonek/guidedcooking/backend/internal/model"
	"github.com/okonek/guidedcooking/backend/internal/types"
)

type fakeFetcher struct {
	body []byte
	err  error
	got  string
}

func (f *fakeFetcher) RecipeInformation(ctx context.Context, id string) ([]byte, error) {
	f.got = id
	return f.body, f.err
}

func TestResolveLocal(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &types.CreateRecipeRequest{Title: "Local Stew"})
	require.NoError(t, err)

	r := NewResolver(svc, &fakeFetcher{})
	raw, err := r.Resolve(ctx, model.RecipeRef{Source: model.SourceLocal, ID: created.ID.String()})
	require.NoError(t, err)

	var got model.Recipe
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Local Stew", got.Title)
}

func TestResolveLocalRejectsBadID(t *testing.T) {
	r := NewResolver(setupTestService(t), &fakeFetcher{})

	_, err := r.Resolve(context.Background(), model.RecipeRef{Source: model.SourceLocal, ID: "42"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestResolveUpstream(t *testing.T) {
	fetcher := &fakeFetcher{body: []byte(`{"id":716429}`)}
	r := NewResolver(setupTestService(t), fetcher)

	raw, err := r.Resolve(context.Background(), model.RecipeRef{Source: model.SourceUpstream, ID: "716429"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":716429}`, string(raw))
	assert.Equal(t, "716429", fetcher.got)
}

func TestResolveSecondary(t *testing.T) {
	r := NewResolver(setupTestService(t), &fakeFetcher{})

	raw, err := r.Resolve(context.Background(), model.RecipeRef{Source: model.SourceSecondary, ID: "bhuna-khichuri"})
	require.NoError(t, err)

	var got SecondaryRecipe
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Bhuna Khichuri", got.Title)
}

func TestResolveSecondaryUnknownSlug(t *testing.T) {
	r := NewResolver(setupTestService(t), &fakeFetcher{})

	_, err := r.Resolve(context.Background(), model.RecipeRef{Source: model.SourceSecondary, ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSecondaryRecipesLoad(t *testing.T) {
	set, err := SecondaryRecipes()
	require.NoError(t, err)
	assert.NotEmpty(t, set)
	for _, r := range set {
		assert.NotEmpty(t, r.Slug)
		assert.NotEmpty(t, r.Title)
	}
}
