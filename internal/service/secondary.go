package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed bangla_recipes.json
var banglaRecipesJSON []byte

// SecondaryRecipe is an entry of the bundled localized recipe set. It is
// read-only data shipped with the binary, keyed by slug.
type SecondaryRecipe struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	TitleBangla string   `json:"title_bangla"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

var (
	secondaryOnce sync.Once
	secondarySet  []SecondaryRecipe
	secondaryErr  error
)

func loadSecondary() ([]SecondaryRecipe, error) {
	secondaryOnce.Do(func() {
		secondaryErr = json.Unmarshal(banglaRecipesJSON, &secondarySet)
	})
	return secondarySet, secondaryErr
}

// SecondaryRecipes returns the full bundled recipe set.
func SecondaryRecipes() ([]SecondaryRecipe, error) {
	return loadSecondary()
}

// SecondaryRecipeBySlug looks up one bundled recipe. Returns ErrNotFound for
// unknown slugs.
func SecondaryRecipeBySlug(slug string) (*SecondaryRecipe, error) {
	set, err := loadSecondary()
	if err != nil {
		return nil, fmt.Errorf("loading bundled recipes: %w", err)
	}
	for i := range set {
		if set[i].Slug == slug {
			return &set[i], nil
		}
	}
	return nil, ErrNotFound
}
