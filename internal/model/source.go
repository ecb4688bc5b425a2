package model

import "fmt"

// RecipeSource identifies where a recipe reference points to.
type RecipeSource string

const (
	// SourceLocal is a user-created recipe held in the local store.
	SourceLocal RecipeSource = "local"

	// SourceUpstream is a recipe owned by the external recipe API.
	SourceUpstream RecipeSource = "upstream"

	// SourceSecondary is a recipe from the bundled localized recipe set.
	SourceSecondary RecipeSource = "secondary"
)

// RecipeRef is a tagged reference to a recipe in one of the three sources.
// The ID is source-specific: a uuid for local recipes, the upstream numeric
// id for external ones, and a slug for the secondary set.
type RecipeRef struct {
	Source RecipeSource `json:"source"`
	ID     string       `json:"id"`
}

// ParseRecipeSource validates a source tag from a request path.
func ParseRecipeSource(s string) (RecipeSource, error) {
	switch RecipeSource(s) {
	case SourceLocal, SourceUpstream, SourceSecondary:
		return RecipeSource(s), nil
	default:
		return "", fmt.Errorf("unknown recipe source %q", s)
	}
}
