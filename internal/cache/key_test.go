package cache

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyIsOrderIndependent(t *testing.T) {
	a := url.Values{}
	a.Set("query", "pasta")
	a.Set("cuisine", "italian")
	a.Set("diet", "vegetarian")

	b := url.Values{}
	b.Set("diet", "vegetarian")
	b.Set("cuisine", "italian")
	b.Set("query", "pasta")

	assert.Equal(t, Key("/recipes/complexSearch", a), Key("/recipes/complexSearch", b))
}

func TestKeyFormat(t *testing.T) {
	params := url.Values{}
	params.Set("query", "pasta")
	params.Set("cuisine", "italian")

	key := Key("/recipes/complexSearch", params)
	assert.Equal(t, "spoonacular:recipes/complexSearch:cuisine=italian:query=pasta", key)
}

func TestKeyDistinguishesPaths(t *testing.T) {
	params := url.Values{}
	params.Set("query", "pasta")

	assert.NotEqual(t, Key("/recipes/complexSearch", params), Key("/food/ingredients/substitutes", params))
}

func TestKeyDistinguishesValues(t *testing.T) {
	a := url.Values{"query": {"pasta"}}
	b := url.Values{"query": {"pizza"}}

	assert.NotEqual(t, Key("/recipes/complexSearch", a), Key("/recipes/complexSearch", b))
}

func TestKeyWithoutParams(t *testing.T) {
	assert.Equal(t, "spoonacular:recipes/42/information", Key("/recipes/42/information", nil))
}
