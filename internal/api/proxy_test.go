package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okonek/guidedcooking/backend/internal/cache"
	"github.com/okonek/guidedcooking/backend/internal/upstream"
)

// stubGateway satisfies Gateway (and the resolver's fetcher) without a network.
type stubGateway struct {
	searchBody []byte
	detailBody []byte
	err        error
}

func (s *stubGateway) SearchRecipes(ctx context.Context, params upstream.SearchParams) ([]byte, error) {
	return s.searchBody, s.err
}

func (s *stubGateway) RecipeInformation(ctx context.Context, id string) ([]byte, error) {
	return s.detailBody, s.err
}

func (s *stubGateway) Nutrition(ctx context.Context, id string) ([]byte, error) {
	return s.detailBody, s.err
}

func (s *stubGateway) IngredientSubstitutes(ctx context.Context, name string) ([]byte, error) {
	return s.detailBody, s.err
}

func setupProxyTestRouter(gateway Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewProxyHandler(gateway).RegisterRoutes(router.Group("/api"))
	return router
}

func TestSearchRecipesPassesBodyThrough(t *testing.T) {
	router := setupProxyTestRouter(&stubGateway{
		searchBody: []byte(`{"results":[{"id":1,"title":"Pasta"}]}`),
	})

	req := httptest.NewRequest("GET", "/api/search-recipes?query=pasta&cuisine=italian", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"results":[{"id":1,"title":"Pasta"}]}`, w.Body.String())
}

func TestProxyMapsUpstreamError(t *testing.T) {
	router := setupProxyTestRouter(&stubGateway{
		err: &upstream.UpstreamError{StatusCode: 503, Message: "503 Service Unavailable"},
	})

	req := httptest.NewRequest("GET", "/api/search-recipes?query=pasta", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 502, w.Code)
	assert.Contains(t, w.Body.String(), "upstream_status")
}

func TestSubstitutesRequiresIngredientName(t *testing.T) {
	router := setupProxyTestRouter(&stubGateway{detailBody: []byte(`{}`)})

	req := httptest.NewRequest("GET", "/api/ingredient-substitutes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestNutritionRoute(t *testing.T) {
	router := setupProxyTestRouter(&stubGateway{detailBody: []byte(`{"calories":"500"}`)})

	req := httptest.NewRequest("GET", "/api/recipe/1/nutrition", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"calories":"500"}`, w.Body.String())
}

// End-to-end through the real gateway: the second identical query, with
// parameters in a different order, must be a cache hit.
func TestProxyCachesAcrossParamOrder(t *testing.T) {
	var calls int64
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer fake.Close()

	gateway := upstream.NewClient(fake.URL, "test-key", cache.NewMemory(0))
	router := setupProxyTestRouter(gateway)

	req := httptest.NewRequest("GET", "/api/search-recipes?query=pasta&cuisine=italian", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	req = httptest.NewRequest("GET", "/api/search-recipes?cuisine=italian&query=pasta", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	require.Equal(t, 200, w2.Code)

	assert.Equal(t, w.Body.String(), w2.Body.String())
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}
