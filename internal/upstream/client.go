// Package upstream wraps the Spoonacular recipe API behind the response
// cache: identical queries inside the TTL window never leave the process.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/okonek/guidedcooking/backend/internal/cache"
	"github.com/okonek/guidedcooking/backend/internal/logging"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spoonacular_requests_total",
		Help: "Total outbound Spoonacular requests by endpoint and status",
	}, []string{"endpoint", "status"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spoonacular_request_duration_seconds",
		Help:    "Outbound Spoonacular request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// SearchParams are the caller-supplied filters for a recipe search.
type SearchParams struct {
	Query        string
	Cuisine      string
	Diet         string
	Intolerances string
}

// Client is the Spoonacular gateway. Every call consults the response cache
// first; a hit returns the cached body byte-identical, bypassing the network.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTTL overrides the default one-hour cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// NewClient creates a Spoonacular gateway. An empty apiKey is allowed; calls
// then fail with an UpstreamError wrapping ErrNoAPIKey.
func NewClient(baseURL, apiKey string, respCache cache.Cache, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:  respCache,
		ttl:    time.Hour,
		logger: logging.NewLogger("upstream"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchRecipes proxies GET /recipes/complexSearch.
func (c *Client) SearchRecipes(ctx context.Context, params SearchParams) ([]byte, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.Cuisine != "" {
		q.Set("cuisine", params.Cuisine)
	}
	if params.Diet != "" {
		q.Set("diet", params.Diet)
	}
	if params.Intolerances != "" {
		q.Set("intolerances", params.Intolerances)
	}
	return c.fetch(ctx, "/recipes/complexSearch", q)
}

// RecipeInformation proxies GET /recipes/{id}/information.
func (c *Client) RecipeInformation(ctx context.Context, id string) ([]byte, error) {
	return c.fetch(ctx, fmt.Sprintf("/recipes/%s/information", url.PathEscape(id)), url.Values{})
}

// Nutrition proxies GET /recipes/{id}/nutritionWidget.json.
func (c *Client) Nutrition(ctx context.Context, id string) ([]byte, error) {
	return c.fetch(ctx, fmt.Sprintf("/recipes/%s/nutritionWidget.json", url.PathEscape(id)), url.Values{})
}

// IngredientSubstitutes proxies GET /food/ingredients/substitutes.
func (c *Client) IngredientSubstitutes(ctx context.Context, ingredientName string) ([]byte, error) {
	q := url.Values{}
	q.Set("ingredientName", ingredientName)
	return c.fetch(ctx, "/food/ingredients/substitutes", q)
}

// fetch serves path+params from the cache when possible and issues the
// outbound call otherwise. The credential is injected only into the outbound
// request, never into the cache key.
func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	key := cache.Key(path, params)

	cached, err := c.cache.Get(ctx, key)
	if err == nil {
		c.logger.Debug().Str("endpoint", path).Msg("cache hit")
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn().Err(err).Str("endpoint", path).Msg("cache get error")
	}

	if c.apiKey == "" {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "external recipe API unavailable",
			Err:        ErrNoAPIKey,
		}
	}

	outbound := url.Values{}
	for k, vs := range params {
		outbound[k] = vs
	}
	outbound.Set("apiKey", c.apiKey)

	reqURL := c.baseURL + path + "?" + outbound.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(path, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", path).Msg("upstream request failed")
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "external recipe API unreachable",
			Err:        err,
		}
	}
	defer resp.Body.Close()

	upstreamRequestsTotal.WithLabelValues(path, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Message:    "reading upstream response",
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Str("endpoint", path).
			Int("status", resp.StatusCode).
			Msg("upstream error response")
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	if err := c.cache.Put(ctx, key, body, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("endpoint", path).Msg("failed to cache response")
	} else {
		c.logger.Debug().
			Str("endpoint", path).
			Dur("ttl", c.ttl).
			Msg("cached response")
	}

	return body, nil
}
