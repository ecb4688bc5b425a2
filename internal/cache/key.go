package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Key generates a deterministic cache key from a request path and its query
// parameters. Parameters are sorted so that equivalent queries in any order
// collide to the same key.
//
// Format: spoonacular:endpoint:param1=val1:param2=val2
//
// Example:
//
//	spoonacular:recipes/complexSearch:cuisine=italian:query=pasta
func Key(path string, params url.Values) string {
	parts := []string{"spoonacular"}

	endpoint := strings.Trim(path, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, params.Get(k)))
		}
	}

	return strings.Join(parts, ":")
}
