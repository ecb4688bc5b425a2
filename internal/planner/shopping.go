package planner

import (
	"sort"
	"strings"
)

// ShoppingItem is one aggregated line of the shopping list.
type ShoppingItem struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Checked bool    `json:"checked"`
}

// BuildShoppingList walks every planned recipe and merges ingredient lines
// whose (normalized name, unit) pair match by summing amounts. Lines with the
// same ingredient but different units stay separate; no unit conversion
// happens here. Output is sorted by name then unit.
func BuildShoppingList(plan MealPlan) []ShoppingItem {
	type lineKey struct {
		name string
		unit string
	}

	totals := make(map[lineKey]float64)
	display := make(map[lineKey]string)

	for _, recipe := range plan.Recipes() {
		for _, ing := range recipe.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			key := lineKey{name: strings.ToLower(name), unit: ing.Unit}
			totals[key] += ing.Amount
			if _, ok := display[key]; !ok {
				display[key] = name
			}
		}
	}

	items := make([]ShoppingItem, 0, len(totals))
	for key, amount := range totals {
		items = append(items, ShoppingItem{
			Name:   display[key],
			Amount: amount,
			Unit:   key.unit,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		}
		return items[i].Unit < items[j].Unit
	})

	return items
}
