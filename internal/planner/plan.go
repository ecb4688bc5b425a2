// Package planner holds the meal plan model and the derived shopping-list
// aggregation. This state lives client-side; the server never stores it.
package planner

import "github.com/okonek/guidedcooking/backend/internal/model"

// Slot is a meal slot within a day.
type Slot string

const (
	Breakfast Slot = "Breakfast"
	Lunch     Slot = "Lunch"
	Dinner    Slot = "Dinner"
	Snack     Slot = "Snack"
)

// Days of the week, in plan order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MealPlan maps day → slot → planned recipe.
type MealPlan map[string]map[Slot]model.Recipe

// Assign places a recipe in a slot, creating the day entry if needed.
func (p MealPlan) Assign(day string, slot Slot, recipe model.Recipe) {
	if p[day] == nil {
		p[day] = make(map[Slot]model.Recipe)
	}
	p[day][slot] = recipe
}

// Remove clears a slot and drops the day entry when it becomes empty.
func (p MealPlan) Remove(day string, slot Slot) {
	if meals, ok := p[day]; ok {
		delete(meals, slot)
		if len(meals) == 0 {
			delete(p, day)
		}
	}
}

// Recipes returns every planned recipe, days and slots in plan order so the
// result is deterministic.
func (p MealPlan) Recipes() []model.Recipe {
	slots := []Slot{Breakfast, Lunch, Dinner, Snack}

	var recipes []model.Recipe
	for _, day := range Days {
		meals, ok := p[day]
		if !ok {
			continue
		}
		for _, slot := range slots {
			if recipe, ok := meals[slot]; ok {
				recipes = append(recipes, recipe)
			}
		}
	}
	return recipes
}
