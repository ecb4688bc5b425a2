package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is a single ingredient line of a recipe.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Step is one instruction step. Numbers are contiguous starting at 1 and
// re-assigned on every write, so a stored recipe never has gaps.
type Step struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// IngredientList is a custom type for storing ingredient lines as a JSON column.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StepList is a custom type for storing instruction steps as a JSON column.
type StepList []Step

// Value implements the driver.Valuer interface
func (l StepList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StepList) Scan(value interface{}) error {
	if value == nil {
		*l = StepList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Renumber rewrites step numbers to be contiguous starting at 1.
func (l StepList) Renumber() {
	for i := range l {
		l[i].Number = i + 1
	}
}

// Recipe is a locally owned recipe record.
type Recipe struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	ImageURL       string         `gorm:"size:255" json:"image_url"`
	ReadyInMinutes *int           `json:"ready_in_minutes,omitempty"`
	Servings       *int           `json:"servings,omitempty"`
	Difficulty     string         `gorm:"size:50" json:"difficulty"`
	Starred        bool           `json:"starred"`
	Ingredients    IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps          StepList       `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
}

// BeforeCreate assigns the id server-side. Works on both sqlite and postgres,
// unlike a gen_random_uuid() column default.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Steps.Renumber()
	return nil
}
