package models

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Column length limits from the recipes table definition.
const (
	MaxTitleLen       = 100
	MaxMakingTimeLen  = 100
	MaxServesLen      = 100
	MaxIngredientsLen = 300
)

// Recipe represents a single row in the recipes table.
type Recipe struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	MakingTime  string    `gorm:"size:100;not null" json:"making_time"`
	Serves      string    `gorm:"size:100;not null" json:"serves"`
	Ingredients string    `gorm:"size:300;not null" json:"ingredients"`
	Cost        int       `gorm:"not null" json:"cost"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Recipe model.
func (Recipe) TableName() string {
	return "recipes"
}

// ValidationError reports a recipe field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the presence and length constraints the recipes table
// enforces. Lengths are counted in characters, matching varchar semantics.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(r.Title) > MaxTitleLen {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	if r.MakingTime == "" {
		return &ValidationError{Field: "making_time", Message: "is required"}
	}
	if utf8.RuneCountInString(r.MakingTime) > MaxMakingTimeLen {
		return &ValidationError{Field: "making_time", Message: fmt.Sprintf("must be at most %d characters", MaxMakingTimeLen)}
	}
	if r.Serves == "" {
		return &ValidationError{Field: "serves", Message: "is required"}
	}
	if utf8.RuneCountInString(r.Serves) > MaxServesLen {
		return &ValidationError{Field: "serves", Message: fmt.Sprintf("must be at most %d characters", MaxServesLen)}
	}
	if r.Ingredients == "" {
		return &ValidationError{Field: "ingredients", Message: "is required"}
	}
	if utf8.RuneCountInString(r.Ingredients) > MaxIngredientsLen {
		return &ValidationError{Field: "ingredients", Message: fmt.Sprintf("must be at most %d characters", MaxIngredientsLen)}
	}
	return nil
}
