package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecipe() Recipe {
	return Recipe{
		Title:       "チキンカレー",
		MakingTime:  "45分",
		Serves:      "4人",
		Ingredients: "玉ねぎ,肉,スパイス",
		Cost:        1000,
	}
}

func TestValidate(t *testing.T) {
	r := validRecipe()
	assert.NoError(t, r.Validate())
}

func TestValidateMissingFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Recipe)
	}{
		{"title", func(r *Recipe) { r.Title = "" }},
		{"making_time", func(r *Recipe) { r.MakingTime = "" }},
		{"serves", func(r *Recipe) { r.Serves = "" }},
		{"ingredients", func(r *Recipe) { r.Ingredients = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(&r)
			err := r.Validate()
			assert.Error(t, err)
			verr, ok := err.(*ValidationError)
			assert.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateTitleLengthBoundary(t *testing.T) {
	r := validRecipe()

	r.Title = strings.Repeat("あ", MaxTitleLen)
	assert.NoError(t, r.Validate(), "title of exactly 100 characters should pass")

	r.Title = strings.Repeat("あ", MaxTitleLen+1)
	err := r.Validate()
	assert.Error(t, err, "title of 101 characters should fail")
	verr := err.(*ValidationError)
	assert.Equal(t, "title", verr.Field)
}

func TestValidateIngredientsLengthBoundary(t *testing.T) {
	r := validRecipe()

	r.Ingredients = strings.Repeat("x", MaxIngredientsLen)
	assert.NoError(t, r.Validate(), "ingredients of exactly 300 characters should pass")

	r.Ingredients = strings.Repeat("x", MaxIngredientsLen+1)
	err := r.Validate()
	assert.Error(t, err, "ingredients of 301 characters should fail")
	verr := err.(*ValidationError)
	assert.Equal(t, "ingredients", verr.Field)
}

func TestValidateMultibyteLengthsCountRunes(t *testing.T) {
	// 100 Japanese characters are 300 bytes but still a legal title.
	r := validRecipe()
	r.MakingTime = strings.Repeat("分", MaxMakingTimeLen)
	r.Serves = strings.Repeat("人", MaxServesLen)
	assert.NoError(t, r.Validate())
}
