package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/recipenote/recipe-api/internal/models"
)

// timestampFormat matches the original service's JSON rendering of the
// created_at/updated_at columns.
const timestampFormat = "2006-01-02 15:04:05"

// IntOrString is an int that also accepts a quoted numeric JSON value, since
// clients of the original API send cost both ways.
type IntOrString int

// UnmarshalJSON implements json.Unmarshaler.
func (n *IntOrString) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty integer value")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*n = IntOrString(v)
	return nil
}

// recipeRequest is the payload for POST /recipes and PATCH /recipes/:id.
type recipeRequest struct {
	Title       string       `json:"title"`
	MakingTime  string       `json:"making_time"`
	Serves      string       `json:"serves"`
	Ingredients string       `json:"ingredients"`
	Cost        *IntOrString `json:"cost"`
}

// complete reports whether every editable field carries a usable value. A
// zero cost counts as missing, matching the original service.
func (r *recipeRequest) complete() bool {
	return r.Title != "" &&
		r.MakingTime != "" &&
		r.Serves != "" &&
		r.Ingredients != "" &&
		r.Cost != nil && *r.Cost != 0
}

// RecipeView is the JSON shape of a recipe in API responses.
type RecipeView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	MakingTime  string `json:"making_time"`
	Serves      string `json:"serves"`
	Ingredients string `json:"ingredients"`
	Cost        int    `json:"cost"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewRecipeView converts a stored recipe into its response shape.
func NewRecipeView(r *models.Recipe) RecipeView {
	return RecipeView{
		ID:          r.ID,
		Title:       r.Title,
		MakingTime:  r.MakingTime,
		Serves:      r.Serves,
		Ingredients: r.Ingredients,
		Cost:        r.Cost,
		CreatedAt:   r.CreatedAt.Format(timestampFormat),
		UpdatedAt:   r.UpdatedAt.Format(timestampFormat),
	}
}

// NewRecipeViews converts a list of stored recipes.
func NewRecipeViews(recipes []*models.Recipe) []RecipeView {
	views := make([]RecipeView, len(recipes))
	for i, r := range recipes {
		views[i] = NewRecipeView(r)
	}
	return views
}
