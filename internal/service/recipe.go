package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/recipenote/recipe-api/internal/models"
)

// ErrRecipeNotFound is returned when the requested recipe id does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// CreateRecipeInput holds the editable fields for a new recipe.
type CreateRecipeInput struct {
	Title       string
	MakingTime  string
	Serves      string
	Ingredients string
	Cost        int
}

// UpdateRecipeInput holds a partial update; nil fields are left untouched.
type UpdateRecipeInput struct {
	Title       *string
	MakingTime  *string
	Serves      *string
	Ingredients *string
	Cost        *int
}

// RecipeService handles recipe persistence operations.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create validates and inserts a new recipe. The database assigns the id;
// created_at and updated_at are both set to the insertion time.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       input.Title,
		MakingTime:  input.MakingTime,
		Serves:      input.Serves,
		Ingredients: input.Ingredients,
		Cost:        input.Cost,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Get retrieves a recipe by id.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns all recipes ordered by id.
func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// Update applies the supplied fields to an existing recipe and refreshes
// updated_at. created_at is never touched.
func (s *RecipeService) Update(ctx context.Context, id uint, input UpdateRecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.MakingTime != nil {
		recipe.MakingTime = *input.MakingTime
	}
	if input.Serves != nil {
		recipe.Serves = *input.Serves
	}
	if input.Ingredients != nil {
		recipe.Ingredients = *input.Ingredients
	}
	if input.Cost != nil {
		recipe.Cost = *input.Cost
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe by id.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	// First check if the recipe exists, so a missing id is reported instead
	// of silently deleting nothing.
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}
