package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipenote/recipe-api/internal/models"
	"github.com/recipenote/recipe-api/internal/service"
	"github.com/recipenote/recipe-api/internal/testhelpers"
)

func newTestService(t *testing.T) *service.RecipeService {
	db := testhelpers.SetupTestDB(t)
	return service.NewRecipeService(db)
}

func createInput() service.CreateRecipeInput {
	return service.CreateRecipeInput{
		Title:       "チキンカレー",
		MakingTime:  "45分",
		Serves:      "4人",
		Ingredients: "玉ねぎ,肉,スパイス",
		Cost:        1000,
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, createInput())
	require.NoError(t, err)

	assert.NotZero(t, recipe.ID)
	assert.Equal(t, recipe.CreatedAt, recipe.UpdatedAt, "created_at and updated_at should match on insert")

	got, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "チキンカレー", got.Title)
	assert.Equal(t, 1000, got.Cost)
	assert.WithinDuration(t, recipe.CreatedAt, got.CreatedAt, time.Second)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.CreateRecipeInput)
	}{
		{"title", func(in *service.CreateRecipeInput) { in.Title = "" }},
		{"making_time", func(in *service.CreateRecipeInput) { in.MakingTime = "" }},
		{"serves", func(in *service.CreateRecipeInput) { in.Serves = "" }},
		{"ingredients", func(in *service.CreateRecipeInput) { in.Ingredients = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := createInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			var verr *models.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.name, verr.Field)
		})
	}
}

func TestCreateLengthBoundaries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in := createInput()
	in.Title = strings.Repeat("a", models.MaxTitleLen)
	_, err := svc.Create(ctx, in)
	assert.NoError(t, err, "100 character title should be accepted")

	in = createInput()
	in.Title = strings.Repeat("a", models.MaxTitleLen+1)
	_, err = svc.Create(ctx, in)
	assert.Error(t, err, "101 character title should be rejected")

	in = createInput()
	in.Ingredients = strings.Repeat("a", models.MaxIngredientsLen)
	_, err = svc.Create(ctx, in)
	assert.NoError(t, err, "300 character ingredients should be accepted")

	in = createInput()
	in.Ingredients = strings.Repeat("a", models.MaxIngredientsLen+1)
	_, err = svc.Create(ctx, in)
	assert.Error(t, err, "301 character ingredients should be rejected")
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, createInput())
	require.NoError(t, err)

	// Make sure the update lands at a measurably later time.
	time.Sleep(20 * time.Millisecond)

	title := "ビーフカレー"
	updated, err := svc.Update(ctx, recipe.ID, service.UpdateRecipeInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "ビーフカレー", updated.Title)
	assert.Equal(t, recipe.MakingTime, updated.MakingTime, "unsupplied fields must not change")
	assert.Equal(t, recipe.Serves, updated.Serves)
	assert.Equal(t, recipe.Ingredients, updated.Ingredients)
	assert.Equal(t, recipe.Cost, updated.Cost)

	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt), "updated_at should strictly increase")
	assert.WithinDuration(t, recipe.CreatedAt, updated.CreatedAt, time.Second, "created_at must not change")
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(t)

	title := "no such recipe"
	_, err := svc.Update(context.Background(), 9999, service.UpdateRecipeInput{Title: &title})
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestUpdateRejectsOverlongField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, createInput())
	require.NoError(t, err)

	long := strings.Repeat("a", models.MaxTitleLen+1)
	_, err = svc.Update(ctx, recipe.ID, service.UpdateRecipeInput{Title: &long})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	// The stored row must be untouched after a failed update.
	got, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "チキンカレー", got.Title)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recipe, err := svc.Create(ctx, createInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, recipe.ID))

	_, err = svc.Get(ctx, recipe.ID)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	// Deleting again must report the missing id, not silently succeed.
	assert.ErrorIs(t, svc.Delete(ctx, recipe.ID), service.ErrRecipeNotFound)
}

func TestListOrdersByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	recipes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	first, err := svc.Create(ctx, createInput())
	require.NoError(t, err)

	in := createInput()
	in.Title = "オムライス"
	second, err := svc.Create(ctx, in)
	require.NoError(t, err)

	recipes, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, first.ID, recipes[0].ID)
	assert.Equal(t, second.ID, recipes[1].ID)
}
