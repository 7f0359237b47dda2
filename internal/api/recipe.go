package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recipenote/recipe-api/internal/models"
	"github.com/recipenote/recipe-api/internal/service"
)

// Response messages of the original recipe service. Clients match on these
// strings, so they are part of the wire contract — as is the quirk of
// answering business failures with HTTP 200.
const (
	msgCreated      = "Recipe successfully created!"
	msgCreateFailed = "Recipe creation failed!"
	msgDetailsByID  = "Recipe details by id"
	msgUpdated      = "Recipe successfully updated!"
	msgUpdateFailed = "Recipe update failed!"
	msgRemoved      = "Recipe successfully removed!"
	msgNoRecipe     = "No Recipe found"
	msgNoRecipes    = "No recipes found"
)

// RecipeHandler serves the /recipes endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes wires the recipe endpoints onto the router.
func (h *RecipeHandler) RegisterRoutes(r gin.IRouter) {
	recipes := r.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PATCH("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// CreateRecipe handles POST /recipes.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		c.JSON(http.StatusOK, gin.H{"message": msgCreateFailed})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), service.CreateRecipeInput{
		Title:       req.Title,
		MakingTime:  req.MakingTime,
		Serves:      req.Serves,
		Ingredients: req.Ingredients,
		Cost:        int(*req.Cost),
	})
	if err != nil {
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			log.Printf("Error creating recipe: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"message": msgCreateFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgCreated,
		"recipe":  []RecipeView{NewRecipeView(recipe)},
	})
}

// ListRecipes handles GET /recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		log.Printf("Error listing recipes: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": msgNoRecipes})
		return
	}
	if len(recipes) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": msgNoRecipes})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": NewRecipeViews(recipes)})
}

// GetRecipe handles GET /recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrRecipeNotFound) {
			log.Printf("Error fetching recipe %d: %v", id, err)
		}
		c.JSON(http.StatusOK, gin.H{"message": msgNoRecipe})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgDetailsByID,
		"recipe":  []RecipeView{NewRecipeView(recipe)},
	})
}

// UpdateRecipe handles PATCH /recipes/:id. The original API requires every
// editable field on update, so an incomplete payload fails before the store
// is consulted.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		c.JSON(http.StatusOK, gin.H{"message": msgUpdateFailed})
		return
	}

	cost := int(*req.Cost)
	recipe, err := h.recipes.Update(c.Request.Context(), id, service.UpdateRecipeInput{
		Title:       &req.Title,
		MakingTime:  &req.MakingTime,
		Serves:      &req.Serves,
		Ingredients: &req.Ingredients,
		Cost:        &cost,
	})
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": msgNoRecipe})
			return
		}
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			log.Printf("Error updating recipe %d: %v", id, err)
		}
		c.JSON(http.StatusOK, gin.H{"message": msgUpdateFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgUpdated,
		"recipe":  []RecipeView{NewRecipeView(recipe)},
	})
}

// DeleteRecipe handles DELETE /recipes/:id.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if !errors.Is(err, service.ErrRecipeNotFound) {
			log.Printf("Error deleting recipe %d: %v", id, err)
		}
		c.JSON(http.StatusOK, gin.H{"message": msgNoRecipe})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgRemoved})
}

// recipeID parses the :id path parameter. Non-numeric ids never match a
// route in the original service, so they get a bare 404.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}
