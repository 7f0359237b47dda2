package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipenote/recipe-api/internal/models"
)

// seedRecipes are the two demo rows shipped with the original schema.
var seedRecipes = []models.Recipe{
	{
		ID:          1,
		Title:       "チキンカレー",
		MakingTime:  "45分",
		Serves:      "4人",
		Ingredients: "玉ねぎ,肉,スパイス",
		Cost:        1000,
	},
	{
		ID:          2,
		Title:       "オムライス",
		MakingTime:  "30分",
		Serves:      "2人",
		Ingredients: "玉ねぎ,卵,スパイス,醤油",
		Cost:        700,
	},
}

// SeedRecipes inserts the seed rows if they are not already present.
// Safe to run repeatedly.
func SeedRecipes(db *gorm.DB) error {
	for i := range seedRecipes {
		recipe := seedRecipes[i]
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&recipe)
		if result.Error != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipe.Title, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Seeded recipe: %s", recipe.Title)
		}
	}

	// Seed rows carry explicit ids, so the sequence has to be bumped past
	// them before the next application-side insert.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("SELECT setval('recipes_id_seq', (SELECT MAX(id) FROM recipes))").Error; err != nil {
			return fmt.Errorf("failed to advance recipes id sequence: %w", err)
		}
	}

	return nil
}
