package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
	"github.com/hammamikhairi/cozinhamestre/internal/recipe"
)

func TestWriteCatalog(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	cal := 420
	recipes := []*domain.Recipe{
		{ID: "0", Slug: "dia-0-bitoque", Title: "Bitoque", Category: "Dia a Dia",
			PrepTime: 20, CookTime: 30, TotalTime: 50, Difficulty: domain.DifficultyEasy,
			Rating: 4.7, Votes: 88, Calories: &cal, Servings: 2, Author: "Chef Rui"},
		{ID: "1", Slug: "rapidas-1-wrap", Title: "Wrap de Atum e Milho", Category: "Rápidas",
			PrepTime: 10, CookTime: 10, TotalTime: 20, Difficulty: domain.DifficultyEasy},
	}
	catalog := recipe.NewCatalog(recipes, recipe.DefaultCategories(), log)

	var buf bytes.Buffer
	if err := WriteCatalog(&buf, catalog); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetRecipes)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "id" || rows[1][2] != "Bitoque" || rows[1][7] != "Fácil" || rows[1][10] != "420" {
		t.Fatalf("unexpected recipe rows %v", rows[:2])
	}
	if rows[2][1] != "rapidas-1-wrap" {
		t.Fatalf("unexpected second row %v", rows[2])
	}

	cats, err := f.GetRows(SheetCategories)
	if err != nil {
		t.Fatalf("category rows: %v", err)
	}
	if len(cats) != 6 {
		t.Fatalf("expected header + 5 categories, got %d", len(cats))
	}
	counts := map[string]string{}
	for _, row := range cats[1:] {
		counts[row[0]] = row[2]
	}
	if counts["diarios"] != "1" || counts[domain.QuickCategoryID] != "1" || counts["doces"] != "0" {
		t.Fatalf("unexpected counts %v", counts)
	}
}
