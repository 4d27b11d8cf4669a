// Package export writes the catalog out as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// Sheet names in the workbook.
const (
	SheetRecipes    = "Receitas"
	SheetCategories = "Categorias"
)

var recipeHeader = []any{
	"id", "slug", "titulo", "categoria", "preparacao_min", "cozedura_min", "total_min",
	"dificuldade", "avaliacao", "votos", "calorias", "doses", "autor",
}

var categoryHeader = []any{"id", "nome", "receitas"}

// WriteCatalog writes every recipe and category of src as an xlsx
// workbook to w.
func WriteCatalog(w io.Writer, src domain.RecipeSource) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRecipes); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetCategories); err != nil {
		return fmt.Errorf("export: add sheet: %w", err)
	}

	recipes := src.All()
	rows := make([][]any, 0, len(recipes))
	for _, r := range recipes {
		var calories any
		if r.Calories != nil {
			calories = *r.Calories
		}
		rows = append(rows, []any{
			r.ID, r.Slug, r.Title, r.Category, r.PrepTime, r.CookTime, r.TotalTime,
			r.Difficulty.String(), r.Rating, r.Votes, calories, r.Servings, r.Author,
		})
	}
	if err := writeSheet(f, SheetRecipes, recipeHeader, rows); err != nil {
		return err
	}

	cats := src.Categories()
	rows = rows[:0]
	for _, c := range cats {
		rows = append(rows, []any{c.ID, c.Name, c.Count})
	}
	if err := writeSheet(f, SheetCategories, categoryHeader, rows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// writeSheet streams header and rows into sheet, starting at A1.
func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("export: stream %s: %w", sheet, err)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("export: %s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("export: %s row %d: %w", sheet, i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: flush %s: %w", sheet, err)
	}
	return nil
}
