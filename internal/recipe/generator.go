// Package recipe builds the synthetic recipe catalog the site browses.
package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// DefaultCount is the catalog size the site starts with.
const DefaultCount = 600

// Generate builds n recipes and the category counts derived from them as
// one computation. The returned catalog is read-only.
func Generate(n int, rnd Rand, log *logger.Logger) *Catalog {
	categories := DefaultCategories()
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	recipes := make([]*domain.Recipe, 0, n)
	for i := 0; i < n; i++ {
		cat := byID[drawCategory(rnd.Float64())]
		recipes = append(recipes, generateOne(i, cat, rnd))
	}

	log.Debug("generated %d recipes", len(recipes))
	return NewCatalog(recipes, categories, log)
}

func drawCategory(r float64) string {
	for _, d := range categoryDraw {
		if r < d.below {
			return d.id
		}
	}
	return categoryDraw[len(categoryDraw)-1].id
}

func generateOne(i int, cat domain.Category, rnd Rand) *domain.Recipe {
	base := pick(rnd, titles[cat.ID])
	title := base
	if i >= plainTitleLimit {
		title = base + " " + pick(rnd, qualifiers)
	}

	id := strconv.Itoa(i)
	d := dish{Title: title, Base: strings.ToLower(base), Category: cat.ID}

	prep, cook := applyTimes(timeRules, d)
	total := prep + cook
	calories := between(rnd, 250, 800)
	servings := between(rnd, 2, 6)

	return &domain.Recipe{
		ID:          id,
		Slug:        slugFor(cat.Name, id, title),
		Title:       title,
		Subtitle:    fmt.Sprintf("%s • %d Pessoas", cat.Name, servings),
		Description: describe(rnd, title),
		Author:      pick(rnd, chefs),
		PrepTime:    prep,
		CookTime:    cook,
		TotalTime:   total,
		Servings:    servings,
		Difficulty:  difficultyFor(total),
		Rating:      math.Round((rnd.Float64()*(5-4.2)+4.2)*10) / 10,
		Votes:       between(rnd, 10, 300),
		Calories:    &calories,
		Tags:        append([]string{cat.Name}, extraTags...),
		Category:    cat.Name,
		ImageURL:    ImageURL(base, id),
		Ingredients: applyIngredients(ingredientRules, d),
		Equipment:   append([]string(nil), equipment...),
		Steps:       applySteps(stepGroups, d),
		ChefTips:    append([]string(nil), chefTips...),
	}
}

func describe(rnd Rand, title string) string {
	return fmt.Sprintf("%s %s é uma aposta ganha. %s", pick(rnd, intros), title, pick(rnd, flavors))
}
