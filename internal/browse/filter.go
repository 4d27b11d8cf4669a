// Package browse decides which recipes each catalog section shows for a
// search term, a navigation target, and the set of sections the visitor
// opened.
package browse

import (
	"strings"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// VisibleLimit is how many recipes a collapsed section shows.
const VisibleLimit = 8

// synonyms are the extra triggers that make a term a search for the whole
// category rather than for titles inside it.
var synonyms = map[string][]string{
	"doces":                 {"sobremesa", "bolo", "doce"},
	"sopas":                 {"sopa", "creme"},
	"vegan":                 {"vegan", "vegetariano"},
	domain.QuickCategoryID: {"rapida", "fácil", "facil"},
}

// expandTriggers open a category when the search changes, on top of a name
// match. Narrower than synonyms.
var expandTriggers = map[string][]string{
	"doces": {"sobremesa", "bolo"},
	"sopas": {"entrada"},
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// BaseFilter returns the recipes that belong to cat, in catalog order.
func BaseFilter(recipes []*domain.Recipe, cat domain.Category) []*domain.Recipe {
	var out []*domain.Recipe
	for _, r := range recipes {
		if cat.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsCategorySearch reports whether term names the category itself.
// term must already be lowercased and trimmed.
func IsCategorySearch(cat domain.Category, term string) bool {
	if strings.Contains(strings.ToLower(cat.Name), term) {
		return true
	}
	return containsAny(term, synonyms[cat.ID])
}

// RecipesFor applies the base filter and then the search term. A term that
// names the category keeps the whole base set; any other term keeps the
// recipes whose title contains it, ignoring case.
func RecipesFor(recipes []*domain.Recipe, cat domain.Category, term string) []*domain.Recipe {
	base := BaseFilter(recipes, cat)
	term = normalize(term)
	if term == "" || IsCategorySearch(cat, term) {
		return base
	}
	var out []*domain.Recipe
	for _, r := range base {
		if strings.Contains(strings.ToLower(r.Title), term) {
			out = append(out, r)
		}
	}
	return out
}

// AutoExpand returns the ids of the categories a search for term opens.
// They stay open after the term is cleared. An empty term opens nothing.
func AutoExpand(recipes []*domain.Recipe, categories []domain.Category, term string) []string {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	term = strings.ToLower(term)

	var out []string
	for _, cat := range categories {
		if strings.Contains(strings.ToLower(cat.Name), term) || containsAny(term, expandTriggers[cat.ID]) {
			out = append(out, cat.ID)
			continue
		}
		for _, r := range recipes {
			if r.Category == cat.Name && strings.Contains(strings.ToLower(r.Title), term) {
				out = append(out, cat.ID)
				break
			}
		}
	}
	return out
}

// Toggle flips id in the expanded set and returns the new set. The input
// slice is not modified.
func Toggle(expanded []string, id string) []string {
	out := make([]string, 0, len(expanded)+1)
	found := false
	for _, e := range expanded {
		if e == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
