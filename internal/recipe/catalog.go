package recipe

import (
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*Catalog)(nil)

// Catalog is the immutable recipe collection plus its derived category
// counts. Safe for concurrent reads; nothing writes after construction.
type Catalog struct {
	recipes    []*domain.Recipe
	categories []domain.Category
	byID       map[string]*domain.Recipe
	bySlug     map[string]*domain.Recipe
	log        *logger.Logger
}

// NewCatalog indexes recipes and derives each category's count. The quick
// category counts recipes by total time; the rest match by name.
func NewCatalog(recipes []*domain.Recipe, categories []domain.Category, log *logger.Logger) *Catalog {
	c := &Catalog{
		recipes:    recipes,
		categories: make([]domain.Category, len(categories)),
		byID:       make(map[string]*domain.Recipe, len(recipes)),
		bySlug:     make(map[string]*domain.Recipe, len(recipes)),
		log:        log,
	}
	for _, r := range recipes {
		c.byID[r.ID] = r
		c.bySlug[r.Slug] = r
	}
	for i, cat := range categories {
		cat.Count = 0
		for _, r := range recipes {
			if cat.Contains(r) {
				cat.Count++
			}
		}
		c.categories[i] = cat
		log.Debug("category %s: %d recipes", cat.ID, cat.Count)
	}
	return c
}

// All returns every recipe in generation order.
func (c *Catalog) All() []*domain.Recipe {
	out := make([]*domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Len returns the number of recipes.
func (c *Catalog) Len() int { return len(c.recipes) }

// Categories returns the categories with their derived counts.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns the category with the given id.
func (c *Catalog) Category(id string) (domain.Category, error) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return domain.Category{}, domain.ErrNotFound
}

// Get returns a recipe by id.
func (c *Catalog) Get(id string) (*domain.Recipe, error) {
	r, ok := c.byID[id]
	if !ok {
		c.log.Debug("recipe not found: id=%s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// BySlug returns a recipe by slug.
func (c *Catalog) BySlug(slug string) (*domain.Recipe, error) {
	r, ok := c.bySlug[slug]
	if !ok {
		c.log.Debug("recipe not found: slug=%s", slug)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Featured returns the first four recipes for the home page.
func (c *Catalog) Featured() []*domain.Recipe { return c.window(0, 4) }

// Trending returns recipes 4 to 6 for the home page.
func (c *Catalog) Trending() []*domain.Recipe { return c.window(4, 7) }

func (c *Catalog) window(from, to int) []*domain.Recipe {
	if from > len(c.recipes) {
		from = len(c.recipes)
	}
	if to > len(c.recipes) {
		to = len(c.recipes)
	}
	out := make([]*domain.Recipe, to-from)
	copy(out, c.recipes[from:to])
	return out
}
