package browse

import (
	"strings"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// Query is the catalog state a page render starts from.
type Query struct {
	Term     string   // search box contents
	Target   string   // category id the visitor navigated to, if any
	Expanded []string // category ids the visitor opened
}

// Section is one rendered category block.
type Section struct {
	Category   domain.Category
	Recipes    []*domain.Recipe // every recipe matching the query
	Visible    []*domain.Recipe // the ones actually shown
	Expanded   bool
	Hidden     int  // recipes beyond VisibleLimit
	ShowToggle bool // the "ver mais" / "mostrar menos" control
	Targeted   bool
	Highlight  bool
}

// View is the whole catalog page.
type View struct {
	Term      string
	Searching bool
	Total     int
	Sections  []Section
	// Expanded is the open set after this render, in category order. Links
	// on the page carry it forward.
	Expanded []string
	Empty    bool
}

// Build computes the catalog page for q. Sections with no matching recipes
// are left out. The navigation target and any category the term opens are
// added to the expanded set.
func Build(recipes []*domain.Recipe, categories []domain.Category, q Query) View {
	searching := strings.TrimSpace(q.Term) != ""

	open := make(map[string]bool, len(q.Expanded)+1)
	for _, id := range q.Expanded {
		open[id] = true
	}
	for _, id := range AutoExpand(recipes, categories, q.Term) {
		open[id] = true
	}
	if q.Target != "" {
		open[q.Target] = true
	}

	v := View{Term: q.Term, Searching: searching, Total: len(recipes), Empty: true}
	for _, cat := range categories {
		// Unknown ids in q.Expanded are dropped here.
		if open[cat.ID] {
			v.Expanded = append(v.Expanded, cat.ID)
		}

		matched := RecipesFor(recipes, cat, q.Term)
		if len(matched) == 0 {
			continue
		}
		v.Empty = false

		s := Section{
			Category:  cat,
			Recipes:   matched,
			Expanded:  open[cat.ID] || searching,
			Targeted:  cat.ID == q.Target,
			Highlight: cat.IsQuick(),
		}
		if s.Expanded {
			s.Visible = matched
		} else {
			s.Visible = matched[:min(len(matched), VisibleLimit)]
		}
		if len(matched) > VisibleLimit {
			s.Hidden = len(matched) - VisibleLimit
			s.ShowToggle = !searching
		}
		v.Sections = append(v.Sections, s)
	}
	return v
}
