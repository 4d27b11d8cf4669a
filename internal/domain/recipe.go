// Package domain defines the core types and interfaces for the recipe site.
// All other packages depend on domain; domain depends on nothing.
package domain

// Difficulty is the effort label shown on a recipe card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Fácil"
	DifficultyMedium Difficulty = "Médio"
	DifficultyHard   Difficulty = "Difícil"
)

// String returns the display label.
func (d Difficulty) String() string { return string(d) }

// Recipe is one generated dish. Recipes are built once at start-up and
// never mutated afterwards.
type Recipe struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle"`
	Description string            `json:"description"`
	Author      string            `json:"author"`
	PrepTime    int               `json:"prepTime"`  // minutes
	CookTime    int               `json:"cookTime"`  // minutes
	TotalTime   int               `json:"totalTime"` // PrepTime + CookTime
	Servings    int               `json:"servings"`
	Difficulty  Difficulty        `json:"difficulty"`
	Rating      float64           `json:"rating"`
	Votes       int               `json:"votes"`
	Calories    *int              `json:"calories,omitempty"`
	Tags        []string          `json:"tags"`
	Category    string            `json:"category"` // a Category.Name
	ImageURL    string            `json:"imageUrl"`
	Ingredients []Ingredient      `json:"ingredients"`
	Equipment   []string          `json:"equipment"`
	Steps       []InstructionStep `json:"steps"`
	ChefTips    []string          `json:"chefTips"`
}

// Ingredient is a free-text ingredient line. Quantity is never parsed.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Note     string `json:"note,omitempty"` // e.g. "picada finamente"
}

// InstructionStep is one numbered step. Numbers start at 1 with no gaps.
type InstructionStep struct {
	Number        int    `json:"stepNumber"`
	Instruction   string `json:"instruction"`
	Image         string `json:"image,omitempty"`
	Tip           string `json:"tip,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
}

// Category groups recipes for browsing and navigation anchors.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// QuickCategoryID is the cross-cutting category whose members are chosen
// by total time rather than by name.
const QuickCategoryID = "rapidas"

// QuickMaxMinutes is the inclusive total-time bound of the quick category.
const QuickMaxMinutes = 30

// IsQuick reports whether the category is the time-based quick category.
func (c Category) IsQuick() bool { return c.ID == QuickCategoryID }

// Contains reports whether a recipe belongs to the category.
func (c Category) Contains(r *Recipe) bool {
	if c.IsQuick() {
		return r.TotalTime <= QuickMaxMinutes
	}
	return r.Category == c.Name
}
