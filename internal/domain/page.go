package domain

// Page identifies which screen the front end is showing.
type Page string

const (
	PageHome       Page = "home"
	PageRecipes    Page = "recipes"
	PageDetail     Page = "recipe-detail"
	PageTechniques Page = "techniques"
	PageSaved      Page = "saved"
)

// Route is the in-memory routing state: a page plus the optional recipe
// and pre-selected category it was opened with.
type Route struct {
	Page     Page
	Slug     string
	Category string
	Search   string
}
