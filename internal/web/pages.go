package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/browse"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/gpt"
)

const (
	siteName     = "CozinhaMestre"
	msgSubscribe = "Subscrição realizada com sucesso! Bem-vindo à família."
)

func title(parts ...string) string {
	return strings.Join(append(parts, siteName), " | ")
}

// ── Home ─────────────────────────────────────────────────────────

type homeData struct {
	Categories []domain.Category
	Featured   []*domain.Recipe
	Trending   []*domain.Recipe
	Total      int
}

func (s *Server) home(c echo.Context) error {
	cat := s.deps.Catalog
	data := homeData{
		Categories: cat.Categories(),
		Featured:   cat.Featured(),
		Trending:   cat.Trending(),
		Total:      cat.Len(),
	}
	return c.Render(http.StatusOK, tmplHome, s.newView(c, title("Receitas Portuguesas com Alma"), domain.PageHome, data))
}

// ── Catalog ──────────────────────────────────────────────────────

type catalogSection struct {
	browse.Section
	ToggleURL string
}

type catalogData struct {
	browse.View
	Sections []catalogSection
	ResetURL string
}

func (s *Server) catalog(c echo.Context) error {
	q := browse.Query{
		Term:     c.QueryParam("q"),
		Target:   c.QueryParam("categoria"),
		Expanded: c.QueryParams()["abrir"],
	}
	v := browse.Build(s.deps.Catalog.All(), s.deps.Catalog.Categories(), q)

	data := catalogData{
		View:     v,
		ResetURL: catalogURL("", "", v.Expanded),
	}
	for _, sec := range v.Sections {
		data.Sections = append(data.Sections, catalogSection{
			Section:   sec,
			ToggleURL: catalogURL(q.Term, "", browse.Toggle(v.Expanded, sec.Category.ID)) + "#" + sec.Category.ID,
		})
	}

	vw := s.newView(c, title("Receitas"), domain.PageRecipes, data)
	vw.Search = q.Term
	return c.Render(http.StatusOK, tmplCatalog, vw)
}

// search is the header search box. A blank term goes nowhere new.
func (s *Server) search(c echo.Context) error {
	term := c.FormValue("q")
	if strings.TrimSpace(term) == "" {
		return c.Redirect(http.StatusSeeOther, s.back(c, "/"))
	}
	return c.Redirect(http.StatusSeeOther, routePath(domain.Route{Page: domain.PageRecipes, Search: term}))
}

// category navigates to one catalog section, clearing any search.
func (s *Server) category(c echo.Context) error {
	id := c.Param("id")
	if _, err := s.deps.Catalog.Category(id); err != nil {
		return s.renderNotFound(c)
	}
	return c.Redirect(http.StatusSeeOther, routePath(domain.Route{Page: domain.PageRecipes, Category: id}))
}

// ── Detail ───────────────────────────────────────────────────────

type detailData struct {
	Recipe   *domain.Recipe
	Saved    bool
	JSONLD   template.JS
	Question string
	Answer   string
}

func (s *Server) lookup(c echo.Context) (*domain.Recipe, error) {
	r, err := s.deps.Catalog.BySlug(c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, echo.ErrNotFound
	}
	return r, err
}

func (s *Server) renderDetail(c echo.Context, r *domain.Recipe, question, answer string) error {
	ld, err := recipeJSONLD(r)
	if err != nil {
		return err
	}
	data := detailData{
		Recipe:   r,
		Saved:    s.savedSet(c).IsSaved(c.Request().Context(), r.ID),
		JSONLD:   ld,
		Question: question,
		Answer:   answer,
	}
	return c.Render(http.StatusOK, tmplDetail, s.newView(c, title(r.Title), domain.PageDetail, data))
}

func (s *Server) detail(c echo.Context) error {
	r, err := s.lookup(c)
	if err != nil {
		return err
	}
	return s.renderDetail(c, r, "", "")
}

func (s *Server) toggleSaved(c echo.Context) error {
	r, err := s.lookup(c)
	if err != nil {
		return err
	}
	s.savedSet(c).Toggle(c.Request().Context(), r.ID)

	dest := routePath(domain.Route{Page: domain.PageDetail, Slug: r.Slug})
	if v := c.FormValue("voltar"); localPath(v) {
		dest = v
	}
	return c.Redirect(http.StatusSeeOther, dest)
}

// askChef answers a question about the recipe on the page. Blank
// questions are not sent.
func (s *Server) askChef(c echo.Context) error {
	r, err := s.lookup(c)
	if err != nil {
		return err
	}
	question := c.FormValue("pergunta")
	if strings.TrimSpace(question) == "" {
		return s.renderDetail(c, r, "", "")
	}
	answer := s.deps.Assistant.Ask(c.Request().Context(), question, gpt.RecipeContext(r))
	return s.renderDetail(c, r, question, answer)
}

type jsonLDRecipe struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Image       []string    `json:"image"`
	Author      jsonLDTyped `json:"author"`
	Description string      `json:"description"`
	Category    string      `json:"recipeCategory"`
	Nutrition   jsonLDTyped `json:"nutrition"`
	Ingredients []string    `json:"recipeIngredient"`
}

type jsonLDTyped struct {
	Type     string `json:"@type"`
	Name     string `json:"name,omitempty"`
	Calories string `json:"calories,omitempty"`
}

// recipeJSONLD describes r as a schema.org Recipe.
func recipeJSONLD(r *domain.Recipe) (template.JS, error) {
	ld := jsonLDRecipe{
		Context:     "https://schema.org/",
		Type:        "Recipe",
		Name:        r.Title,
		Image:       []string{r.ImageURL},
		Author:      jsonLDTyped{Type: "Person", Name: r.Author},
		Description: r.Description,
		Category:    r.Category,
		Nutrition:   jsonLDTyped{Type: "NutritionInformation", Calories: fmt.Sprintf("%d calories", derefInt(r.Calories))},
	}
	for _, ing := range r.Ingredients {
		ld.Ingredients = append(ld.Ingredients, ing.Quantity+" "+ing.Item)
	}
	b, err := json.Marshal(ld)
	if err != nil {
		return "", fmt.Errorf("web: encode json-ld: %w", err)
	}
	return template.JS(b), nil
}

// ── Saved, techniques, subscribe ─────────────────────────────────

type savedData struct {
	Recipes []*domain.Recipe
}

func (s *Server) saved(c echo.Context) error {
	var data savedData
	for _, id := range s.savedSet(c).IDs(c.Request().Context()) {
		r, err := s.deps.Catalog.Get(id)
		if err != nil {
			// Ids from an older catalog no longer resolve.
			continue
		}
		data.Recipes = append(data.Recipes, r)
	}
	return c.Render(http.StatusOK, tmplSaved, s.newView(c, title("Guardadas"), domain.PageSaved, data))
}

func (s *Server) techniques(c echo.Context) error {
	return c.Render(http.StatusOK, tmplTechniques, s.newView(c, title("Academia de Técnicas"), domain.PageTechniques, nil))
}

// subscribe is the newsletter form. Nothing is stored; the visitor just
// gets the confirmation toast.
func (s *Server) subscribe(c echo.Context) error {
	setFlash(c, msgSubscribe)
	return c.Redirect(http.StatusSeeOther, s.back(c, "/"))
}

func (s *Server) renderNotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, tmplNotFound, s.newView(c, title("Receita não encontrada"), "", nil))
}

// back returns the local page the request came from, or fallback.
func (s *Server) back(c echo.Context, fallback string) string {
	ref := c.Request().Referer()
	if ref == "" {
		return fallback
	}
	if i := strings.Index(ref, "://"); i >= 0 {
		rest := ref[i+3:]
		j := strings.IndexByte(rest, '/')
		if j < 0 || rest[:j] != c.Request().Host {
			return fallback
		}
		ref = rest[j:]
	}
	if !localPath(ref) {
		return fallback
	}
	return ref
}
