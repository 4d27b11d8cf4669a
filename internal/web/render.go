package web

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/chat"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	tmplHome       = "home.html"
	tmplCatalog    = "catalog.html"
	tmplDetail     = "detail.html"
	tmplSaved      = "saved.html"
	tmplTechniques = "techniques.html"
	tmplNotFound   = "notfound.html"
)

var pages = []string{tmplHome, tmplCatalog, tmplDetail, tmplSaved, tmplTechniques, tmplNotFound}

var funcs = template.FuncMap{
	"stars":  stars,
	"chef":   chefMarkup,
	"pad":    func(n int) string { return fmt.Sprintf("%02d", n) },
	"path":   routePath,
	"isUser": func(r domain.Role) bool { return r == domain.RoleUser },
	"plural": plural,
	"deref":  derefInt,
}

// renderer holds one template set per page, each layered over layout.html.
type renderer struct {
	sets map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{sets: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		r.sets[p] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.sets[name]
	if !ok {
		return fmt.Errorf("web: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// view is what every page template receives.
type view struct {
	Title  string
	Active domain.Page
	Flash  string
	Search string
	Chat   chatView
	Data   any
}

type chatView struct {
	Turns   []domain.Turn
	Pending bool
	Prompts []chat.QuickPrompt
}

// newView fills the parts of the page every template shares.
func (s *Server) newView(c echo.Context, title string, active domain.Page, data any) view {
	t := s.deps.Chats.For(visitorID(c))
	return view{
		Title:  title,
		Active: active,
		Flash:  takeFlash(c),
		Chat:   chatView{Turns: t.Turns(), Pending: t.Pending(), Prompts: chat.QuickPrompts},
		Data:   data,
	}
}

func stars(rating float64) string {
	return strings.Repeat("★", int(math.Round(rating)))
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// chefMarkup renders an assistant reply: escaped text with **bold** and
// line breaks kept.
func chefMarkup(s string) template.HTML {
	out := html.EscapeString(s)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return template.HTML(out)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
