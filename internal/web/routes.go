package web

import (
	"net/url"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// routePath is the URL a route is served at. Catalog routes carry their
// search term or target category in the query, and jump to the target's
// section.
func routePath(r domain.Route) string {
	switch r.Page {
	case domain.PageRecipes:
		return catalogURL(r.Search, r.Category, nil)
	case domain.PageDetail:
		return "/receitas/" + url.PathEscape(r.Slug)
	case domain.PageTechniques:
		return "/tecnicas"
	case domain.PageSaved:
		return "/guardadas"
	default:
		return "/"
	}
}

// catalogURL encodes the catalog state. open lists the sections the
// visitor has expanded.
func catalogURL(term, target string, open []string) string {
	q := url.Values{}
	if term != "" {
		q.Set("q", term)
	}
	if target != "" {
		q.Set("categoria", target)
	}
	for _, id := range open {
		q.Add("abrir", id)
	}
	u := "/receitas"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	if target != "" {
		u += "#" + target
	}
	return u
}

// localPath accepts p only if it is a path on this site.
func localPath(p string) bool {
	return len(p) > 0 && p[0] == '/' && (len(p) == 1 || (p[1] != '/' && p[1] != '\\'))
}
