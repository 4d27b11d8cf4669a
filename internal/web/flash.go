package web

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

const flashCookie = "cm_flash"

// Compile-time interface check.
var _ domain.Notifier = flashNotifier{}

// flashNotifier turns a notification into a toast shown on the next page
// render. Every mutating route redirects, so "next" is the page the
// visitor lands on.
type flashNotifier struct {
	c echo.Context
}

func (n flashNotifier) Notify(ctx context.Context, message string) error {
	setFlash(n.c, message)
	return nil
}

func setFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash returns the pending toast, if any, and clears it.
func takeFlash(c echo.Context) string {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	return msg
}
