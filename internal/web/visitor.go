package web

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
	"github.com/hammamikhairi/cozinhamestre/internal/storage"
)

const (
	visitorCookie = "cm_visitor"
	visitorKey    = "visitor"
	visitorMaxAge = 365 * 24 * time.Hour
)

// newVisitorID creates a random id of 16 hex digits.
func newVisitorID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return clockVisitorID(time.Now())
	}
	return fmt.Sprintf("%x", b)
}

// clockVisitorID is the fallback when the system has no randomness. It
// keeps the id shape so the cookie is accepted on the next request.
func clockVisitorID(now time.Time) string {
	return fmt.Sprintf("%016x", uint64(now.UnixNano()))
}

func validVisitorID(id string) bool {
	if len(id) != 16 {
		return false
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

// visitor makes sure every request carries an anonymous visitor id,
// issuing a cookie on first contact.
func visitor(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if ck, err := c.Cookie(visitorCookie); err == nil && validVisitorID(ck.Value) {
				id = ck.Value
			} else {
				id = newVisitorID()
				c.SetCookie(&http.Cookie{
					Name:     visitorCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(visitorMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				log.Debug("new visitor %s", id)
			}
			c.Set(visitorKey, id)
			return next(c)
		}
	}
}

func visitorID(c echo.Context) string {
	id, _ := c.Get(visitorKey).(string)
	return id
}

// visitorStore is the key-value store seen by the current visitor.
func (s *Server) visitorStore(c echo.Context) domain.KeyValueStore {
	return storage.NewScoped(s.deps.Store, visitorID(c))
}

// savedSet returns the visitor's saved set. Toggles report through the
// flash toast.
func (s *Server) savedSet(c echo.Context) *storage.SavedSet {
	return storage.NewSavedSet(s.visitorStore(c), s.log, storage.WithNotifier(flashNotifier{c: c}))
}
