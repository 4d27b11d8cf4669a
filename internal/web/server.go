// Package web serves the CozinhaMestre site: server-rendered pages over
// the generated catalog, the per-visitor saved set, and the chef chat.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hammamikhairi/cozinhamestre/internal/chat"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/gpt"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
	"github.com/hammamikhairi/cozinhamestre/internal/recipe"
)

// Pinger is a store that can report its health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the site is built from.
type Deps struct {
	Catalog   *recipe.Catalog
	Store     domain.KeyValueStore
	Assistant *gpt.Assistant
	Chats     *chat.Hub
	// Pinger is checked by /health. Nil reports the store as in-memory.
	Pinger Pinger
}

// Server is the HTTP front end.
type Server struct {
	e       *echo.Echo
	deps    Deps
	log     *logger.Logger
	started time.Time
}

// New builds the server and registers every route.
func New(deps Deps, log *logger.Logger) (*Server, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = r
	e.Logger.SetOutput(log.Writer(logger.LevelVerbose))

	s := &Server{e: e, deps: deps, log: log, started: time.Now()}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(requestLog(log))
	e.Use(visitor(log))

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.e
	e.StaticFS("/static", echo.MustSubFS(staticFS, "static"))

	e.GET("/", s.home)
	e.GET("/receitas", s.catalog)
	e.POST("/pesquisa", s.search)
	e.GET("/categorias/:id", s.category)
	e.GET("/receitas/:slug", s.detail)
	e.POST("/receitas/:slug/guardar", s.toggleSaved)
	e.POST("/receitas/:slug/perguntar", s.askChef)
	e.GET("/guardadas", s.saved)
	e.GET("/tecnicas", s.techniques)
	e.POST("/subscrever", s.subscribe)

	e.GET("/chat", s.chatState)
	e.POST("/chat", s.chatSubmit)

	e.GET("/export.xlsx", s.exportXLSX)
	e.GET("/health", s.health)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.e }

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", addr)
		errCh <- s.e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// handleError renders the not-found page for unknown routes and leaves
// everything else to echo's default handler.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusNotFound {
		if rerr := s.renderNotFound(c); rerr != nil {
			s.log.Error("render not found: %v", rerr)
		}
		return
	}
	s.log.Error("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	s.e.DefaultHTTPErrorHandler(err, c)
}
