package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/export"
)

// ── Chat ─────────────────────────────────────────────────────────

type chatRequest struct {
	Message string `json:"message" form:"message"`
}

type chatResponse struct {
	Reply   string        `json:"reply,omitempty"`
	Turns   []domain.Turn `json:"turns"`
	Pending bool          `json:"pending"`
	Error   string        `json:"error,omitempty"`
}

func (s *Server) chatState(c echo.Context) error {
	t := s.deps.Chats.For(visitorID(c))
	return c.JSON(http.StatusOK, chatResponse{Turns: t.Turns(), Pending: t.Pending()})
}

// chatSubmit sends one message. The call is detached from the request so
// the reply still lands in the transcript if the visitor navigates away.
func (s *Server) chatSubmit(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid chat request")
	}

	t := s.deps.Chats.For(visitorID(c))
	ctx := context.WithoutCancel(c.Request().Context())

	reply, err := t.Submit(ctx, req.Message)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, chatResponse{Turns: t.Turns(), Error: err.Error()})
	case errors.Is(err, domain.ErrBusy):
		return c.JSON(http.StatusConflict, chatResponse{Turns: t.Turns(), Pending: true, Error: err.Error()})
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply, Turns: t.Turns(), Pending: t.Pending()})
}

// ── Export ───────────────────────────────────────────────────────

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeCatalog is swapped out in tests.
var writeCatalog = export.WriteCatalog

// exportXLSX builds the whole workbook before answering, so a failure is a
// 500 rather than a truncated download.
func (s *Server) exportXLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := writeCatalog(&buf, s.deps.Catalog); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="cozinhamestre-receitas.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ── Health ───────────────────────────────────────────────────────

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (s *Server) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	store := check{OK: true}
	kind := "memory"
	if s.deps.Pinger != nil {
		kind = "sqlite"
		if err := s.deps.Pinger.Ping(ctx); err != nil {
			store = check{OK: false, Err: "ping: " + err.Error()}
		}
	}

	status := http.StatusOK
	if !store.OK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": store.OK},
		"uptime_sec": int(time.Since(s.started).Seconds()),
		"recipes":    s.deps.Catalog.Len(),
		"checks": map[string]any{
			"store":     store,
			"assistant": check{OK: s.deps.Assistant.Online()},
		},
		"store": kind,
		"time":  time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
