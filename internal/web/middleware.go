package web

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// requestLog logs one debug line per request once the handler and any
// error rendering have finished.
func requestLog(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			req := c.Request()
			log.Debug("%s %s %d %s", req.Method, req.URL.RequestURI(), c.Response().Status, time.Since(start).Round(time.Microsecond))
			return nil
		}
	}
}
