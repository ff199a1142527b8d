package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/localflipper/internal/metrics"
)

// Recovery turns a handler panic into a 500 problem response so one bad
// listing cannot take the server down. http.ErrAbortHandler is re-raised
// for net/http to handle.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if e, ok := v.(error); ok && errors.Is(e, http.ErrAbortHandler) {
					panic(v)
				}
				metrics.HTTPPanicsTotal.Inc()

				req := c.Request()
				log.Error("panic recovered",
					"error", fmt.Sprint(v),
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", c.Get(requestIDKey),
					"stack", string(debug.Stack()),
				)

				// Headers are already out; nothing useful can be sent.
				if c.Response().Committed {
					return
				}
				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				err = c.JSON(http.StatusInternalServerError, &huma.ErrorModel{
					Title:  http.StatusText(http.StatusInternalServerError),
					Status: http.StatusInternalServerError,
					Detail: "internal server error",
				})
			}()
			return next(c)
		}
	}
}
