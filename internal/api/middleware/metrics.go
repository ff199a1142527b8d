// Package middleware provides Echo middleware for the localflipper API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/localflipper/internal/metrics"
)

// probePaths are scraped or polled far more often than real traffic and are
// kept out of the request histograms. The health handlers maintain their
// own up/down gauges.
var probePaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

const unmatchedRoute = "unmatched"

// Metrics returns Echo middleware that records request duration and status
// per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := probePaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			route := routeLabel(c)
			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

// routeLabel uses the matched route template so /searches/{id} stays one
// series. Requests that matched nothing share a single label.
func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return unmatchedRoute
}

// responseStatus reports the status the client will see, including errors
// that Echo's error handler has not written yet.
func responseStatus(c echo.Context, err error) int {
	if c.Response().Committed || err == nil {
		return c.Response().Status
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 500
}
