package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/localflipper/internal/metrics"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck is one named dependency probed by /readyz.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// PingCheck adapts a Pinger into a ReadinessCheck.
func PingCheck(name string, p Pinger) ReadinessCheck {
	return ReadinessCheck{Name: name, Check: p.Ping}
}

// ReadyResponse is the /readyz body. Failed names the checks that did not pass.
type ReadyResponse struct {
	Status string   `json:"status"`
	Failed []string `json:"failed,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks []ReadinessCheck
}

// NewHealthHandler creates a HealthHandler that is ready only when every
// check passes.
func NewHealthHandler(checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Healthz returns 200 while the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	metrics.HealthzUp.Set(1)
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz runs the readiness checks in order and returns 503 naming the
// failures, or 200 when all pass.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	var failed []string
	for _, rc := range h.checks {
		if err := rc.Check(ctx); err != nil {
			c.Logger().Warnf("readiness check %s failed: %v", rc.Name, err)
			failed = append(failed, rc.Name)
		}
	}

	if len(failed) > 0 {
		metrics.ReadyzUp.Set(0)
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Failed: failed})
	}
	metrics.ReadyzUp.Set(1)
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
}
