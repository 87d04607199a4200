package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

// HandleMetricsRefresh re-fetches the aggregate snapshot from the
// backend and re-renders the metrics panel. Result rows and the
// selection are untouched.
func (h *Handlers) HandleMetricsRefresh(c *echo.Context) error {
	ws := h.Workspace(c)
	csrfToken := h.csrfToken(c)

	m, err := h.Backend.Metrics(c.Request().Context())
	if err != nil {
		c.Logger().Warn("metrics refresh failed", "error", err)
		current := buildConsoleMain(ws, csrfToken, "").Metrics
		current.Error = "Metrics refresh failed. Retry."
		return h.Views.RenderFragment(c, http.StatusOK, "metrics_panel", current)
	}

	ws.UpdateMetrics(m)
	return h.Views.RenderFragment(c, http.StatusOK, "metrics_panel", buildMetricsView(m, csrfToken))
}
