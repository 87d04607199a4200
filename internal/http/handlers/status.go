package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
)

// HandleStatus renders the backend health page.
func (h *Handlers) HandleStatus(c *echo.Context) error {
	data := viewmodels.StatusViewData{
		Layout:     h.LayoutData(c, "Status"),
		BackendURL: h.Cfg.BackendURL,
	}

	health, err := h.Backend.Health(c.Request().Context())
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Reachable = true
		data.Status = health.Status
		data.Service = health.Service
	}
	return h.Views.RenderPage(c, http.StatusOK, "status.html", data)
}
