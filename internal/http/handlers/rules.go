package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
)

// HandleRules renders the backend's stored rule configuration. A
// backend failure renders the page with an alert instead of failing it.
func (h *Handlers) HandleRules(c *echo.Context) error {
	data := viewmodels.RulesViewData{Layout: h.LayoutData(c, "Rules")}

	cfg, err := h.Backend.Rules(c.Request().Context())
	if err != nil {
		c.Logger().Warn("rules listing failed", "error", err)
		data.Error = "Loading rules from the backend failed."
	} else {
		data.Rules = buildRulesView(cfg)
		data.Thresholds = buildThresholdsView(cfg)
	}
	return h.Views.RenderPage(c, http.StatusOK, "rules.html", data)
}
