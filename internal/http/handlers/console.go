package handlers

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
)

// HandleConsole renders the operator console: upload intake, results,
// metrics, and the analyst panel.
func (h *Handlers) HandleConsole(c *echo.Context) error {
	ws := h.Workspace(c)
	csrfToken := h.csrfToken(c)

	data := viewmodels.ConsoleViewData{
		Layout: h.LayoutData(c, "Console"),
		Upload: viewmodels.UploadViewData{
			Mode:      "batch",
			Busy:      ws.Uploading(),
			CSRFToken: csrfToken,
		},
		Main: buildConsoleMain(ws, csrfToken, ""),
	}
	return h.Views.RenderPage(c, http.StatusOK, "console.html", data)
}
