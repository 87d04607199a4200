package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/metrics"
	"github.com/smart-kyc/kyc-screener/internal/screening"
	"github.com/smart-kyc/kyc-screener/internal/session"
)

// HandleUpload accepts one file, relays it to the backend, and replaces
// the workspace batch with the response. One upload may be in flight
// per workspace; a second submission is refused, not queued.
func (h *Handlers) HandleUpload(c *echo.Context) error {
	ws := h.Workspace(c)
	csrfToken := h.csrfToken(c)

	mode := c.FormValue("mode")
	if mode != "document" {
		mode = "batch"
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.renderConsoleMain(c, ws, csrfToken, "Choose a file to upload.")
	}

	if err := ws.BeginUpload(); err != nil {
		if errors.Is(err, session.ErrUploadInFlight) {
			metrics.UploadsTotal.WithLabelValues(mode, "rejected").Inc()
			return h.renderConsoleMain(c, ws, csrfToken, "An upload is already in progress. Wait for it to finish.")
		}
		return err
	}
	defer ws.EndUpload()

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	ctx := c.Request().Context()
	var batch *screening.BatchResult
	if mode == "document" {
		batch, err = h.Backend.UploadID(ctx, fileHeader.Filename, file)
	} else {
		batch, err = h.Backend.UploadCSV(ctx, fileHeader.Filename, file)
	}
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(mode, "error").Inc()
		c.Logger().Warn("upload failed", "mode", mode, "error", err)
		return h.renderConsoleMain(c, ws, csrfToken, "Screening failed: "+err.Error())
	}

	metrics.UploadsTotal.WithLabelValues(mode, "ok").Inc()
	ws.SetBatch(batch)
	return h.renderConsoleMain(c, ws, csrfToken, "")
}

func (h *Handlers) renderConsoleMain(c *echo.Context, ws *session.Workspace, csrfToken, alert string) error {
	return h.Views.RenderFragment(c, http.StatusOK, "console_main", buildConsoleMain(ws, csrfToken, alert))
}
