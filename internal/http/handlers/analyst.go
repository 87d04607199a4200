package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
)

// HandleCaseSelect marks one result row as the analyst panel's subject.
// The case object is handed to the panel exactly as the backend
// returned it.
func (h *Handlers) HandleCaseSelect(c *echo.Context) error {
	ws := h.Workspace(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid case index")
	}
	sc, token, err := ws.Select(index)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "case index out of range")
	}

	return h.Views.RenderFragment(c, http.StatusOK, "analyst_panel",
		buildAnalystView(sc, token, "explanation", h.csrfToken(c)))
}

// HandleAnalystTab re-renders the panel with the requested tab active.
// The adverse and reports tabs load their artifacts lazily, so
// revisiting a tab always re-fetches.
func (h *Handlers) HandleAnalystTab(c *echo.Context) error {
	ws := h.Workspace(c)

	tab := c.Param("tab")
	switch tab {
	case "explanation", "adverse", "reports":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown analyst tab")
	}

	sc, token, err := ws.Selected()
	if err != nil {
		return h.Views.RenderFragment(c, http.StatusOK, "analyst_panel", viewmodels.AnalystViewData{})
	}
	return h.Views.RenderFragment(c, http.StatusOK, "analyst_panel",
		buildAnalystView(sc, token, tab, h.csrfToken(c)))
}

// HandleAdverseMedia looks up negative coverage for the selected case.
// The request carries the generation token it was issued under; if the
// selection changed while the lookup ran, the response is dropped
// instead of being attributed to the new case.
func (h *Handlers) HandleAdverseMedia(c *echo.Context) error {
	ws := h.Workspace(c)
	token := c.QueryParam("token")

	sc, _, err := ws.Selected()
	if err != nil || !ws.CurrentGeneration(token) {
		return h.Views.RenderFragment(c, http.StatusOK, "adverse_media",
			viewmodels.AdverseMediaViewData{Token: token, Stale: true})
	}

	result, err := h.Backend.AdverseMedia(c.Request().Context(), sc.Applicant.Name)
	if !ws.CurrentGeneration(token) {
		return h.Views.RenderFragment(c, http.StatusOK, "adverse_media",
			viewmodels.AdverseMediaViewData{Token: token, Stale: true})
	}
	if err != nil {
		c.Logger().Warn("adverse media lookup failed", "name", sc.Applicant.Name, "error", err)
		return h.Views.RenderFragment(c, http.StatusOK, "adverse_media",
			viewmodels.AdverseMediaViewData{Token: token, Error: "Adverse media lookup failed. Reopen the tab to retry."})
	}

	return h.Views.RenderFragment(c, http.StatusOK, "adverse_media", buildAdverseMediaView(result, token))
}

// HandleReport drafts one report for the selected case. EDD and SAR are
// requested independently by the reports tab and render as each one
// arrives.
func (h *Handlers) HandleReport(c *echo.Context) error {
	ws := h.Workspace(c)
	token := c.QueryParam("token")

	kind := c.Param("kind")
	var title string
	switch kind {
	case "edd":
		title = "Enhanced Due Diligence Draft"
	case "sar":
		title = "Suspicious Activity Report Draft"
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown report kind")
	}

	sc, _, err := ws.Selected()
	if err != nil || !ws.CurrentGeneration(token) {
		return h.Views.RenderFragment(c, http.StatusOK, "report",
			viewmodels.ReportViewData{Token: token, Kind: kind, Title: title, Stale: true})
	}

	var report string
	if kind == "edd" {
		report, err = h.Backend.DraftEDD(c.Request().Context(), sc)
	} else {
		report, err = h.Backend.DraftSAR(c.Request().Context(), sc)
	}
	if !ws.CurrentGeneration(token) {
		return h.Views.RenderFragment(c, http.StatusOK, "report",
			viewmodels.ReportViewData{Token: token, Kind: kind, Title: title, Stale: true})
	}
	if err != nil {
		c.Logger().Warn("report draft failed", "kind", kind, "error", err)
		return h.Views.RenderFragment(c, http.StatusOK, "report",
			viewmodels.ReportViewData{Token: token, Kind: kind, Title: title, Error: "Report drafting failed. Reopen the tab to retry."})
	}

	return h.Views.RenderFragment(c, http.StatusOK, "report",
		viewmodels.ReportViewData{Token: token, Kind: kind, Title: title, Report: report})
}
