package handlers

import (
	"strings"

	"github.com/labstack/echo/v5"
	"golang.org/x/sync/errgroup"

	"github.com/smart-kyc/kyc-screener/internal/screening"
)

// HandleScreen screens a single hand-entered applicant, bypassing file
// ingestion. The screening call and the metrics snapshot are fetched
// concurrently; the snapshot endpoint is authoritative for counters.
func (h *Handlers) HandleScreen(c *echo.Context) error {
	ws := h.Workspace(c)
	csrfToken := h.csrfToken(c)

	applicant := screening.Applicant{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Country: strings.TrimSpace(c.FormValue("country")),
		DOB:     strings.TrimSpace(c.FormValue("dob")),
	}
	if applicant.Name == "" {
		return h.renderConsoleMain(c, ws, csrfToken, "Applicant name is required.")
	}

	var (
		batch    *screening.BatchResult
		snapshot screening.Metrics
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		batch, err = h.Backend.Screen(ctx, []screening.Applicant{applicant})
		return err
	})
	g.Go(func() error {
		var err error
		snapshot, err = h.Backend.Metrics(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.Logger().Warn("direct screening failed", "name", applicant.Name, "error", err)
		return h.renderConsoleMain(c, ws, csrfToken, "Screening failed: "+err.Error())
	}

	batch.Metrics = snapshot
	ws.SetBatch(batch)
	return h.renderConsoleMain(c, ws, csrfToken, "")
}
