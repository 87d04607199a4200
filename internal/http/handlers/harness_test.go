package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/backend"
	"github.com/smart-kyc/kyc-screener/internal/config"
	"github.com/smart-kyc/kyc-screener/internal/http/views"
	"github.com/smart-kyc/kyc-screener/internal/screening"
	"github.com/smart-kyc/kyc-screener/internal/session"
)

func newTestHandlers(t *testing.T, backendFn http.HandlerFunc) *Handlers {
	t.Helper()

	if backendFn == nil {
		backendFn = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unexpected backend call", http.StatusInternalServerError)
		}
	}
	srv := httptest.NewServer(backendFn)
	t.Cleanup(srv.Close)

	client, err := backend.New(srv.URL, 0)
	if err != nil {
		t.Fatalf("backend.New() error = %v", err)
	}
	ts, err := views.NewTemplateSet()
	if err != nil {
		t.Fatalf("views.NewTemplateSet() error = %v", err)
	}

	return &Handlers{
		Cfg:        config.Config{BackendURL: srv.URL},
		Backend:    client,
		Sessions:   scs.New(),
		Workspaces: session.NewManager(),
		Views:      ts,
	}
}

func testEcho(h *Handlers) *echo.Echo {
	e := echo.New()
	e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	e.GET("/", h.HandleConsole)
	e.POST("/upload", h.HandleUpload)
	e.POST("/screen", h.HandleScreen)
	e.POST("/cases/:index/select", h.HandleCaseSelect)
	e.GET("/analyst/tabs/:tab", h.HandleAnalystTab)
	e.GET("/analyst/adverse-media", h.HandleAdverseMedia)
	e.GET("/analyst/reports/:kind", h.HandleReport)
	e.POST("/metrics/refresh", h.HandleMetricsRefresh)
	e.GET("/rules", h.HandleRules)
	e.GET("/rules/editor", h.HandleRuleEditorOpen)
	e.POST("/rules/editor/conditions", h.HandleRuleConditionAdd)
	e.POST("/rules/editor/conditions/:index/remove", h.HandleRuleConditionRemove)
	e.POST("/rules/editor/cancel", h.HandleRuleEditorCancel)
	e.POST("/rules/teach", h.HandleRuleTeach)
	e.GET("/status", h.HandleStatus)
	return e
}

// newSessionRequest builds a request whose context carries a loaded
// session bound to the given workspace id.
func newSessionRequest(t *testing.T, h *Handlers, wsID, method, target string, form url.Values) *http.Request {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ctx, err := h.Sessions.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("Sessions.Load() error = %v", err)
	}
	if wsID != "" {
		h.Sessions.Put(ctx, sessionKeyWorkspace, wsID)
	}
	return req.WithContext(ctx)
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustCase(t *testing.T, payload string) screening.ScreeningCase {
	t.Helper()

	var sc screening.ScreeningCase
	if err := json.Unmarshal([]byte(payload), &sc); err != nil {
		t.Fatalf("case payload: %v", err)
	}
	return sc
}

func seedBatch(t *testing.T, h *Handlers, cases ...screening.ScreeningCase) (*session.Workspace, string) {
	t.Helper()

	ws, id := h.Workspaces.Workspace("")
	ws.SetBatch(&screening.BatchResult{
		Results: cases,
		Metrics: screening.Metrics{TotalScreened: len(cases)},
	})
	return ws, id
}
