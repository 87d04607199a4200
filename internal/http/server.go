// Package httpapp wires the console's HTTP surface.
package httpapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/smart-kyc/kyc-screener/internal/backend"
	"github.com/smart-kyc/kyc-screener/internal/config"
	"github.com/smart-kyc/kyc-screener/internal/http/handlers"
	"github.com/smart-kyc/kyc-screener/internal/http/views"
	"github.com/smart-kyc/kyc-screener/internal/session"
)

const (
	sessionLifetime       = 12 * time.Hour
	workspacePruneEvery   = 15 * time.Minute
	workspaceIdleLifetime = 24 * time.Hour
)

// EchoServer is the HTTP server wrapper.
type EchoServer struct {
	h   *handlers.Handlers
	e   *echo.Echo
	srv *http.Server
}

// NewEchoServer creates a new HTTP server.
func NewEchoServer(cfg config.Config, client *backend.Client) (*EchoServer, error) {
	ts, err := views.NewTemplateSet()
	if err != nil {
		return nil, err
	}

	sessions := scs.New()
	sessions.Lifetime = sessionLifetime
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.CookieSecure

	h := &handlers.Handlers{
		Cfg:        cfg,
		Backend:    client,
		Sessions:   sessions,
		Workspaces: session.NewManager(),
		Views:      ts,
	}
	es := &EchoServer{h: h, e: echo.New()}
	es.e.Logger = slog.Default()
	es.e.HTTPErrorHandler = es.httpErrorHandler
	es.registerRoutes()
	return es, nil
}

func (es *EchoServer) registerRoutes() {
	es.e.Use(requestIDMiddleware)
	es.e.GET("/healthz", es.h.HandleHealthz)

	ui := es.e.Group("")
	ui.Use(echo.WrapMiddleware(es.h.Sessions.LoadAndSave))
	ui.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	ui.GET("/", es.h.HandleConsole)
	ui.POST("/upload", es.h.HandleUpload)
	ui.POST("/screen", es.h.HandleScreen)
	ui.POST("/cases/:index/select", es.h.HandleCaseSelect)
	ui.GET("/analyst/tabs/:tab", es.h.HandleAnalystTab)
	ui.GET("/analyst/adverse-media", es.h.HandleAdverseMedia)
	ui.GET("/analyst/reports/:kind", es.h.HandleReport)
	ui.POST("/metrics/refresh", es.h.HandleMetricsRefresh)
	ui.GET("/rules", es.h.HandleRules)
	ui.GET("/rules/editor", es.h.HandleRuleEditorOpen)
	ui.POST("/rules/editor/conditions", es.h.HandleRuleConditionAdd)
	ui.POST("/rules/editor/conditions/:index/remove", es.h.HandleRuleConditionRemove)
	ui.POST("/rules/editor/cancel", es.h.HandleRuleEditorCancel)
	ui.POST("/rules/teach", es.h.HandleRuleTeach)
	ui.GET("/status", es.h.HandleStatus)
}

func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		requestID := c.Request().Header.Get(echo.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(handlers.ContextKeyRequestID, requestID)
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)
		return next(c)
	}
}

func (es *EchoServer) httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status := httpStatusFromError(err)
	switch {
	case status == http.StatusNotFound:
		_ = handlers.RenderNotFound(c)
	case status >= 400 && status < 500:
		_ = c.String(status, http.StatusText(status))
	default:
		_ = es.h.RenderError(c, err)
	}
}

func httpStatusFromError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// PruneWorkspaces evicts idle workspaces until ctx is done.
func (es *EchoServer) PruneWorkspaces(ctx context.Context) {
	es.h.Workspaces.PruneLoop(ctx, workspacePruneEvery, workspaceIdleLifetime)
}

// Start starts the HTTP server.
func (es *EchoServer) Start(addr string) error {
	return es.e.Start(addr)
}

// StartServer starts the HTTP server with a custom http.Server.
func (es *EchoServer) StartServer(server *http.Server) error {
	server.Handler = es.e
	es.srv = server
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (es *EchoServer) Shutdown(ctx context.Context) error {
	if es.srv == nil {
		return nil
	}
	return es.srv.Shutdown(ctx)
}
