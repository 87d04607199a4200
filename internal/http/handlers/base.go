// Package handlers contains HTTP handler logic split by domain.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/smart-kyc/kyc-screener/internal/backend"
	"github.com/smart-kyc/kyc-screener/internal/config"
	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
	"github.com/smart-kyc/kyc-screener/internal/http/views"
	"github.com/smart-kyc/kyc-screener/internal/session"
)

const (
	// ContextKeyRequestID stores the request id (X-Request-ID) for logging and client error references.
	ContextKeyRequestID = "request_id"

	// InternalErrorCode is a stable error code safe to return to clients.
	InternalErrorCode = "INTERNAL_ERROR"

	sessionKeyWorkspace = "workspace_id"
)

// Handlers groups all HTTP handlers and shared dependencies.
type Handlers struct {
	Cfg        config.Config
	Backend    *backend.Client
	Sessions   *scs.SessionManager
	Workspaces *session.Manager
	Views      *views.TemplateSet
}

// Workspace resolves the caller's workspace from the session cookie,
// minting one on first contact.
func (h *Handlers) Workspace(c *echo.Context) *session.Workspace {
	ctx := c.Request().Context()
	id := h.Sessions.GetString(ctx, sessionKeyWorkspace)
	ws, resolved := h.Workspaces.Workspace(id)
	if resolved != id {
		h.Sessions.Put(ctx, sessionKeyWorkspace, resolved)
	}
	return ws
}

// LayoutData builds the common layout data for page rendering.
func (h *Handlers) LayoutData(c *echo.Context, title string) viewmodels.LayoutData {
	return viewmodels.LayoutData{
		Title:      title,
		CSRFToken:  h.csrfToken(c),
		ActivePath: c.Request().URL.Path,
		BackendURL: h.Cfg.BackendURL,
		Toast:      popFlashToast(c),
	}
}

func (h *Handlers) csrfToken(c *echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

// HandleHealthz reports console liveness. Backend health is a separate
// page; this endpoint answers even when the backend is down.
func (h *Handlers) HandleHealthz(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// RenderError returns a plain text error response.
func (h *Handlers) RenderError(c *echo.Context, err error) error {
	requestID, _ := c.Get(ContextKeyRequestID).(string)
	path := ""
	if req := c.Request(); req != nil && req.URL != nil {
		path = req.URL.Path
	}
	method := ""
	if req := c.Request(); req != nil {
		method = req.Method
	}
	c.Logger().Error("http error",
		"request_id", requestID,
		"method", method,
		"path", path,
		"ip", c.RealIP(),
		"error", err,
	)

	msg := "Internal server error."
	if requestID != "" {
		msg = fmt.Sprintf("%s Reference: %s.", msg, requestID)
	}
	msg = fmt.Sprintf("%s Code: %s.", msg, InternalErrorCode)
	return c.String(http.StatusInternalServerError, msg)
}

// RenderNotFound returns a 404 response.
func RenderNotFound(c *echo.Context) error {
	return c.String(http.StatusNotFound, "404 page not found")
}
