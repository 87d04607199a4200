// Package viewmodels defines the render-ready structs handed to views.
package viewmodels

// ToastViewData is a one-shot notification shown after a redirect.
type ToastViewData struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LayoutData is the common chrome data for full page renders.
type LayoutData struct {
	Title      string
	CSRFToken  string
	ActivePath string
	BackendURL string
	Toast      *ToastViewData
}
