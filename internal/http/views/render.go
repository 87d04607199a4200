// Package views renders the console's pages and htmx fragments from
// templates embedded at build time.
package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/screening"
)

//go:embed templates
var templateFS embed.FS

var pageNames = []string{
	"console.html",
	"rules.html",
	"status.html",
}

// TemplateSet holds pre-parsed templates. Layout and fragments are
// parsed once at startup and cloned per page, so a bad template fails
// at boot instead of on the first request.
type TemplateSet struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"decisionBadgeClass": DecisionBadgeClass,
		"decisionLabel":      screening.Decision.Label,
		"severityBadgeClass": SeverityBadgeClass,
		"severityLabel":      screening.Severity.Label,
		"matchScore":         FormatMatchScore,
		"decisionPercent":    FormatDecisionPercent,
		"confidence":         FormatConfidence,
		"articlesHeader":     ArticlesFoundHeader,
		"articleCount":       FormatArticleCount,
		"conditionSummary":   ConditionSummary,
		"enabledLabel":       EnabledLabel,
		"fallback":           Fallback,
	}
}

// NewTemplateSet parses the embedded templates.
func NewTemplateSet() (*TemplateSet, error) {
	base, err := template.New("layout").Funcs(funcMap()).
		ParseFS(templateFS, "templates/layout.html", "templates/fragments/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/pages/"+name); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	return &TemplateSet{pages: pages, fragments: base}, nil
}

// RenderPage writes a full page through the layout.
func (ts *TemplateSet) RenderPage(c *echo.Context, status int, page string, data any) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("page template not found: %s", page)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return t.ExecuteTemplate(c.Response(), "layout", data)
}

// RenderFragment writes one named fragment, for htmx swaps.
func (ts *TemplateSet) RenderFragment(c *echo.Context, status int, name string, data any) error {
	if ts.fragments.Lookup(name) == nil {
		return fmt.Errorf("fragment template not found: %s", name)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return ts.fragments.ExecuteTemplate(c.Response(), name, data)
}
