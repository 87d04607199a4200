package views

import "testing"

func TestNewTemplateSetParsesAllTemplates(t *testing.T) {
	t.Parallel()

	ts, err := NewTemplateSet()
	if err != nil {
		t.Fatalf("NewTemplateSet() error = %v", err)
	}

	for _, page := range pageNames {
		if _, ok := ts.pages[page]; !ok {
			t.Errorf("page %s not parsed", page)
		}
	}

	fragments := []string{
		"toast",
		"upload_panel",
		"console_main",
		"results_table",
		"metrics_panel",
		"analyst_panel",
		"analyst_tab_explanation",
		"analyst_tab_adverse",
		"analyst_tab_reports",
		"adverse_media",
		"report",
		"rule_editor",
		"modal_empty",
	}
	for _, name := range fragments {
		if ts.fragments.Lookup(name) == nil {
			t.Errorf("fragment %s not defined", name)
		}
	}
}
