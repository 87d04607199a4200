package viewmodels

import "github.com/smart-kyc/kyc-screener/internal/screening"

// RuleEditorViewData drives the rule editor modal. The draft survives a
// failed submit so the operator retries without re-entering it.
type RuleEditorViewData struct {
	Draft     screening.RuleDraft
	Operators []string
	Outcomes  []screening.Decision
	Error     string
	CSRFToken string
}

// RuleListItem is one stored rule in the rules browser.
type RuleListItem struct {
	ID            string
	Description   string
	OutcomeLabel  string
	BadgeClass    string
	Priority      int
	Enabled       bool
	EnabledLabel  string
	ConditionText []string
}

// ThresholdItem is one named engine threshold from the backend rule
// configuration.
type ThresholdItem struct {
	Name  string
	Value string
}

// RulesViewData drives the rules browser page.
type RulesViewData struct {
	Layout     LayoutData
	Rules      []RuleListItem
	Thresholds []ThresholdItem
	Error      string
}
