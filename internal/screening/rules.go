package screening

import (
	"errors"
	"strings"
)

// Condition operators accepted by the rule engine.
const (
	OpEquals   = "equals"
	OpGTE      = "gte"
	OpGT       = "gt"
	OpLTE      = "lte"
	OpLT       = "lt"
	OpIn       = "in"
	OpContains = "contains"
)

// ConditionOperators lists the operators in editor order.
func ConditionOperators() []string {
	return []string{OpEquals, OpGTE, OpGT, OpLTE, OpLT, OpIn, OpContains}
}

// Priority bounds documented for rules; lower evaluates first. The
// editor only shapes the input, the backend is the validation
// authority.
const (
	RulePriorityMin     = 1
	RulePriorityMax     = 999
	RulePriorityDefault = 50
)

// Condition is one field/operator/value predicate of a rule.
type Condition struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value string `json:"value"`
}

// RuleDraft is the rule under construction in the editor. It exists
// only while the modal is open and is submitted as one unit. The
// condition list never shrinks below one entry.
type RuleDraft struct {
	RuleID      string      `json:"rule_id"`
	Description string      `json:"description"`
	Outcome     Decision    `json:"outcome"`
	Priority    int         `json:"priority"`
	Conditions  []Condition `json:"conditions"`
}

// ErrLastCondition is returned when removal would empty the condition
// list.
var ErrLastCondition = errors.New("a rule needs at least one condition")

// NewRuleDraft returns a draft with the editor defaults: REVIEW
// outcome, default priority, one blank condition.
func NewRuleDraft() RuleDraft {
	return RuleDraft{
		Outcome:    DecisionReview,
		Priority:   RulePriorityDefault,
		Conditions: []Condition{{Op: OpEquals}},
	}
}

// AddCondition appends a blank condition to the end of the list.
func (d *RuleDraft) AddCondition() {
	d.Conditions = append(d.Conditions, Condition{Op: OpEquals})
}

// RemoveCondition removes the condition at the given position. The
// operation is refused when it would leave the draft without any
// conditions, or when the index is out of range.
func (d *RuleDraft) RemoveCondition(index int) error {
	if index < 0 || index >= len(d.Conditions) {
		return errors.New("condition index out of range")
	}
	if len(d.Conditions) <= 1 {
		return ErrLastCondition
	}
	d.Conditions = append(d.Conditions[:index], d.Conditions[index+1:]...)
	return nil
}

// Validate checks the locally-enforceable shape of the draft before
// submission. Priority bounds are an input affordance only and are not
// checked here.
func (d RuleDraft) Validate() error {
	if strings.TrimSpace(d.RuleID) == "" {
		return errors.New("rule id is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return errors.New("description is required")
	}
	if !d.Outcome.Known() {
		return errors.New("outcome must be APPROVE, REVIEW, or BLOCK")
	}
	if len(d.Conditions) == 0 {
		return ErrLastCondition
	}
	return nil
}

// Rule is a stored rule as reported by the backend configuration
// listing.
type Rule struct {
	ID          string      `json:"id"`
	Description string      `json:"description,omitempty"`
	Enabled     bool        `json:"enabled"`
	Priority    int         `json:"priority,omitempty"`
	Conditions  []Condition `json:"conditions,omitempty"`
	Outcome     Decision    `json:"outcome,omitempty"`
}

// RulesConfig is the backend's current rule configuration.
type RulesConfig struct {
	Rules      []Rule             `json:"rules"`
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
}
