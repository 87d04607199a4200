package screening

import (
	"errors"
	"testing"
)

func TestNewRuleDraftStartsWithOneBlankCondition(t *testing.T) {
	t.Parallel()

	d := NewRuleDraft()
	if len(d.Conditions) != 1 {
		t.Fatalf("len(Conditions) = %d, want 1", len(d.Conditions))
	}
	if d.Conditions[0].Op != OpEquals {
		t.Fatalf("Op = %q, want %q", d.Conditions[0].Op, OpEquals)
	}
	if d.Outcome != DecisionReview {
		t.Fatalf("Outcome = %q, want %q", d.Outcome, DecisionReview)
	}
	if d.Priority != RulePriorityDefault {
		t.Fatalf("Priority = %d, want %d", d.Priority, RulePriorityDefault)
	}
}

func TestRemoveConditionRefusesLastEntry(t *testing.T) {
	t.Parallel()

	d := NewRuleDraft()
	err := d.RemoveCondition(0)
	if !errors.Is(err, ErrLastCondition) {
		t.Fatalf("RemoveCondition() error = %v, want ErrLastCondition", err)
	}
	if len(d.Conditions) != 1 {
		t.Fatalf("len(Conditions) = %d, want 1", len(d.Conditions))
	}
}

func TestRemoveConditionShiftsByPosition(t *testing.T) {
	t.Parallel()

	d := NewRuleDraft()
	d.Conditions[0] = Condition{Field: "country", Op: OpEquals, Value: "Iran"}
	d.AddCondition()
	d.Conditions[1] = Condition{Field: "match_score", Op: OpGTE, Value: "85"}

	if err := d.RemoveCondition(0); err != nil {
		t.Fatalf("RemoveCondition() error = %v", err)
	}
	if len(d.Conditions) != 1 {
		t.Fatalf("len(Conditions) = %d, want 1", len(d.Conditions))
	}
	if got := d.Conditions[0]; got.Field != "match_score" || got.Op != OpGTE || got.Value != "85" {
		t.Fatalf("Conditions[0] = %+v, want the second original condition", got)
	}
}

func TestRemoveConditionRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	d := NewRuleDraft()
	d.AddCondition()
	if err := d.RemoveCondition(5); err == nil {
		t.Fatalf("RemoveCondition(5) error = nil, want out of range")
	}
	if err := d.RemoveCondition(-1); err == nil {
		t.Fatalf("RemoveCondition(-1) error = nil, want out of range")
	}
}

func TestRuleDraftValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*RuleDraft)
		wantErr bool
	}{
		{
			name: "complete draft",
			mutate: func(d *RuleDraft) {
				d.RuleID = "high_risk_country"
				d.Description = "Review applicants from high-risk jurisdictions"
			},
		},
		{
			name:    "missing rule id",
			mutate:  func(d *RuleDraft) { d.Description = "something" },
			wantErr: true,
		},
		{
			name:    "missing description",
			mutate:  func(d *RuleDraft) { d.RuleID = "r1" },
			wantErr: true,
		},
		{
			name: "unknown outcome",
			mutate: func(d *RuleDraft) {
				d.RuleID = "r1"
				d.Description = "desc"
				d.Outcome = Decision("ESCALATE")
			},
			wantErr: true,
		},
		{
			name: "no conditions",
			mutate: func(d *RuleDraft) {
				d.RuleID = "r1"
				d.Description = "desc"
				d.Conditions = nil
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := NewRuleDraft()
			tc.mutate(&d)
			err := d.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
