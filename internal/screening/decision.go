// Package screening holds the client-side view models for the KYC
// screening backend. Every type here is transient: it is rebuilt from a
// backend response on each screen transition and never persisted.
package screening

import "strings"

// Decision is the screening outcome for an applicant. The backend
// contract is not closed, so values outside the three known outcomes
// must be carried through and rendered as an unknown state rather than
// rejected.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReview  Decision = "REVIEW"
	DecisionBlock   Decision = "BLOCK"
)

// KnownDecisions lists the recognized outcomes in rule-editor order.
func KnownDecisions() []Decision {
	return []Decision{DecisionApprove, DecisionReview, DecisionBlock}
}

// Known reports whether the decision is one of the three recognized
// outcomes.
func (d Decision) Known() bool {
	switch d {
	case DecisionApprove, DecisionReview, DecisionBlock:
		return true
	default:
		return false
	}
}

// Label returns the operator-facing label, or "Unknown" for values
// outside the contract.
func (d Decision) Label() string {
	switch d {
	case DecisionApprove:
		return "Approved"
	case DecisionReview:
		return "Review"
	case DecisionBlock:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// ParseDecision normalizes a raw outcome string.
func ParseDecision(raw string) Decision {
	return Decision(strings.ToUpper(strings.TrimSpace(raw)))
}
