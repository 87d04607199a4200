package screening

import "strings"

// Severity is the adverse-media severity scale. The scale is ordered:
// none < low < medium < high < critical.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// ParseSeverity normalizes a raw severity string. Unrecognized values
// map to none.
func ParseSeverity(raw string) Severity {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := severityRank[s]; !ok {
		return SeverityNone
	}
	return s
}

// Rank returns the position of the severity on the ordered scale.
func (s Severity) Rank() int {
	return severityRank[s]
}

// AtLeast reports whether s is at or above the given severity.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// Label returns the upper-cased badge text, empty for none.
func (s Severity) Label() string {
	if s == SeverityNone || s == "" {
		return ""
	}
	return strings.ToUpper(string(s))
}

// MaxSeverity returns the highest severity among the given values.
func MaxSeverity(values ...Severity) Severity {
	max := SeverityNone
	for _, v := range values {
		if v.Rank() > max.Rank() {
			max = v
		}
	}
	return max
}
