package views

import (
	"strconv"
	"strings"

	"github.com/smart-kyc/kyc-screener/internal/screening"
)

func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// DecisionBadgeClass maps a decision to its badge style. Anything the
// backend sends outside the three known values renders as the neutral
// "Unknown" badge rather than failing.
func DecisionBadgeClass(d screening.Decision) string {
	switch d {
	case screening.DecisionApprove:
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	case screening.DecisionReview:
		return "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"
	case screening.DecisionBlock:
		return "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"
	default:
		return "badge-outline"
	}
}

func SeverityBadgeClass(s screening.Severity) string {
	switch s {
	case screening.SeverityCritical:
		return "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"
	case screening.SeverityHigh:
		return "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"
	case screening.SeverityMedium:
		return "badge bg-sky-100 text-sky-800 dark:bg-sky-900/50 dark:text-sky-100"
	case screening.SeverityLow:
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	default:
		return "badge-outline"
	}
}

// FormatMatchScore renders a matcher score as a whole percent. An
// absent score renders as "0%", like the article tally renders zero.
func FormatMatchScore(score float64) string {
	if score <= 0 {
		return "0%"
	}
	return strconv.FormatFloat(score, 'f', 0, 64) + "%"
}

// FormatDecisionPercent renders a per-decision share as supplied by the
// backend, without re-deriving it from the counters.
func FormatDecisionPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatConfidence renders an explanation confidence fraction as a
// whole percent.
func FormatConfidence(value float64) string {
	percent := value * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return strconv.FormatFloat(percent, 'f', 0, 64) + "%"
}

// ArticlesFoundHeader renders the adverse-media tab header.
func ArticlesFoundHeader(total int) string {
	return strconv.Itoa(total) + " Article(s) Found"
}

// FormatArticleCount renders the per-row adverse media tally.
func FormatArticleCount(count int) string {
	return strconv.Itoa(count) + " article(s)"
}

// ConditionSummary renders one rule condition as a single line.
func ConditionSummary(c screening.Condition) string {
	parts := make([]string, 0, 3)
	if f := strings.TrimSpace(c.Field); f != "" {
		parts = append(parts, f)
	}
	if op := strings.TrimSpace(c.Op); op != "" {
		parts = append(parts, op)
	}
	if v := strings.TrimSpace(c.Value); v != "" {
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " ")
}

// EnabledLabel renders a stored rule's enabled flag.
func EnabledLabel(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}

// Fallback substitutes the placeholder dash for blank values.
func Fallback(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "—"
	}
	return value
}
