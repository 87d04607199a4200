package screening

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metrics is the aggregate screening snapshot computed by the backend.
// The console only formats it; missing fields render as zero.
type Metrics struct {
	TotalScreened int         `json:"total_screened"`
	Approved      int         `json:"approved"`
	Review        int         `json:"review"`
	Blocked       int         `json:"blocked"`
	Percentages   Percentages `json:"percentages"`
	ByRule        RuleCounts  `json:"by_rule"`
	LastUpdated   string      `json:"last_updated,omitempty"`
}

// Percentages are the per-decision shares of the screened total.
type Percentages struct {
	Approved float64 `json:"approved"`
	Review   float64 `json:"review"`
	Blocked  float64 `json:"blocked"`
}

// RuleCount is one rule-trigger tally.
type RuleCount struct {
	RuleID string
	Count  int
}

// RuleCounts preserves the insertion order of the backend's by_rule
// object. A plain map would shuffle the listing on every render, so the
// object keys are decoded in document order.
type RuleCounts []RuleCount

func (rc *RuleCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*rc = nil
		return nil
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("by_rule: expected object, got %v", tok)
	}

	var out RuleCounts
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("by_rule: expected key, got %v", keyTok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("by_rule[%s]: %w", key, err)
		}
		out = append(out, RuleCount{RuleID: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*rc = out
	return nil
}

func (rc RuleCounts) MarshalJSON() ([]byte, error) {
	if rc == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range rc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.RuleID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
