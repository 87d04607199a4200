package screening

// Article is one adverse-media item returned by the backend scanner.
type Article struct {
	Topic        string   `json:"topic"`
	Source       string   `json:"source,omitempty"`
	Date         string   `json:"date,omitempty"`
	Snippet      string   `json:"snippet,omitempty"`
	TriggerLines []string `json:"trigger_lines,omitempty"`
	Severity     Severity `json:"severity,omitempty"`
}

// AdverseMediaResult is the per-entity lookup outcome. It is fetched
// lazily for the currently selected case and discarded on reselection.
type AdverseMediaResult struct {
	Entity      string    `json:"entity,omitempty"`
	TotalHits   int       `json:"total_hits"`
	MaxSeverity Severity  `json:"max_severity,omitempty"`
	Articles    []Article `json:"articles,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
}
