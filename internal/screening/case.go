package screening

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Citation type discriminators as emitted by the explanation service.
const (
	CitationRule         = "rule"
	CitationEntityMatch  = "sanctions_match"
	CitationAdverseMedia = "adverse_media"
)

// Applicant is the identity captured at ingestion time.
type Applicant struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Country      string `json:"country,omitempty"`
	DOB          string `json:"dob,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}

// MatchResult carries the identity-matcher outcome for a case. All
// fields are optional in the backend contract; zero values stand in for
// anything the matcher did not report.
type MatchResult struct {
	Matched       bool    `json:"matched,omitempty"`
	MatchScore    float64 `json:"match_score,omitempty"`
	MatchedEntity string  `json:"matched_entity,omitempty"`
	ListType      string  `json:"list_type,omitempty"`
	Source        string  `json:"source,omitempty"`
	Country       string  `json:"country,omitempty"`
}

// Citation is one evidence reference inside an explanation, tagged by
// its type discriminator. The remaining fields are populated per type:
// rule citations carry an id and description, entity matches carry the
// matched entity and score, statistics carry a count.
type Citation struct {
	Type        string  `json:"type"`
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description,omitempty"`
	Entity      string  `json:"entity,omitempty"`
	Score       float64 `json:"score,omitempty"`
	ListType    string  `json:"list_type,omitempty"`
	Source      string  `json:"source,omitempty"`
	Count       int     `json:"count,omitempty"`
}

// Label renders the citation the way the analyst panel lists it:
// the type followed by whichever detail the citation carries.
func (c Citation) Label() string {
	detail := c.Description
	if detail == "" {
		detail = c.Entity
	}
	if detail == "" && c.Count > 0 {
		detail = strconv.Itoa(c.Count)
	}
	if detail == "" {
		return c.Type
	}
	return c.Type + ": " + detail
}

// Explanation is the narrative attached to a case by the backend. The
// narrative is plain text with newline separators; it is rendered as
// text segments, never as markup.
type Explanation struct {
	Explanation string     `json:"explanation"`
	Citations   []Citation `json:"citations,omitempty"`
	Decision    string     `json:"decision,omitempty"`
	Confidence  float64    `json:"confidence,omitempty"`
	Timestamp   string     `json:"timestamp,omitempty"`
}

// Lines splits the narrative into displayable line fragments. Empty
// trailing fragments are kept so paragraph breaks survive rendering.
func (e Explanation) Lines() []string {
	if strings.TrimSpace(e.Explanation) == "" {
		return nil
	}
	return strings.Split(e.Explanation, "\n")
}

// TriggeredRule identifies the rule that produced the decision.
type TriggeredRule struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	Priority    int    `json:"priority,omitempty"`
}

// ScreeningCase is one applicant's screening outcome. Cases are
// replaced wholesale when a new batch arrives and are never merged
// field by field. Raw retains the exact backend payload so report
// drafting can resend the full case unmodified.
type ScreeningCase struct {
	Applicant         Applicant      `json:"applicant"`
	Decision          Decision       `json:"decision"`
	TriggeredRule     *TriggeredRule `json:"triggered_rule,omitempty"`
	MatchResult       MatchResult    `json:"match_result,omitempty"`
	AdverseMediaCount int            `json:"adverse_media_count,omitempty"`
	Explanation       Explanation    `json:"explanation,omitempty"`
	Timestamp         string         `json:"timestamp,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (sc *ScreeningCase) UnmarshalJSON(data []byte) error {
	type plain ScreeningCase
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*sc = ScreeningCase(p)
	sc.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original backend payload when one is held, so
// a round-tripped case stays byte-for-byte identical.
func (sc ScreeningCase) MarshalJSON() ([]byte, error) {
	if len(sc.Raw) > 0 {
		return sc.Raw, nil
	}
	type plain ScreeningCase
	return json.Marshal(plain(sc))
}

// BatchResult is one upload cycle's outcome: the ordered cases plus the
// metrics snapshot that accompanied them. Superseded wholesale by the
// next upload.
type BatchResult struct {
	Results []ScreeningCase `json:"results"`
	Metrics Metrics         `json:"metrics"`
}
