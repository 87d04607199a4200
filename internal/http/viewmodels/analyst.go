package viewmodels

// CitationItem is one evidence line in the explanation tab.
type CitationItem struct {
	Label string
}

// AnalystViewData drives the analyst panel. Token identifies the
// selection the panel was rendered for; fragment requests echo it back
// so stale lookups can be dropped.
type AnalystViewData struct {
	HasCase       bool
	Token         string
	ActiveTab     string
	Name          string
	Email         string
	Country       string
	DecisionLabel string
	BadgeClass    string
	MatchScore    string
	MatchedEntity string
	ListType      string

	ExplanationLines []string
	Citations        []CitationItem
	Confidence       string

	CSRFToken string
}

// ArticleItem is one adverse-media article.
type ArticleItem struct {
	Topic         string
	Source        string
	Date          string
	Snippet       string
	TriggerLines  []string
	SeverityLabel string
	SeverityClass string
}

// AdverseMediaViewData drives the adverse-media tab fragment.
type AdverseMediaViewData struct {
	Token         string
	Header        string
	SeverityLabel string
	SeverityClass string
	Articles      []ArticleItem
	Error         string
	Stale         bool
}

// ReportViewData drives one report area of the reports tab. EDD and
// SAR render independently so one may arrive before the other.
type ReportViewData struct {
	Token  string
	Kind   string
	Title  string
	Report string
	Error  string
	Stale  bool
}
