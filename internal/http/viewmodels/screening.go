package viewmodels

// CaseRowItem is one row of the results table.
type CaseRowItem struct {
	Index         int
	Name          string
	Email         string
	Country       string
	DecisionLabel string
	BadgeClass    string
	MatchScore    string
	ArticleCount  string
	Selected      bool
}

// ResultsViewData drives the results table fragment.
type ResultsViewData struct {
	HasBatch  bool
	Rows      []CaseRowItem
	CSRFToken string
}

// MetricsRuleItem is one rule-trigger tally line, in backend order.
type MetricsRuleItem struct {
	RuleID string
	Count  int
}

// MetricsViewData drives the metrics panel fragment. Missing backend
// fields arrive here already zeroed.
type MetricsViewData struct {
	TotalScreened int
	Approved      int
	Review        int
	Blocked       int
	ApprovedPct   string
	ReviewPct     string
	BlockedPct    string
	Rules         []MetricsRuleItem
	LastUpdated   string
	Error         string
	CSRFToken     string
}

// UploadViewData drives the upload intake panel.
type UploadViewData struct {
	Mode      string
	Busy      bool
	Error     string
	CSRFToken string
}

// ConsoleMainViewData is the console body: results, metrics, and the
// analyst panel. It is re-rendered as one unit after an upload.
type ConsoleMainViewData struct {
	Alert   string
	Results ResultsViewData
	Metrics MetricsViewData
	Analyst AnalystViewData
}

// ConsoleViewData is the full console page.
type ConsoleViewData struct {
	Layout LayoutData
	Upload UploadViewData
	Main   ConsoleMainViewData
}

// StatusViewData drives the backend status page.
type StatusViewData struct {
	Layout     LayoutData
	Reachable  bool
	Status     string
	Service    string
	Error      string
	BackendURL string
}
