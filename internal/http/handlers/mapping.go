package handlers

import (
	"sort"
	"strconv"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
	"github.com/smart-kyc/kyc-screener/internal/http/views"
	"github.com/smart-kyc/kyc-screener/internal/screening"
	"github.com/smart-kyc/kyc-screener/internal/session"
)

func buildResultsView(batch *screening.BatchResult, selected int, csrfToken string) viewmodels.ResultsViewData {
	data := viewmodels.ResultsViewData{CSRFToken: csrfToken}
	if batch == nil || len(batch.Results) == 0 {
		return data
	}
	data.HasBatch = true
	data.Rows = make([]viewmodels.CaseRowItem, 0, len(batch.Results))
	for i, sc := range batch.Results {
		data.Rows = append(data.Rows, viewmodels.CaseRowItem{
			Index:         i,
			Name:          sc.Applicant.Name,
			Email:         sc.Applicant.Email,
			Country:       sc.Applicant.Country,
			DecisionLabel: sc.Decision.Label(),
			BadgeClass:    views.DecisionBadgeClass(sc.Decision),
			MatchScore:    views.FormatMatchScore(sc.MatchResult.MatchScore),
			ArticleCount:  views.FormatArticleCount(sc.AdverseMediaCount),
			Selected:      i == selected,
		})
	}
	return data
}

func buildMetricsView(m screening.Metrics, csrfToken string) viewmodels.MetricsViewData {
	data := viewmodels.MetricsViewData{
		TotalScreened: m.TotalScreened,
		Approved:      m.Approved,
		Review:        m.Review,
		Blocked:       m.Blocked,
		ApprovedPct:   views.FormatDecisionPercent(m.Percentages.Approved),
		ReviewPct:     views.FormatDecisionPercent(m.Percentages.Review),
		BlockedPct:    views.FormatDecisionPercent(m.Percentages.Blocked),
		LastUpdated:   m.LastUpdated,
		CSRFToken:     csrfToken,
	}
	for _, entry := range m.ByRule {
		data.Rules = append(data.Rules, viewmodels.MetricsRuleItem{RuleID: entry.RuleID, Count: entry.Count})
	}
	return data
}

func buildAnalystView(sc screening.ScreeningCase, token, activeTab, csrfToken string) viewmodels.AnalystViewData {
	data := viewmodels.AnalystViewData{
		HasCase:          true,
		Token:            token,
		ActiveTab:        activeTab,
		Name:             sc.Applicant.Name,
		Email:            sc.Applicant.Email,
		Country:          sc.Applicant.Country,
		DecisionLabel:    sc.Decision.Label(),
		BadgeClass:       views.DecisionBadgeClass(sc.Decision),
		MatchScore:       views.FormatMatchScore(sc.MatchResult.MatchScore),
		MatchedEntity:    sc.MatchResult.MatchedEntity,
		ListType:         sc.MatchResult.ListType,
		ExplanationLines: sc.Explanation.Lines(),
		CSRFToken:        csrfToken,
	}
	for _, citation := range sc.Explanation.Citations {
		data.Citations = append(data.Citations, viewmodels.CitationItem{Label: citation.Label()})
	}
	if sc.Explanation.Confidence > 0 {
		data.Confidence = views.FormatConfidence(sc.Explanation.Confidence)
	}
	return data
}

func buildConsoleMain(ws *session.Workspace, csrfToken, alert string) viewmodels.ConsoleMainViewData {
	batch := ws.Batch()
	main := viewmodels.ConsoleMainViewData{
		Alert:   alert,
		Results: buildResultsView(batch, ws.SelectedIndex(), csrfToken),
	}
	if batch != nil {
		main.Metrics = buildMetricsView(batch.Metrics, csrfToken)
	} else {
		main.Metrics = buildMetricsView(screening.Metrics{}, csrfToken)
	}
	if sc, token, err := ws.Selected(); err == nil {
		main.Analyst = buildAnalystView(sc, token, "explanation", csrfToken)
	}
	return main
}

func buildAdverseMediaView(result screening.AdverseMediaResult, token string) viewmodels.AdverseMediaViewData {
	data := viewmodels.AdverseMediaViewData{
		Token:  token,
		Header: views.ArticlesFoundHeader(result.TotalHits),
	}
	if label := result.MaxSeverity.Label(); label != "" {
		data.SeverityLabel = label
		data.SeverityClass = views.SeverityBadgeClass(result.MaxSeverity)
	}
	for _, article := range result.Articles {
		item := viewmodels.ArticleItem{
			Topic:        article.Topic,
			Source:       article.Source,
			Date:         article.Date,
			Snippet:      article.Snippet,
			TriggerLines: article.TriggerLines,
		}
		if label := article.Severity.Label(); label != "" {
			item.SeverityLabel = label
			item.SeverityClass = views.SeverityBadgeClass(article.Severity)
		}
		data.Articles = append(data.Articles, item)
	}
	return data
}

func buildRulesView(cfg screening.RulesConfig) []viewmodels.RuleListItem {
	items := make([]viewmodels.RuleListItem, 0, len(cfg.Rules))
	for _, rule := range cfg.Rules {
		item := viewmodels.RuleListItem{
			ID:           rule.ID,
			Description:  rule.Description,
			OutcomeLabel: rule.Outcome.Label(),
			BadgeClass:   views.DecisionBadgeClass(rule.Outcome),
			Priority:     rule.Priority,
			Enabled:      rule.Enabled,
			EnabledLabel: views.EnabledLabel(rule.Enabled),
		}
		for _, cond := range rule.Conditions {
			item.ConditionText = append(item.ConditionText, views.ConditionSummary(cond))
		}
		items = append(items, item)
	}
	return items
}

// buildThresholdsView lists the engine thresholds sorted by name; the
// backend sends them as an unordered object.
func buildThresholdsView(cfg screening.RulesConfig) []viewmodels.ThresholdItem {
	if len(cfg.Thresholds) == 0 {
		return nil
	}
	names := make([]string, 0, len(cfg.Thresholds))
	for name := range cfg.Thresholds {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]viewmodels.ThresholdItem, 0, len(names))
	for _, name := range names {
		items = append(items, viewmodels.ThresholdItem{
			Name:  name,
			Value: strconv.FormatFloat(cfg.Thresholds[name], 'f', -1, 64),
		})
	}
	return items
}
