package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/smart-kyc/kyc-screener/internal/http/viewmodels"
	"github.com/smart-kyc/kyc-screener/internal/screening"
)

// HandleRuleEditorOpen opens the editor modal with a fresh draft.
func (h *Handlers) HandleRuleEditorOpen(c *echo.Context) error {
	ws := h.Workspace(c)
	draft := ws.OpenDraft()
	return h.renderRuleEditor(c, draft, "")
}

// HandleRuleConditionAdd appends a blank condition, keeping the edits
// the operator already made to the form.
func (h *Handlers) HandleRuleConditionAdd(c *echo.Context) error {
	ws := h.Workspace(c)

	draft, err := ws.UpdateDraft(func(d *screening.RuleDraft) error {
		applyDraftForm(c, d)
		d.AddCondition()
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no rule draft is open")
	}
	return h.renderRuleEditor(c, draft, "")
}

// HandleRuleConditionRemove removes one condition by position. Removing
// the last remaining condition is refused and the modal stays open.
func (h *Handlers) HandleRuleConditionRemove(c *echo.Context) error {
	ws := h.Workspace(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid condition index")
	}

	var editErr error
	draft, err := ws.UpdateDraft(func(d *screening.RuleDraft) error {
		applyDraftForm(c, d)
		editErr = d.RemoveCondition(index)
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no rule draft is open")
	}
	if errors.Is(editErr, screening.ErrLastCondition) {
		return h.renderRuleEditor(c, draft, "A rule needs at least one condition.")
	}
	if editErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "condition index out of range")
	}
	return h.renderRuleEditor(c, draft, "")
}

// HandleRuleTeach submits the draft as one atomic request. On failure
// the modal stays open with the draft intact so the operator retries
// without re-entering data.
func (h *Handlers) HandleRuleTeach(c *echo.Context) error {
	ws := h.Workspace(c)

	draft, err := ws.UpdateDraft(func(d *screening.RuleDraft) error {
		applyDraftForm(c, d)
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no rule draft is open")
	}

	if err := draft.Validate(); err != nil {
		return h.renderRuleEditor(c, draft, err.Error())
	}
	if err := h.Backend.TeachRule(c.Request().Context(), draft); err != nil {
		c.Logger().Warn("teach rule failed", "rule_id", draft.RuleID, "error", err)
		return h.renderRuleEditor(c, draft, "Teaching the rule failed: "+err.Error())
	}

	ws.CloseDraft()
	setFlashToast(c, viewmodels.ToastViewData{
		Category:    "success",
		Title:       "Rule taught",
		Description: draft.RuleID,
	})
	if isHX(c) {
		setHXRedirect(c, "/")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// HandleRuleEditorCancel discards the draft and closes the modal.
func (h *Handlers) HandleRuleEditorCancel(c *echo.Context) error {
	ws := h.Workspace(c)
	ws.CloseDraft()
	return h.Views.RenderFragment(c, http.StatusOK, "modal_empty", nil)
}

func (h *Handlers) renderRuleEditor(c *echo.Context, draft screening.RuleDraft, errMsg string) error {
	return h.Views.RenderFragment(c, http.StatusOK, "rule_editor", viewmodels.RuleEditorViewData{
		Draft:     draft,
		Operators: screening.ConditionOperators(),
		Outcomes:  screening.KnownDecisions(),
		Error:     errMsg,
		CSRFToken: h.csrfToken(c),
	})
}

// applyDraftForm copies the submitted form into the draft. Conditions
// arrive as parallel field/op/value arrays in row order.
func applyDraftForm(c *echo.Context, d *screening.RuleDraft) {
	req := c.Request()
	if err := req.ParseForm(); err != nil {
		return
	}
	form := req.PostForm

	d.RuleID = strings.TrimSpace(form.Get("rule_id"))
	d.Description = strings.TrimSpace(form.Get("description"))
	if outcome := screening.ParseDecision(form.Get("outcome")); outcome.Known() {
		d.Outcome = outcome
	}
	if priority, err := strconv.Atoi(strings.TrimSpace(form.Get("priority"))); err == nil {
		d.Priority = priority
	}

	fields := form["field"]
	ops := form["op"]
	values := form["value"]
	if len(fields) == 0 {
		return
	}
	conditions := make([]screening.Condition, 0, len(fields))
	for i := range fields {
		cond := screening.Condition{Field: strings.TrimSpace(fields[i]), Op: screening.OpEquals}
		if i < len(ops) {
			if op := strings.TrimSpace(ops[i]); op != "" {
				cond.Op = op
			}
		}
		if i < len(values) {
			cond.Value = strings.TrimSpace(values[i])
		}
		conditions = append(conditions, cond)
	}
	d.Conditions = conditions
}
