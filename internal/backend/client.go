// Package backend is the HTTP client for the screening service. All
// screening intelligence lives behind it; the console only relays
// requests and renders the JSON it returns.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smart-kyc/kyc-screener/internal/metrics"
	"github.com/smart-kyc/kyc-screener/internal/screening"
)

const maxBodySize = 8 << 20 // 8 MiB

// Client talks to the screening backend. Calls carry no retry logic;
// a failed call is reported once and the operator retries by repeating
// the action.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a screening backend client. A zero timeout leaves calls
// unbounded except by the caller's context.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend base URL %q is not absolute", baseURL)
	}
	if timeout < 0 {
		return nil, errors.New("backend timeout must not be negative")
	}

	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: timeout},
	}, nil
}

// RequestError is the single failure classification for backend calls.
// The console does not distinguish network errors from HTTP errors
// beyond what the message carries.
type RequestError struct {
	Operation string
	Status    int
	Message   string
	Err       error
}

func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString(e.Operation)
	b.WriteString(" request failed")
	if e.Status != 0 {
		fmt.Fprintf(&b, ": %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil && e.Status == 0 {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RequestError) Unwrap() error { return e.Err }

// Health is the backend liveness report.
type Health struct {
	Status       string `json:"status"`
	Service      string `json:"service,omitempty"`
	RulesLoaded  int    `json:"rules_loaded,omitempty"`
	WatchlistLen int    `json:"watchlist_entries,omitempty"`
}

func (c *Client) ensureClient() error {
	if c.BaseURL == "" {
		return errors.New("backend base URL is required")
	}
	if c.HTTP == nil {
		return errors.New("backend http client is not configured")
	}
	return nil
}

// Health reports whether the backend is reachable and serving.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.getJSON(ctx, "health", "/health", &out)
	return out, err
}

// UploadCSV submits a batch file and returns the screening outcome.
func (c *Client) UploadCSV(ctx context.Context, filename string, file io.Reader) (*screening.BatchResult, error) {
	return c.upload(ctx, "upload_csv", "/upload-csv", filename, file)
}

// UploadID submits a single identity document and returns the
// screening outcome in the same shape as a batch upload.
func (c *Client) UploadID(ctx context.Context, filename string, file io.Reader) (*screening.BatchResult, error) {
	return c.upload(ctx, "upload_id", "/upload-id", filename, file)
}

// Screen submits applicants directly, bypassing file ingestion.
func (c *Client) Screen(ctx context.Context, applicants []screening.Applicant) (*screening.BatchResult, error) {
	const op = "screen"
	payload := struct {
		Applicants []screening.Applicant `json:"applicants"`
	}{Applicants: applicants}

	var out screening.BatchResult
	if err := c.postJSON(ctx, op, "/screen", payload, &out); err != nil {
		return nil, err
	}
	metrics.CasesScreenedTotal.Add(float64(len(out.Results)))
	return &out, nil
}

// Metrics fetches the aggregate screening snapshot.
func (c *Client) Metrics(ctx context.Context) (screening.Metrics, error) {
	var out screening.Metrics
	err := c.getJSON(ctx, "metrics", "/metrics", &out)
	return out, err
}

// AdverseMedia looks up negative news coverage for an applicant name.
func (c *Client) AdverseMedia(ctx context.Context, name string) (screening.AdverseMediaResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return screening.AdverseMediaResult{}, errors.New("applicant name is required")
	}
	var out screening.AdverseMediaResult
	err := c.getJSON(ctx, "adverse_media", "/adverse-media/"+url.PathEscape(name), &out)
	return out, err
}

// DraftEDD asks the backend for an enhanced due diligence draft. The
// case is sent exactly as the backend originally returned it.
func (c *Client) DraftEDD(ctx context.Context, sc screening.ScreeningCase) (string, error) {
	return c.draftReport(ctx, "draft_edd", "/draft-edd", sc)
}

// DraftSAR asks the backend for a suspicious activity report draft.
func (c *Client) DraftSAR(ctx context.Context, sc screening.ScreeningCase) (string, error) {
	return c.draftReport(ctx, "draft_sar", "/draft-sar", sc)
}

func (c *Client) draftReport(ctx context.Context, op, path string, sc screening.ScreeningCase) (string, error) {
	var out struct {
		Report string `json:"report"`
	}
	if err := c.postJSON(ctx, op, path, sc, &out); err != nil {
		return "", err
	}
	return out.Report, nil
}

// TeachRule submits a new rule. Taught rules are always enabled; the
// editor exposes no control for it.
func (c *Client) TeachRule(ctx context.Context, draft screening.RuleDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	payload := struct {
		RuleID      string                `json:"rule_id"`
		Description string                `json:"description"`
		Outcome     screening.Decision    `json:"outcome"`
		Priority    int                   `json:"priority"`
		Conditions  []screening.Condition `json:"conditions"`
		Enabled     bool                  `json:"enabled"`
	}{
		RuleID:      draft.RuleID,
		Description: draft.Description,
		Outcome:     draft.Outcome,
		Priority:    draft.Priority,
		Conditions:  draft.Conditions,
		Enabled:     true,
	}
	if err := c.postJSON(ctx, "teach_rule", "/teach-rule", payload, nil); err != nil {
		return err
	}
	metrics.RulesTaughtTotal.Inc()
	return nil
}

// Rules fetches the backend's current rule configuration.
func (c *Client) Rules(ctx context.Context) (screening.RulesConfig, error) {
	var out screening.RulesConfig
	err := c.getJSON(ctx, "rules", "/rules", &out)
	return out, err
}

func (c *Client) upload(ctx context.Context, op, path, filename string, file io.Reader) (*screening.BatchResult, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = "upload"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	respBody, err := c.do(op, req)
	if err != nil {
		return nil, err
	}
	var out screening.BatchResult
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &RequestError{Operation: op, Message: "invalid response body", Err: err}
	}
	metrics.CasesScreenedTotal.Add(float64(len(out.Results)))
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	if err := c.ensureClient(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{Operation: op, Message: "invalid response body", Err: err}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	if err := c.ensureClient(); err != nil {
		return err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(op, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{Operation: op, Message: "invalid response body", Err: err}
	}
	return nil
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", "kyc-screener")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, &RequestError{Operation: op, Err: err}
	}
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	resp.Body.Close()
	if readErr != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, &RequestError{Operation: op, Err: readErr}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, &RequestError{
			Operation: op,
			Status:    resp.StatusCode,
			Message:   extractErrorMessage(body),
		}
	}
	metrics.BackendRequestsTotal.WithLabelValues(op, "ok").Inc()
	return body, nil
}

func extractErrorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Detail); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return ""
	}
	if strings.HasPrefix(msg, "<!DOCTYPE html") || strings.HasPrefix(msg, "<html") {
		return ""
	}
	msg = strings.Join(strings.Fields(msg), " ")
	const maxLen = 300
	if len(msg) > maxLen {
		msg = msg[:maxLen] + "…"
	}
	return msg
}
