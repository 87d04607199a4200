package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newUploadRequest(t *testing.T, h *Handlers, wsID, mode string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("mode", mode); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	part, err := writer.CreateFormFile("file", "applicants.csv")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	io.WriteString(part, "name,email\nJane Doe,jane@example.com\n")
	writer.Close()

	req := newSessionRequest(t, h, wsID, http.MethodPost, "/upload", nil)
	req.Body = io.NopCloser(&body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleUploadReplacesBatch(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-csv" {
			t.Errorf("backend path = %q", r.URL.Path)
		}
		io.WriteString(w, `{
			"results": [{"applicant": {"name": "Jane Doe"}, "decision": "REVIEW", "match_result": {"match_score": 72}, "adverse_media_count": 1}],
			"metrics": {"total_screened": 1, "review": 1, "percentages": {"review": 100}}
		}`)
	})
	ws, wsID := h.Workspaces.Workspace("")
	e := testEcho(h)

	rec := serve(t, e, newUploadRequest(t, h, wsID, "batch"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Jane Doe") {
		t.Fatalf("response missing applicant row: %q", body)
	}
	if !strings.Contains(body, "Review") {
		t.Fatalf("response missing decision badge: %q", body)
	}
	if !strings.Contains(body, "72%") {
		t.Fatalf("response missing match score: %q", body)
	}
	if !strings.Contains(body, "1 article(s)") {
		t.Fatalf("response missing adverse media count: %q", body)
	}

	batch := ws.Batch()
	if batch == nil || len(batch.Results) != 1 {
		t.Fatalf("workspace batch not replaced: %+v", batch)
	}
}

func TestHandleUploadDocumentModeUsesIDEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-id" {
			t.Errorf("backend path = %q, want /upload-id", r.URL.Path)
		}
		io.WriteString(w, `{"results": [], "metrics": {}}`)
	})
	_, wsID := h.Workspaces.Workspace("")
	e := testEcho(h)

	rec := serve(t, e, newUploadRequest(t, h, wsID, "document"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleUploadRefusesConcurrentSubmission(t *testing.T) {
	t.Parallel()

	var backendCalls atomic.Int64
	h := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		backendCalls.Add(1)
		io.WriteString(w, `{"results": [], "metrics": {}}`)
	})
	ws, wsID := h.Workspaces.Workspace("")
	e := testEcho(h)

	if err := ws.BeginUpload(); err != nil {
		t.Fatalf("BeginUpload() error = %v", err)
	}
	defer ws.EndUpload()

	rec := serve(t, e, newUploadRequest(t, h, wsID, "batch"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already in progress") {
		t.Fatalf("response missing busy alert: %q", rec.Body.String())
	}
	if backendCalls.Load() != 0 {
		t.Fatalf("backend called %d times during in-flight upload", backendCalls.Load())
	}
}

func TestHandleUploadBackendFailureShowsAlert(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"detail": "ingestion exploded"}`)
	})
	ws, wsID := h.Workspaces.Workspace("")
	e := testEcho(h)

	rec := serve(t, e, newUploadRequest(t, h, wsID, "batch"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Screening failed") {
		t.Fatalf("response missing failure alert: %q", rec.Body.String())
	}
	if ws.Batch() != nil {
		t.Fatalf("failed upload replaced the batch")
	}
	if ws.Uploading() {
		t.Fatalf("upload slot not released after failure")
	}
}

func TestHandleUploadWithoutFile(t *testing.T) {
	t.Parallel()

	h := newTestHandlers(t, nil)
	_, wsID := h.Workspaces.Workspace("")
	e := testEcho(h)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("mode", "batch")
	writer.Close()

	req := newSessionRequest(t, h, wsID, http.MethodPost, "/upload", nil)
	req.Body = io.NopCloser(&body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), "Choose a file") {
		t.Fatalf("response missing file prompt: %q", rec.Body.String())
	}
}
