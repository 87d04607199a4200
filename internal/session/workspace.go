// Package session holds the per-operator workspace: the current batch,
// the case selection, and the rule draft under construction. State is
// in memory only and is reset by the actions that replace it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smart-kyc/kyc-screener/internal/screening"
)

// ErrNoSelection is returned when an operation needs a selected case
// and none is selected.
var ErrNoSelection = errors.New("no case selected")

// ErrUploadInFlight is returned when a second upload is submitted while
// one is already running. Uploads are one at a time, without queueing.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// Workspace is one operator's screening state. A selection change
// issues a fresh generation token; responses fetched under an older
// token are discarded so a slow lookup cannot be attributed to a
// different case.
type Workspace struct {
	mu sync.Mutex

	batch      *screening.BatchResult
	selected   int
	generation string

	draft *screening.RuleDraft

	uploading bool
	lastSeen  time.Time
}

func newWorkspace() *Workspace {
	return &Workspace{
		selected:   -1,
		generation: uuid.NewString(),
		lastSeen:   time.Now(),
	}
}

func (w *Workspace) touch() { w.lastSeen = time.Now() }

// SetBatch replaces the whole result set. The previous batch, metrics
// and selection are discarded, never merged.
func (w *Workspace) SetBatch(batch *screening.BatchResult) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.batch = batch
	w.selected = -1
	w.generation = uuid.NewString()
}

// Batch returns the current batch, or nil before the first upload.
func (w *Workspace) Batch() *screening.BatchResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	return w.batch
}

// UpdateMetrics replaces the metrics snapshot without touching the
// result rows or the selection.
func (w *Workspace) UpdateMetrics(m screening.Metrics) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.batch == nil {
		w.batch = &screening.BatchResult{}
	}
	w.batch.Metrics = m
}

// Select marks the case at index as the analyst panel's subject and
// returns it along with the new generation token.
func (w *Workspace) Select(index int) (screening.ScreeningCase, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.batch == nil || index < 0 || index >= len(w.batch.Results) {
		return screening.ScreeningCase{}, "", errors.New("case index out of range")
	}
	w.selected = index
	w.generation = uuid.NewString()
	return w.batch.Results[index], w.generation, nil
}

// ClearSelection drops the current selection and fences out any
// responses still in flight for it.
func (w *Workspace) ClearSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.selected = -1
	w.generation = uuid.NewString()
}

// Selected returns the currently selected case and the generation token
// it was selected under.
func (w *Workspace) Selected() (screening.ScreeningCase, string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.batch == nil || w.selected < 0 || w.selected >= len(w.batch.Results) {
		return screening.ScreeningCase{}, "", ErrNoSelection
	}
	return w.batch.Results[w.selected], w.generation, nil
}

// SelectedIndex reports the selected row position, or -1.
func (w *Workspace) SelectedIndex() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.selected
}

// CurrentGeneration reports whether token still identifies the current
// selection.
func (w *Workspace) CurrentGeneration(token string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return token != "" && token == w.generation
}

// BeginUpload claims the single upload slot. Callers that get
// ErrUploadInFlight must not submit.
func (w *Workspace) BeginUpload() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.uploading {
		return ErrUploadInFlight
	}
	w.uploading = true
	return nil
}

// EndUpload releases the upload slot.
func (w *Workspace) EndUpload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.uploading = false
}

// Uploading reports whether an upload is in flight.
func (w *Workspace) Uploading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.uploading
}

// OpenDraft starts a fresh rule draft, replacing any abandoned one.
func (w *Workspace) OpenDraft() screening.RuleDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	d := screening.NewRuleDraft()
	w.draft = &d
	return d
}

// Draft returns a copy of the open draft.
func (w *Workspace) Draft() (screening.RuleDraft, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.draft == nil {
		return screening.RuleDraft{}, false
	}
	return copyDraft(*w.draft), true
}

// UpdateDraft applies an edit to the open draft and returns the result.
// The edit sees the draft by pointer and runs under the workspace lock.
func (w *Workspace) UpdateDraft(edit func(*screening.RuleDraft) error) (screening.RuleDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	if w.draft == nil {
		return screening.RuleDraft{}, errors.New("no rule draft is open")
	}
	if err := edit(w.draft); err != nil {
		return copyDraft(*w.draft), err
	}
	return copyDraft(*w.draft), nil
}

// CloseDraft discards the open draft.
func (w *Workspace) CloseDraft() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.touch()

	w.draft = nil
}

func copyDraft(d screening.RuleDraft) screening.RuleDraft {
	d.Conditions = append([]screening.Condition(nil), d.Conditions...)
	return d
}
