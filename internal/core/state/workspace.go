package state

import (
	"context"
	"sync"
	"time"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// Hero is the layout shown above the results.
type Hero string

const (
	HeroAuthForm   Hero = "auth_form"
	HeroSearchForm Hero = "search_form"
)

// Workspace bundles the state slices of one browser client. Each slice has
// its own transition rules; the workspace serialises access to them.
type Workspace struct {
	mu        sync.Mutex
	id        string
	session   *SessionStore
	filters   FilterState
	view      View
	selection Selection
	shell     Shell
	lastSeq   uint64
	lastSeen  time.Time

	// cancelRun stops the search running for runSeq, if any.
	cancelRun context.CancelFunc
	runSeq    uint64
}

// NewWorkspace returns a signed-out workspace with default filters and an
// idle view, last seen at now.
func NewWorkspace(id string, session *SessionStore, now time.Time) *Workspace {
	return &Workspace{
		id:       id,
		session:  session,
		filters:  NewFilterState(),
		view:     InitialView(),
		shell:    NewShell(),
		lastSeen: now,
	}
}

// ID returns the workspace id the client token carries.
func (w *Workspace) ID() string { return w.id }

// Session returns the workspace's session store.
func (w *Workspace) Session() *SessionStore { return w.session }

// Touch marks the workspace as used at now, deferring its idle sweep.
func (w *Workspace) Touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

// LastSeen returns the time of the last Touch.
func (w *Workspace) LastSeen() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Filters returns the current search criteria.
func (w *Workspace) Filters() domain.SearchFilters {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filters.Get()
}

func (w *Workspace) SetFilter(name domain.FilterName, value string) (domain.SearchFilters, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filters.Set(name, value)
}

// BeginSearch issues a new sequence number, clears the results and returns
// the filters the search runs with.
func (w *Workspace) BeginSearch() (uint64, domain.SearchFilters) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopRun()
	w.lastSeq++
	w.view = Reduce(w.view, SearchIssued{Seq: w.lastSeq})
	return w.lastSeq, w.filters.Get()
}

// CompleteSearch applies a successful completion. It reports false when the
// search was superseded and the results were dropped.
func (w *Workspace) CompleteSearch(seq uint64, results []domain.Competition) bool {
	return w.apply(seq, SearchSucceeded{Seq: seq, Results: results})
}

// FailSearch applies a failed completion, with the same staleness rule.
func (w *Workspace) FailSearch(seq uint64, reason string) bool {
	return w.apply(seq, SearchFailed{Seq: seq, Reason: reason})
}

func (w *Workspace) apply(seq uint64, ev Event) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.view.Accepts(seq) {
		return false
	}
	w.view = Reduce(w.view, ev)
	if w.runSeq == seq {
		w.cancelRun, w.runSeq = nil, 0
	}
	return true
}

// TrackRun registers cancel as the way to stop the search for seq. A newer
// search or GoHome calls it. When seq is already superseded, cancel is
// called at once and TrackRun reports false.
func (w *Workspace) TrackRun(seq uint64, cancel context.CancelFunc) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.view.Accepts(seq) {
		cancel()
		return false
	}
	w.stopRun()
	w.cancelRun, w.runSeq = cancel, seq
	return true
}

func (w *Workspace) stopRun() {
	if w.cancelRun != nil {
		w.cancelRun()
	}
	w.cancelRun, w.runSeq = nil, 0
}

// GoHome returns the view to idle and drops transient UI state. Any search
// still in flight is invalidated.
func (w *Workspace) GoHome() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopRun()
	w.view = Reduce(w.view, Reset{})
	w.selection.Clear()
	w.shell.CloseOverlays()
}

// View returns a copy of the result view.
func (w *Workspace) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view
}

// Select opens the detail view for c.
func (w *Workspace) Select(c domain.Competition) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection.Select(c)
}

// ClearSelection closes the detail view.
func (w *Workspace) ClearSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection.Clear()
}

func (w *Workspace) Selected() (domain.Competition, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Current()
}

// UpdateShell applies fn to the shell flags and returns the result.
func (w *Workspace) UpdateShell(fn func(*Shell)) Shell {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.shell)
	return w.shell
}

// Snapshot is a consistent, serialisable copy of the workspace.
type Snapshot struct {
	ID        string               `json:"id"`
	User      *domain.User         `json:"user"`
	Hero      Hero                 `json:"hero"`
	Filters   domain.SearchFilters `json:"filters"`
	View      ViewSnapshot         `json:"view"`
	Selection *domain.Competition  `json:"selection"`
	Shell     Shell                `json:"shell"`
}

type ViewSnapshot struct {
	Status         Status               `json:"status"`
	Affordance     Affordance           `json:"affordance"`
	Results        []domain.Competition `json:"results"`
	Failure        string               `json:"failure,omitempty"`
	ShowDisclaimer bool                 `json:"showDisclaimer"`
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		ID:      w.id,
		Hero:    HeroAuthForm,
		Filters: w.filters.Get(),
		View: ViewSnapshot{
			Status:         w.view.Status,
			Affordance:     w.view.Affordance(),
			Results:        append([]domain.Competition{}, w.view.Results...),
			Failure:        w.view.Failure,
			ShowDisclaimer: w.view.Searched,
		},
		Shell: w.shell,
	}
	if u, ok := w.session.Current(); ok {
		snap.User = &u
		snap.Hero = HeroSearchForm
	}
	if c, ok := w.selection.Current(); ok {
		snap.Selection = &c
	}
	return snap
}
