package state

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

func newTestWorkspace() *Workspace {
	session := NewSessionStore(newMemoryStorage(), "ws-1", zerolog.Nop())
	return NewWorkspace("ws-1", session, time.Unix(0, 0))
}

func TestWorkspace_SearchLifecycle(t *testing.T) {
	w := newTestWorkspace()
	_, _ = w.SetFilter(domain.FilterState, "Maharashtra")

	seq, filters := w.BeginSearch()
	if filters.State != "Maharashtra" {
		t.Fatalf("search should run with current filters: %+v", filters)
	}
	if w.View().Status != StatusSearching {
		t.Fatalf("expected searching")
	}
	if !w.CompleteSearch(seq, comps("A", "B")) {
		t.Fatalf("completion should apply")
	}
	if w.View().Status != StatusPopulated {
		t.Fatalf("expected populated")
	}
	if got := w.Filters(); got.State != "Maharashtra" {
		t.Fatalf("filters must persist across searches: %+v", got)
	}
}

func TestWorkspace_OverlappingSearchesLatestIssuedWins(t *testing.T) {
	w := newTestWorkspace()

	first, _ := w.BeginSearch()
	_, _ = w.SetFilter(domain.FilterField, "Robotics")
	second, filters := w.BeginSearch()
	if filters.Field != domain.FieldRobotics {
		t.Fatalf("second search should use updated filters")
	}

	if !w.CompleteSearch(second, comps("Robo League")) {
		t.Fatalf("latest search should apply")
	}
	if w.FailSearch(first, "late failure") {
		t.Fatalf("superseded search must be dropped")
	}
	v := w.View()
	if v.Status != StatusPopulated || v.Results[0].Name != "Robo League" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestWorkspace_TrackRunCancelsSupersededSearch(t *testing.T) {
	w := newTestWorkspace()

	first, _ := w.BeginSearch()
	ctx1, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	if !w.TrackRun(first, cancel1) {
		t.Fatalf("pending search should be tracked")
	}

	second, _ := w.BeginSearch()
	if ctx1.Err() == nil {
		t.Fatalf("a newer search should cancel the running one")
	}

	// Tracking a superseded search cancels it straight away.
	late, cancelLate := context.WithCancel(context.Background())
	defer cancelLate()
	if w.TrackRun(first, cancelLate) {
		t.Fatalf("superseded search must not be tracked")
	}
	if late.Err() == nil {
		t.Fatalf("superseded search should be cancelled at once")
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	_ = w.TrackRun(second, cancel2)
	w.GoHome()
	if ctx2.Err() == nil {
		t.Fatalf("go home should cancel the running search")
	}
}

func TestWorkspace_CompletedRunIsNotCancelledLater(t *testing.T) {
	w := newTestWorkspace()

	seq, _ := w.BeginSearch()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = w.TrackRun(seq, cancel)
	if !w.CompleteSearch(seq, comps("A")) {
		t.Fatalf("completion should apply")
	}

	_, _ = w.BeginSearch()
	if ctx.Err() != nil {
		t.Fatalf("a finished search should be forgotten once it completes")
	}
}

func TestWorkspace_GoHomeResetsTransientState(t *testing.T) {
	w := newTestWorkspace()
	seq, _ := w.BeginSearch()
	w.Select(domain.Competition{ID: "x"})
	w.UpdateShell(func(s *Shell) {
		s.SidePanelOpen = true
		s.AuthModalOpen = true
		s.ToggleTheme()
	})

	w.GoHome()

	if w.CompleteSearch(seq, comps("late")) {
		t.Fatalf("in-flight search must be invalidated by go home")
	}
	snap := w.Snapshot()
	if snap.View.Status != StatusIdle || snap.View.ShowDisclaimer {
		t.Fatalf("expected idle view, got %+v", snap.View)
	}
	if snap.Selection != nil {
		t.Fatalf("selection should be cleared")
	}
	if snap.Shell.SidePanelOpen || snap.Shell.AuthModalOpen {
		t.Fatalf("overlays should be closed")
	}
	if snap.Shell.Theme != ThemeDark {
		t.Fatalf("theme should survive go home")
	}
}

func TestWorkspace_SelectionReplaces(t *testing.T) {
	w := newTestWorkspace()

	w.Select(domain.Competition{ID: "a", Name: "First"})
	w.Select(domain.Competition{ID: "b", Name: "Second"})
	c, ok := w.Selected()
	if !ok || c.ID != "b" {
		t.Fatalf("expected second selection, got %+v", c)
	}

	w.ClearSelection()
	if _, ok := w.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestWorkspace_ShellFlagsAreIndependent(t *testing.T) {
	w := newTestWorkspace()

	w.UpdateShell(func(s *Shell) { s.AuthModalOpen = true })
	got := w.UpdateShell(func(s *Shell) { s.SidePanelOpen = true })

	if !got.AuthModalOpen || !got.SidePanelOpen {
		t.Fatalf("opening the panel must not close the modal: %+v", got)
	}
	if got.Theme != ThemeLight {
		t.Fatalf("default theme should be light")
	}
}

func TestWorkspace_SnapshotHeroFollowsSession(t *testing.T) {
	w := newTestWorkspace()
	if w.Snapshot().Hero != HeroAuthForm {
		t.Fatalf("guest should see the auth form")
	}

	_ = w.Session().SignIn(context.Background(), domain.User{ID: "u", Name: "Asha", Role: domain.RoleCandidate})
	snap := w.Snapshot()
	if snap.Hero != HeroSearchForm || snap.User == nil || snap.User.Name != "Asha" {
		t.Fatalf("signed-in user should see the search form: %+v", snap)
	}
}
