package state

import "github.com/competeconnect/competition-api/internal/core/domain"

// Status is the mode of the result area.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
	StatusPopulated Status = "populated"
	StatusEmpty     Status = "empty"
	StatusFailed    Status = "failed"
)

// Affordance is what the result area renders for a given status.
type Affordance string

const (
	AffordancePrompt   Affordance = "prompt"
	AffordanceSkeleton Affordance = "skeleton"
	AffordanceGrid     Affordance = "grid"
	AffordanceEmpty    Affordance = "empty"
	AffordanceFailed   Affordance = "failed"
)

// View is the result view state. It only changes through Reduce.
type View struct {
	Status  Status
	Results []domain.Competition
	// Failure is a user-facing reason, set only in StatusFailed.
	Failure string
	// Pending is the sequence number of the search the view is waiting for.
	Pending uint64
	// Searched is true once a search was issued since the last reset.
	Searched bool
}

// InitialView is the state before any search.
func InitialView() View {
	return View{Status: StatusIdle, Results: []domain.Competition{}}
}

// Event drives a view transition.
type Event interface {
	viewEvent()
}

// SearchIssued starts a search tagged with Seq.
type SearchIssued struct{ Seq uint64 }

// SearchSucceeded completes the search tagged with Seq.
type SearchSucceeded struct {
	Seq     uint64
	Results []domain.Competition
}

// SearchFailed completes the search tagged with Seq with an error.
type SearchFailed struct {
	Seq    uint64
	Reason string
}

// Reset returns to idle: go home or sign out.
type Reset struct{}

func (SearchIssued) viewEvent()    {}
func (SearchSucceeded) viewEvent() {}
func (SearchFailed) viewEvent()    {}
func (Reset) viewEvent()           {}

// Accepts reports whether a completion tagged with seq would be applied.
// Only the latest issued search may complete, and only while searching.
func (v View) Accepts(seq uint64) bool {
	return v.Status == StatusSearching && seq != 0 && seq == v.Pending
}

// Reduce applies ev to v and returns the next view. Stale completions
// return v unchanged.
func Reduce(v View, ev Event) View {
	switch e := ev.(type) {
	case SearchIssued:
		return View{
			Status:   StatusSearching,
			Results:  []domain.Competition{},
			Pending:  e.Seq,
			Searched: true,
		}

	case SearchSucceeded:
		if !v.Accepts(e.Seq) {
			return v
		}
		results := make([]domain.Competition, len(e.Results))
		copy(results, e.Results)
		status := StatusPopulated
		if len(results) == 0 {
			status = StatusEmpty
		}
		return View{Status: status, Results: results, Searched: true}

	case SearchFailed:
		if !v.Accepts(e.Seq) {
			return v
		}
		return View{
			Status:   StatusFailed,
			Results:  []domain.Competition{},
			Failure:  e.Reason,
			Searched: true,
		}

	case Reset:
		return InitialView()
	}
	return v
}

// Affordance maps the status to what the view should render.
func (v View) Affordance() Affordance {
	switch v.Status {
	case StatusSearching:
		return AffordanceSkeleton
	case StatusPopulated:
		return AffordanceGrid
	case StatusEmpty:
		return AffordanceEmpty
	case StatusFailed:
		return AffordanceFailed
	default:
		return AffordancePrompt
	}
}
