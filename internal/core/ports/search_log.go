package ports

import (
	"context"
	"time"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// SearchOutcome is how a search ended from the view's point of view.
type SearchOutcome string

const (
	OutcomePopulated SearchOutcome = "populated"
	OutcomeEmpty     SearchOutcome = "empty"
	OutcomeFailed    SearchOutcome = "failed"
	// OutcomeStale means a newer search or a reset superseded this one.
	OutcomeStale SearchOutcome = "stale"
)

// SearchRecord is one entry of the search audit trail.
type SearchRecord struct {
	WorkspaceID string
	UserID      string
	Seq         uint64
	Filters     domain.SearchFilters
	Outcome     SearchOutcome
	Count       int
	Reason      string
	IssuedAt    time.Time
	Duration    time.Duration
}

// SearchLog persists the search audit trail.
type SearchLog interface {
	Record(ctx context.Context, rec SearchRecord) error
}
