package state

import "github.com/competeconnect/competition-api/internal/core/domain"

// FilterState holds the current search criteria. It persists across searches.
type FilterState struct {
	current domain.SearchFilters
}

// NewFilterState starts from the default filters.
func NewFilterState() FilterState {
	return FilterState{current: domain.DefaultFilters()}
}

// Get returns the current filters.
func (f *FilterState) Get() domain.SearchFilters {
	return f.current
}

// Set updates exactly one field. On error the state is unchanged.
func (f *FilterState) Set(name domain.FilterName, value string) (domain.SearchFilters, error) {
	next, err := f.current.With(name, value)
	if err != nil {
		return f.current, err
	}
	f.current = next
	return next, nil
}
