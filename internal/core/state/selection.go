package state

import "github.com/competeconnect/competition-api/internal/core/domain"

// Selection holds the competition open in the detail overlay, if any.
type Selection struct {
	current *domain.Competition
}

// Select replaces any current selection. The record need not belong to the
// current result batch.
func (s *Selection) Select(c domain.Competition) {
	s.current = &c
}

func (s *Selection) Clear() {
	s.current = nil
}

func (s *Selection) Current() (domain.Competition, bool) {
	if s.current == nil {
		return domain.Competition{}, false
	}
	return *s.current, true
}
