package ports

import "context"

// CompetitionGenerator asks the generation service for a JSON array of
// competitions matching the fixed competition schema and returns the raw
// response text.
type CompetitionGenerator interface {
	GenerateCompetitions(ctx context.Context, prompt string) (string, error)
}
