package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/competeconnect/competition-api/internal/core/domain"
	"github.com/competeconnect/competition-api/internal/core/ports"
)

const defaultGenerationTimeout = 45 * time.Second

// FinderOptions tunes outbound calls to the generation service.
type FinderOptions struct {
	Timeout time.Duration
	// RPS and Burst configure the process-wide token bucket. RPS <= 0
	// disables throttling.
	RPS   float64
	Burst int
}

// Finder is the competition query client. It turns filters into a prompt,
// calls the generator and returns a sanitised batch.
type Finder struct {
	gen       ports.CompetitionGenerator
	limiter   *rate.Limiter
	timeout   time.Duration
	sanitizer *Sanitizer
	log       zerolog.Logger
}

// NewFinder returns a Finder. A nil generator means the credential was not
// configured: the Finder still works, but every search fails with
// domain.ErrMissingCredential.
func NewFinder(gen ports.CompetitionGenerator, opts FinderOptions, log zerolog.Logger) *Finder {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultGenerationTimeout
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	return &Finder{
		gen:       gen,
		limiter:   rate.NewLimiter(limit, opts.Burst),
		timeout:   opts.Timeout,
		sanitizer: NewSanitizer(),
		log:       log,
	}
}

// Search returns the generated competitions for filters, or the reason the
// generation failed. The batch may hold any number of records, zero included.
func (f *Finder) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Competition, error) {
	if f.gen == nil {
		return nil, domain.ErrMissingCredential
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for generation slot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	text, err := f.gen.GenerateCompetitions(ctx, BuildPrompt(filters))
	if err != nil {
		return nil, err
	}

	raw, err := parseCompetitions(text)
	if err != nil {
		return nil, err
	}
	return f.sanitizer.Batch(raw), nil
}

// SearchOrEmpty collapses every failure into an empty batch. The failure is
// only visible in the log.
func (f *Finder) SearchOrEmpty(ctx context.Context, filters domain.SearchFilters) []domain.Competition {
	comps, err := f.Search(ctx, filters)
	if err != nil {
		f.log.Error().Err(err).
			Str("country", filters.Country).
			Str("state", filters.State).
			Str("field", string(filters.Field)).
			Msg("error fetching competitions")
		return []domain.Competition{}
	}
	return comps
}

// BuildPrompt renders the natural-language request for filters. Blank
// values fall back to Global, General and Any.
func BuildPrompt(filters domain.SearchFilters) string {
	country := strings.TrimSpace(filters.Country)
	if country == "" {
		country = "Global"
	}
	location := country
	if st := strings.TrimSpace(filters.State); st != "" {
		location = st + ", " + country
	}
	field := string(filters.Field)
	if field == "" {
		field = "General"
	}
	level := string(filters.Level)
	if level == "" {
		level = "Any"
	}

	var b strings.Builder
	b.WriteString("Generate a list of 8 to 12 realistic and popular student competitions based on the following criteria:\n")
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Field of Interest: %s\n", field)
	fmt.Fprintf(&b, "Education Level: %s\n\n", level)
	b.WriteString("The competitions should be real or highly realistic representations of typical competitions in this region.\n")
	b.WriteString("Include a mix of local, state-level, and national/international competitions relevant to the location.\n\n")
	b.WriteString("For the 'imageKeyword', provide a single noun that represents the visual theme (e.g., 'robot', 'code', 'paint', 'business', 'microscope').\n")
	return b.String()
}

// parseCompetitions decodes the generator output. An empty response is an
// empty batch; anything that is not a JSON array of objects is malformed.
func parseCompetitions(text string) ([]domain.Competition, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return []domain.Competition{}, nil
	}

	var out []domain.Competition
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if out == nil {
		out = []domain.Competition{}
	}
	return out, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
