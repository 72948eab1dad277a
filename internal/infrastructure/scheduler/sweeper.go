// Package scheduler runs the periodic housekeeping jobs of the API.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/api/metrics"
)

const DefaultSweepSpec = "@every 10m"

// WorkspaceSweeper is the part of the workspace service the sweeper drives.
type WorkspaceSweeper interface {
	Sweep(ctx context.Context) int
	Len() int
}

// Sweeper evicts idle workspaces on a cron schedule.
type Sweeper struct {
	cron   *cron.Cron
	spec   string
	target WorkspaceSweeper
	log    zerolog.Logger
}

func NewSweeper(spec string, target WorkspaceSweeper, log zerolog.Logger) *Sweeper {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	return &Sweeper{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:   spec,
		target: target,
		log:    log,
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule sweep %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("workspace sweeper started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("workspace sweeper stopped")
}

// RunOnce performs a single sweep and updates the workspace gauges.
func (s *Sweeper) RunOnce(ctx context.Context) {
	evicted := s.target.Sweep(ctx)
	remaining := s.target.Len()

	metrics.WorkspacesEvictedTotal.Add(float64(evicted))
	metrics.ActiveWorkspaces.Set(float64(remaining))

	if evicted > 0 {
		s.log.Info().Int("evicted", evicted).Int("remaining", remaining).Msg("idle workspaces evicted")
	}
}
