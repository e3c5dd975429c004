package auth

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper periodically purges expired sessions from a MemorySessionStore.
type Sweeper struct {
	cron *cron.Cron
}

// NewSweeper schedules store.Sweep on spec, a cron expression or descriptor
// such as "@every 10m".
func NewSweeper(store *MemorySessionStore, spec string, logger *zap.Logger) (*Sweeper, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if removed := store.Sweep(); removed > 0 {
			logger.Debug("expired sessions purged", zap.Int("count", removed))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", spec, err)
	}
	return &Sweeper{cron: c}, nil
}

// Start runs the schedule in its own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep, or ctx, to finish.
func (s *Sweeper) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
