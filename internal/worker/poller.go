// Package worker runs the schedule poller, the only background activity in
// the system. Window boundaries fire no event, so the derived DND state has
// to be recomputed on a timer to stay current.
package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/urbanshade/notify-center/internal/service/dnd"
)

//go:generate mockgen -source=poller.go -destination=../mocks/worker/mock.go -package=mocks

type dndService interface {
	ScheduleEnabled() bool
	Refresh(ctx context.Context, strategy retry.Strategy) (dnd.State, bool, error)
}

// Poller re-derives the DND state once per interval while a schedule is
// enabled. With no schedule configured the tick becomes a no-op; the ticker
// itself keeps running.
type Poller struct {
	dnd      dndService
	interval time.Duration
}

// NewPoller creates a poller. A non-positive interval defaults to a minute.
func NewPoller(d dndService, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}

	return &Poller{dnd: d, interval: interval}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", p.interval).Msg("schedule poller started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("schedule poller stopped")
			return
		case <-ticker.C:
			if !p.dnd.ScheduleEnabled() {
				continue
			}

			state, changed, err := p.dnd.Refresh(ctx, strategy)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to refresh dnd state")
				continue
			}

			if changed {
				zlog.Logger.Info().Bool("effective", state.Effective).Msg("dnd window boundary crossed")
			}
		}
	}
}
