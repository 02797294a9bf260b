package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type expirer interface {
	ExpireStalePending(ctx context.Context, now time.Time) (int, error)
}

// Sweeper periodically force-returns pending checkouts that outlived their
// TTL. It stands in for an external scheduler: each tick walks the stale
// candidates and expires them one by one.
type Sweeper struct {
	svc      expirer
	interval time.Duration
	log      *zap.Logger
}

func NewSweeper(svc expirer, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		svc:      svc,
		interval: interval,
		log:      log.Named("sweeper"),
	}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			expired, err := s.svc.ExpireStalePending(ctx, time.Now().UTC())
			if err != nil {
				s.log.Error("sweep", zap.Error(err))
				continue
			}
			if expired > 0 {
				s.log.Info("sweep expired stale reservations", zap.Int("count", expired))
			}
		}
	}
}
