package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RentalFacade exposes the subset of application functionality required by
// the sweeper.
type RentalFacade interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Sweeper periodically evicts expired workspaces and stale handoff records.
type Sweeper struct {
	facade   RentalFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSweeper constructs the expiry sweeper.
func NewSweeper(facade RentalFacade, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.facade.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("expired session state evicted", slog.Int("removed", removed))
	}
}
