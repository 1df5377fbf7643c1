package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ReservationReleaser releases vehicle reservations whose hold has expired.
type ReservationReleaser interface {
	ReleaseExpiredReservations(ctx context.Context) (int, error)
}

// SweeperConfig holds configuration for the reservation sweeper
type SweeperConfig struct {
	// Interval is how often to sweep for expired reservations
	Interval time.Duration
}

// DefaultSweeperConfig returns default sweeper configuration
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval: 5 * time.Minute,
	}
}

// ReservationSweeper periodically releases expired vehicle reservations
// so held stock returns to the available pool without manual action.
type ReservationSweeper struct {
	config   SweeperConfig
	releaser ReservationReleaser
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewReservationSweeper creates a new reservation sweeper
func NewReservationSweeper(config SweeperConfig, releaser ReservationReleaser, logger *zap.Logger) *ReservationSweeper {
	if config.Interval <= 0 {
		config.Interval = DefaultSweeperConfig().Interval
	}
	return &ReservationSweeper{
		config:   config,
		releaser: releaser,
		logger:   logger,
	}
}

// Start starts the sweeper loop
func (s *ReservationSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Reservation sweeper started",
		zap.Duration("interval", s.config.Interval),
	)

	return nil
}

// Stop stops the sweeper and waits for the in-flight sweep to finish
func (s *ReservationSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Reservation sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ReservationSweeper) runLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
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

func (s *ReservationSweeper) sweep(ctx context.Context) {
	released, err := s.releaser.ReleaseExpiredReservations(ctx)
	if err != nil {
		s.logger.Error("Failed to release expired reservations", zap.Error(err))
		return
	}
	if released > 0 {
		s.logger.Info("Released expired reservations",
			zap.Int("count", released),
		)
	}
}
