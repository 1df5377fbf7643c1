package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingReleaser struct {
	calls    atomic.Int64
	released int
	err      error
}

func (r *countingReleaser) ReleaseExpiredReservations(ctx context.Context) (int, error) {
	r.calls.Add(1)
	return r.released, r.err
}

func TestReservationSweeper_SweepsOnInterval(t *testing.T) {
	releaser := &countingReleaser{released: 2}
	sweeper := NewReservationSweeper(SweeperConfig{Interval: 10 * time.Millisecond}, releaser, zap.NewNop())

	require.NoError(t, sweeper.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return releaser.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
}

func TestReservationSweeper_StartIsIdempotent(t *testing.T) {
	releaser := &countingReleaser{}
	sweeper := NewReservationSweeper(SweeperConfig{Interval: time.Hour}, releaser, zap.NewNop())

	require.NoError(t, sweeper.Start(context.Background()))
	require.NoError(t, sweeper.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
}

func TestReservationSweeper_StopWithoutStart(t *testing.T) {
	sweeper := NewReservationSweeper(DefaultSweeperConfig(), &countingReleaser{}, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, sweeper.Stop(ctx))
}

func TestReservationSweeper_DefaultInterval(t *testing.T) {
	sweeper := NewReservationSweeper(SweeperConfig{}, &countingReleaser{}, zap.NewNop())
	assert.Equal(t, DefaultSweeperConfig().Interval, sweeper.config.Interval)
}
