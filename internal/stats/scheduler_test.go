package stats_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/mocks"
	"github.com/ukpabik/mid-diff/internal/stats"
)

func TestNewScheduler_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mocks.NewMockAggregator(ctrl)

	scheduler, err := stats.NewScheduler(agg, "not a cron spec")
	require.Error(t, err)
	assert.Nil(t, scheduler)
}

func TestScheduler_FiresRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mocks.NewMockAggregator(ctrl)

	var fired atomic.Int32
	agg.EXPECT().Rebuild(gomock.Any()).DoAndReturn(
		func(interface{}) (*stats.RebuildResult, error) {
			fired.Add(1)
			return &stats.RebuildResult{}, nil
		}).MinTimes(1)

	// Every-second spec so the test observes a tick quickly
	scheduler, err := stats.NewScheduler(agg, "* * * * * *")
	require.NoError(t, err)

	scheduler.Start()
	defer scheduler.Stop()

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_ToleratesRebuildInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	agg := mocks.NewMockAggregator(ctrl)

	var fired atomic.Int32
	agg.EXPECT().Rebuild(gomock.Any()).DoAndReturn(
		func(interface{}) (*stats.RebuildResult, error) {
			fired.Add(1)
			return nil, domain.ErrRebuildInProgress
		}).MinTimes(1)

	scheduler, err := stats.NewScheduler(agg, "* * * * * *")
	require.NoError(t, err)

	scheduler.Start()
	defer scheduler.Stop()

	// A skipped tick is logged, never fatal; the schedule keeps running
	require.Eventually(t, func() bool {
		return fired.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)
}
