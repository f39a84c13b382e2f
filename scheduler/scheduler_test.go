package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/dashboard"
	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

type fakeRefresher struct {
	calls atomic.Int32
	dash  dashboard.Dashboard
	err   error
	block chan struct{}
}

func (f *fakeRefresher) RefreshDashboard(ctx context.Context, _, _ int) (dashboard.Dashboard, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return dashboard.Dashboard{}, ctx.Err()
		}
	}
	return f.dash, f.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, logger.Initialize(logger.Config{Level: logger.DEBUG, Output: &buf}))
	return &buf
}

func TestStartScheduler_TicksUntilCancelled(t *testing.T) {
	captureLogs(t)
	r := &fakeRefresher{}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartScheduler(ctx, r, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestStartScheduler_SlowFirstRefreshDoesNotBlockCaller(t *testing.T) {
	captureLogs(t)
	r := &fakeRefresher{block: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())

	returned := make(chan (<-chan struct{}), 1)
	go func() { returned <- StartScheduler(ctx, r, time.Hour) }()

	var done <-chan struct{}
	select {
	case done = <-returned:
	case <-time.After(time.Second):
		t.Fatal("StartScheduler blocked on the first refresh")
	}
	assert.Eventually(t, func() bool { return r.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestStartScheduler_Disabled(t *testing.T) {
	captureLogs(t)
	r := &fakeRefresher{}

	done := StartScheduler(context.Background(), r, 0)
	_, open := <-done
	assert.False(t, open)
	assert.Zero(t, r.calls.Load())
}

func TestRefreshDashboard_LogsOverCapacity(t *testing.T) {
	buf := captureLogs(t)
	r := &fakeRefresher{dash: dashboard.Dashboard{
		Capacity: reporting.CapacityOverview{Cards: []reporting.CapacityCard{
			{System: models.SystemCRM, Total: 2, Occupied: 3, Available: -1},
		}},
	}}

	RefreshDashboard(context.Background(), r)
	assert.Contains(t, buf.String(), "License capacity exceeded")
	assert.Contains(t, buf.String(), "system=CRM")
}

func TestRefreshDashboard_LogsFailure(t *testing.T) {
	buf := captureLogs(t)
	RefreshDashboard(context.Background(), &fakeRefresher{err: errors.New("upstream down")})
	assert.Contains(t, buf.String(), "Scheduled dashboard refresh failed")
}
