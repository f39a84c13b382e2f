package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) FetchLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.License), args.Error(1)
}

func (m *mockReader) FetchTickets(ctx context.Context) ([]models.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockReader) FetchAnalytics(ctx context.Context, system models.System) (models.SystemAnalytics, error) {
	args := m.Called(ctx, system)
	return args.Get(0).(models.SystemAnalytics), args.Error(1)
}

func TestCachedAnalytics_HitsWithinTTL(t *testing.T) {
	reader := &mockReader{}
	want := models.SystemAnalytics{Success: true, Trend: []models.MonthCount{{Month: "2024-01", Count: 2}}}
	reader.On("FetchAnalytics", mock.Anything, models.SystemLSQ).Return(want, nil).Once()

	cached := NewCachedAnalytics(reader, 4, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := cached.FetchAnalytics(ctx, models.SystemLSQ)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	reader.AssertExpectations(t)
}

func TestCachedAnalytics_ErrorsAreNotCached(t *testing.T) {
	reader := &mockReader{}
	reader.On("FetchAnalytics", mock.Anything, models.SystemDMS).
		Return(models.SystemAnalytics{}, errors.New("boom")).Once()
	reader.On("FetchAnalytics", mock.Anything, models.SystemDMS).
		Return(models.SystemAnalytics{Success: true}, nil).Once()

	cached := NewCachedAnalytics(reader, 4, time.Minute)
	_, err := cached.FetchAnalytics(context.Background(), models.SystemDMS)
	require.Error(t, err)

	got, err := cached.FetchAnalytics(context.Background(), models.SystemDMS)
	require.NoError(t, err)
	assert.True(t, got.Success)
	reader.AssertExpectations(t)
}

func TestCachedAnalytics_InvalidateAndDelegate(t *testing.T) {
	reader := &mockReader{}
	reader.On("FetchAnalytics", mock.Anything, models.SystemCRM).Return(models.SystemAnalytics{Success: true}, nil).Twice()
	reader.On("FetchTickets", mock.Anything).Return([]models.Ticket{{TicketID: "T-1"}}, nil).Once()

	cached := NewCachedAnalytics(reader, 0, time.Minute)
	ctx := context.Background()

	_, err := cached.FetchAnalytics(ctx, models.SystemCRM)
	require.NoError(t, err)
	cached.Invalidate()
	_, err = cached.FetchAnalytics(ctx, models.SystemCRM)
	require.NoError(t, err)

	tickets, err := cached.FetchTickets(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	reader.AssertExpectations(t)
}
