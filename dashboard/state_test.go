package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

func TestNewViewState(t *testing.T) {
	s := NewViewState()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, reporting.DefaultPageSize, s.PageSize)
	assert.True(t, s.Filter.IsZero())
}

func TestViewState_SetPageSizeClampsPage(t *testing.T) {
	s := ViewState{Page: 5, PageSize: 10}

	// 45 rows at 20 per page is 3 pages.
	next, err := s.SetPageSize(20, 45)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Page)
	assert.Equal(t, 20, next.PageSize)

	// Page 2 still exists, so it is kept rather than reset to 1.
	s = ViewState{Page: 2, PageSize: 10}
	next, err = s.SetPageSize(20, 45)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Page)
}

func TestViewState_SetPageSizeRejectsUnknownSize(t *testing.T) {
	s := NewViewState()
	next, err := s.SetPageSize(15, 100)
	assert.ErrorIs(t, err, reporting.ErrInvalidPageSize)
	assert.Equal(t, s, next)
}

func TestViewState_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  int
	}{
		{"within range", 2, 30, 2},
		{"past the end", 9, 30, 3},
		{"empty collection", 4, 0, 1},
		{"below one", -3, 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ViewState{Page: tt.page, PageSize: 10}.Clamp(tt.total)
			assert.Equal(t, tt.want, s.Page)
		})
	}
}

func TestViewState_NavigateZeroMeansUnchanged(t *testing.T) {
	s := ViewState{Page: 2, PageSize: 10}

	next, err := s.Navigate(0, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, s, next)

	next, err = s.Navigate(4, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 4, next.Page)

	next, err = s.Navigate(0, 50, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, 50, next.PageSize)
}
