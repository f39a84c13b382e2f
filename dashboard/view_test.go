package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

func TestView_RendersLoadingUntilCommitted(t *testing.T) {
	v := NewView[models.License](ViewReports, StaticColumns(reporting.RecentColumns))

	page := v.Render(reporting.DefaultFormatter())
	assert.Equal(t, reporting.PageLoading, page.State)
	assert.Empty(t, page.Rows)

	token, _ := v.Begin(nil)
	require.NoError(t, v.Commit(token, nil))

	page = v.Render(reporting.DefaultFormatter())
	assert.Equal(t, reporting.PageEmpty, page.State)
}

func TestView_StaleCommitIsDiscarded(t *testing.T) {
	v := NewView[models.License](ViewSearch, StaticColumns(reporting.SearchColumns))

	first, _ := v.Begin(func(s *ViewState) { s.Filter.Search = "asha" })
	second, state := v.Begin(func(s *ViewState) { s.Filter.Search = "ravi" })
	assert.Equal(t, "ravi", state.Filter.Search)

	require.NoError(t, v.Commit(second, licenses(3)))
	// The earlier fetch resolves last and must not overwrite the newer result.
	err := v.Commit(first, licenses(8))
	assert.ErrorIs(t, err, ErrStaleFetch)

	records, loaded := v.Snapshot()
	assert.True(t, loaded)
	assert.Len(t, records, 3)
	assert.Equal(t, "ravi", v.State().Filter.Search)
}

func TestView_UncommittedFetchLeavesStateUnchanged(t *testing.T) {
	v := NewView[models.License](ViewSystem, StaticColumns(reporting.LicenseColumns))
	token, _ := v.Begin(func(s *ViewState) { s.System = models.SystemDMS })
	require.NoError(t, v.Commit(token, licenses(2)))

	_, state := v.Begin(func(s *ViewState) {
		s.System = models.SystemLSQ
		s.Page = 1
	})
	assert.Equal(t, models.SystemLSQ, state.System)
	assert.Equal(t, models.SystemDMS, v.State().System)

	// A newer fetch that never commits does not let the older one land either.
	older, _ := v.Begin(func(s *ViewState) { s.System = models.SystemCRM })
	v.Begin(func(s *ViewState) { s.System = models.SystemZOHO })
	assert.ErrorIs(t, v.Commit(older, licenses(1)), ErrStaleFetch)
	assert.Equal(t, models.SystemDMS, v.State().System)

	records, _ := v.Snapshot()
	assert.Len(t, records, 2)
}

func TestView_CommitClampsPage(t *testing.T) {
	v := NewView[models.License](ViewReports, StaticColumns(reporting.LicenseColumns))

	token, _ := v.Begin(nil)
	require.NoError(t, v.Commit(token, licenses(45)))
	_, err := v.Navigate(5, 0, reporting.DefaultFormatter())
	require.NoError(t, err)
	assert.Equal(t, 5, v.State().Page)

	token, _ = v.Begin(nil)
	require.NoError(t, v.Commit(token, licenses(12)))
	assert.Equal(t, 2, v.State().Page)
}

func TestView_NavigatePageSizeChange(t *testing.T) {
	v := NewView[models.License](ViewReports, StaticColumns(reporting.RecentColumns))
	token, _ := v.Begin(nil)
	require.NoError(t, v.Commit(token, licenses(45)))

	_, err := v.Navigate(5, 0, reporting.DefaultFormatter())
	require.NoError(t, err)

	page, err := v.Navigate(0, 20, reporting.DefaultFormatter())
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.Page)
	assert.Equal(t, 3, page.Pagination.PageCount)
	assert.Len(t, page.Rows, 5)

	_, err = v.Navigate(0, 7, reporting.DefaultFormatter())
	assert.ErrorIs(t, err, reporting.ErrInvalidPageSize)
	assert.Equal(t, 20, v.State().PageSize)
}

func TestView_SnapshotIsACopy(t *testing.T) {
	v := NewView[models.License](ViewRecent, StaticColumns(reporting.RecentColumns))
	token, _ := v.Begin(nil)
	require.NoError(t, v.Commit(token, licenses(2)))

	records, _ := v.Snapshot()
	records[0].Name = "changed"

	again, _ := v.Snapshot()
	assert.NotEqual(t, "changed", again[0].Name)
}

func TestView_ColumnsFollowState(t *testing.T) {
	v := NewView[models.License](ViewSystem, func(s ViewState) reporting.Columns {
		return reporting.ScopeColumns(reporting.LicenseColumns, string(s.System))
	})
	token, _ := v.Begin(func(s *ViewState) { s.System = models.SystemCRM })
	require.NoError(t, v.Commit(token, nil))

	for _, c := range v.Columns() {
		if sys := c.DetailsSystem(); sys != "" {
			assert.Equal(t, "crm", sys)
		}
	}
}
