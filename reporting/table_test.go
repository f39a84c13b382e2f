package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

func TestBuildTablePage_FirstPageOfTwelve(t *testing.T) {
	page := BuildTablePage(licensesN(12), 1, 10, LicenseColumns, DefaultFormatter())

	assert.Equal(t, PageReady, page.State)
	assert.Len(t, page.Rows, 10)
	assert.Equal(t, 2, page.Pagination.PageCount)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrev)
	for _, row := range page.Rows {
		assert.Len(t, row, len(LicenseColumns))
	}

	second := BuildTablePage(licensesN(12), 2, 10, LicenseColumns, DefaultFormatter())
	assert.Len(t, second.Rows, 2)
	assert.Equal(t, "TCK-11", second.Rows[0][0].Text)
}

func TestBuildTablePage_EmptyIsNotLoading(t *testing.T) {
	page := BuildTablePage([]models.License{}, 1, 10, RecentColumns, DefaultFormatter())
	assert.Equal(t, PageEmpty, page.State)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 0, page.Pagination.PageCount)

	beyond := BuildTablePage(licensesN(3), 4, 10, RecentColumns, DefaultFormatter())
	assert.Equal(t, PageEmpty, beyond.State)

	loading := LoadingPage(RecentColumns, 10)
	assert.Equal(t, PageLoading, loading.State)
	assert.NotEqual(t, loading.State, page.State)
}

func TestBuildTablePage_CellKinds(t *testing.T) {
	active := lsqLicense("1", "Premium", "2024-01-01")
	active.AttachmentData = "data:application/pdf;base64,QUJD"
	inactive := lsqLicense("2", "", "2024-01-01")
	inactive.Status = models.LicenseStatusInactive
	inactive.Email = ""

	cols := LicenseColumns.Select("status", "email", "attachment_data", "details.lsq.licenseType")
	page := BuildTablePage([]models.License{active, inactive}, 1, 10, cols, DefaultFormatter())
	require.Len(t, page.Rows, 2)

	first := page.Rows[0]
	assert.Equal(t, CellBadgeActive, first[0].Kind)
	assert.Equal(t, CellText, first[1].Kind)
	assert.Equal(t, CellAttachment, first[2].Kind)
	assert.Equal(t, "1", first[2].Ref)
	assert.Equal(t, active.AttachmentData, first[2].Text)
	assert.Equal(t, AttachmentDisplay, first[2].Display())

	second := page.Rows[1]
	assert.Equal(t, CellBadgeInactive, second[0].Kind)
	assert.Equal(t, CellEmpty, second[1].Kind)
	assert.Equal(t, EmptyDisplay, second[1].Display())
	assert.Equal(t, CellNotApplicable, second[2].Kind)
	assert.Equal(t, "", second[2].Text)
	assert.Equal(t, CellEmpty, second[3].Kind)
}

func TestBuildTablePage_NonActiveStatusIsInactiveBadge(t *testing.T) {
	suspended := lsqLicense("1", "", "2024-01-01")
	suspended.Status = "Suspended"
	blank := lsqLicense("2", "", "2024-01-01")
	blank.Status = ""

	cols := LicenseColumns.Select("status")
	page := BuildTablePage([]models.License{suspended, blank}, 1, 10, cols, DefaultFormatter())
	require.Len(t, page.Rows, 2)

	assert.Equal(t, CellBadgeInactive, page.Rows[0][0].Kind)
	assert.Equal(t, "Suspended", page.Rows[0][0].Display())
	assert.Equal(t, CellBadgeInactive, page.Rows[1][0].Kind)
	assert.Equal(t, "", page.Rows[1][0].Display())
}

func TestBuildTablePage_Tickets(t *testing.T) {
	tickets := []models.Ticket{
		{TicketID: "T-1", ActionDescription: "Add License for A (LSQ)", Timestamp: "2024-03-05T10:00:00Z", Status: models.TicketStatusClosed},
	}
	page := BuildTablePage(tickets, 1, 10, TicketColumns, DefaultFormatter())
	require.Len(t, page.Rows, 1)

	row := page.Rows[0]
	assert.Equal(t, "T-1", row[0].Text)
	assert.Equal(t, "5/3/2024, 3:30:00 pm", row[2].Text)
	assert.Equal(t, CellText, row[3].Kind)
	assert.Equal(t, CellEmpty, row[4].Kind)
}

func TestSortRecent(t *testing.T) {
	in := []models.License{
		lsqLicense("a", "", "2024-01-10"),
		lsqLicense("b", "", "garbage"),
		lsqLicense("c", "", "2024-03-01"),
		lsqLicense("d", "", "2024-01-10"),
		lsqLicense("e", "", ""),
	}

	out := SortRecent(in, DefaultFormatter().Location)

	ids := make([]string, len(out))
	for i, l := range out {
		ids[i] = l.ID
	}
	assert.Equal(t, []string{"c", "a", "d", "b", "e"}, ids)
	assert.Equal(t, "a", in[0].ID, "input must not be reordered")
}
