package reporting

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

func csvFixture() []models.License {
	quoted := lsqLicense("1", `Gold "Plus"`, "2024-03-05")
	quoted.CreatedAt = "2024-03-05T10:00:00Z"
	quoted.AttachmentData = "data:image/png;base64,iVBORw0K"

	removed := lsqLicense("2", "", "bad-date")
	removed.Status = models.LicenseStatusInactive
	removed.Name = "Comma, Name"
	removed.RemovalDetails = &models.RemovalDetails{Date: "2024-06-01", Reason: "multi\nline"}

	zoho := models.License{
		ID:     "3",
		System: models.SystemZOHO,
		Status: models.LicenseStatusActive,
		Details: models.Details{ZOHO: &models.ZohoDetails{
			Role:               "Admin",
			AccountCreatedTime: "2023-11-20 09:15:00",
		}},
	}
	return []models.License{quoted, removed, zoho}
}

func TestToCSV_RoundTripMatchesTableCells(t *testing.T) {
	records := csvFixture()
	f := DefaultFormatter()

	for _, cols := range []Columns{LicenseColumns, ScopeColumns(LicenseColumns, "lsq"), RecentColumns} {
		text := ToCSV(records, cols, f)

		parsed, err := csv.NewReader(strings.NewReader(text)).ReadAll()
		require.NoError(t, err)
		require.Len(t, parsed, len(records)+1)
		assert.Equal(t, cols.Labels(), parsed[0])

		page := BuildTablePage(records, 1, len(records), cols, f)
		require.Len(t, page.Rows, len(records))
		for i, row := range page.Rows {
			texts := make([]string, len(row))
			for j, cell := range row {
				texts[j] = cell.Text
			}
			assert.Equal(t, texts, parsed[i+1], "row %d", i)
		}
	}
}

func TestToCSV_QuotesEveryField(t *testing.T) {
	records := []models.License{lsqLicense("1", `Gold "Plus"`, "2024-03-05")}
	cols := LicenseColumns.Select("name", "details.lsq.licenseType", "expiry_date")

	text := ToCSV(records, cols, DefaultFormatter())

	assert.Equal(t,
		"\"Name\",\"LSQ License Type\",\"Expiry Date\"\n"+
			"\"User 1\",\"Gold \"\"Plus\"\"\",\"\"\n",
		text)
}

func TestToCSV_HeaderOnlyForNoRecords(t *testing.T) {
	text := ToCSV([]models.Ticket{}, TicketColumns, DefaultFormatter())
	assert.Equal(t, "\"Ticket ID\",\"Action\",\"Timestamp\",\"Status\",\"Notes\"\n", text)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_PropagatesWriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, licensesN(1), LicenseColumns, DefaultFormatter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "full_license_report.csv", ExportFilename(ScopeFull))
	assert.Equal(t, "filtered_license_report.csv", ExportFilename(ScopeFiltered))
	assert.Equal(t, "lsq_license_report.csv", ExportFilename("LSQ"))
	assert.Equal(t, "zoho_license_report.csv", ExportFilename("zoho"))
}
