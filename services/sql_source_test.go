package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvraj-revolt-motors/license-tracker/database"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insertLicense(t *testing.T, db *sql.DB, id, system, status, name, email, assigned, details, removal string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO licenses (id, ticket_id, `system`, name, email, status, assignment_date, details_json, removal_details_json, created_at) "+
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, "TCK-"+id, system, name, email, status, assigned, details, nullable(removal), "2024-01-01 09:00:00")
	require.NoError(t, err)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func seed(t *testing.T, db *sql.DB) {
	insertLicense(t, db, "1", "LSQ", "Active", "Asha Rao", "asha@example.com", "2024-01-10", `{"lsq":{"licenseType":"Premium"}}`, "")
	insertLicense(t, db, "2", "LSQ", "Active", "Ravi Kumar", "ravi@example.com", "2024-03-02", `{"lsq":{"licenseType":""}}`, "")
	insertLicense(t, db, "3", "LSQ", "Inactive", "Meera", "meera@example.com", "2024-02-15", `{"lsq":{"licenseType":"Premium"}}`,
		`{"ticketId":"R-3","date":"2024-05-01","reason":"Left","remover":"Admin"}`)
	insertLicense(t, db, "4", "DMS", "Active", "Vikram", "vikram@example.com", "2024-01-20", `not json`, "")
}

func TestSQLSource_FetchLicensesFilters(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	src := NewSQLSource(db, utils.LoadLocation(""))
	ctx := context.Background()

	all, err := src.FetchLicenses(ctx, models.LicenseFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2", all[0].ID, "newest assignment first")

	lsqActive, err := src.FetchLicenses(ctx, models.LicenseFilter{System: "LSQ", Status: "Active"})
	require.NoError(t, err)
	assert.Len(t, lsqActive, 2)

	search, err := src.FetchLicenses(ctx, models.LicenseFilter{Search: "ravi"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Ravi Kumar", search[0].Name)

	ranged, err := src.FetchLicenses(ctx, models.LicenseFilter{DateRangeStart: "2024-01-15", DateRangeEnd: "2024-02-28"})
	require.NoError(t, err)
	ids := []string{}
	for _, l := range ranged {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"3", "4"}, ids)
}

func TestSQLSource_DecodesJSONColumns(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	src := NewSQLSource(db, nil)

	licenses, err := src.FetchLicenses(context.Background(), models.LicenseFilter{})
	require.NoError(t, err)

	byID := map[string]models.License{}
	for _, l := range licenses {
		byID[l.ID] = l
	}

	require.NotNil(t, byID["1"].Details.LSQ)
	assert.Equal(t, "Premium", byID["1"].Details.LSQ.LicenseType)
	assert.Nil(t, byID["1"].RemovalDetails)

	require.NotNil(t, byID["3"].RemovalDetails)
	assert.Equal(t, "Left", byID["3"].RemovalDetails.Reason)

	assert.True(t, byID["4"].Details.IsZero(), "malformed details decode as empty")
	assert.Equal(t, models.SystemDMS, byID["4"].System)
}

func TestSQLSource_FetchAnalytics(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	src := NewSQLSource(db, utils.LoadLocation(""))

	analytics, err := src.FetchAnalytics(context.Background(), models.SystemLSQ)
	require.NoError(t, err)
	assert.True(t, analytics.Success)
	assert.ElementsMatch(t, []models.CategoryCount{
		{Category: "Premium", Count: 1},
		{Category: "Unspecified", Count: 1},
	}, analytics.Distribution)
	assert.Equal(t, []models.MonthCount{
		{Month: "2024-01", Count: 1},
		{Month: "2024-03", Count: 1},
	}, analytics.Trend)
}

func TestSQLSource_Tickets(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Exec("INSERT INTO tickets (ticket_id, action_description, timestamp, status, notes) VALUES (?, ?, ?, ?, ?), (?, ?, ?, ?, ?)",
		"T-1", "Add License for A (LSQ)", "2024-01-01 10:00:00", "Closed", nil,
		"T-2", "Remove License for B (DMS)", "2024-02-01 10:00:00", "Open", "pending approval")
	require.NoError(t, err)

	src := NewSQLSource(db, nil)
	tickets, err := src.FetchTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "T-2", tickets[0].TicketID)
	assert.Equal(t, "pending approval", tickets[0].Notes)
	assert.Equal(t, "", tickets[1].Notes)

	require.NoError(t, src.Ping(context.Background()))
}

func TestSQLSource_IsReadOnly(t *testing.T) {
	src := NewSQLSource(newTestDB(t), nil)
	ctx := context.Background()

	_, err := src.CreateLicense(ctx, models.CreateLicenseRequest{})
	assert.ErrorIs(t, err, ErrReadOnlySource)
	_, err = src.UpdateLicense(ctx, "1", models.UpdateLicenseRequest{})
	assert.ErrorIs(t, err, ErrReadOnlySource)
	_, err = src.ReactivateLicense(ctx, "1", models.ReactivateLicenseRequest{})
	assert.ErrorIs(t, err, ErrReadOnlySource)
	_, err = src.CreateTicket(ctx, models.CreateTicketRequest{})
	assert.ErrorIs(t, err, ErrReadOnlySource)
	res, err := src.UpdateTicket(ctx, "T-1", models.UpdateTicketRequest{})
	assert.ErrorIs(t, err, ErrReadOnlySource)
	assert.False(t, res.Success)
}
