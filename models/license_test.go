package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicense_UnmarshalUpstreamAliases(t *testing.T) {
	raw := `{
		"id": "7",
		"system": "LSQ",
		"status": "Inactive",
		"details_json": {"lsq": {"licenseType": "Premium", "team": "North"}},
		"removal_details_json": {"ticketId": "T-9", "date": "2024-02-01", "reason": "Left", "remover": "Admin"}
	}`

	var l License
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	require.NotNil(t, l.Details.LSQ)
	assert.Equal(t, "Premium", l.Details.LSQ.LicenseType)
	require.NotNil(t, l.RemovalDetails)
	assert.Equal(t, "Left", l.RemovalDetails.Reason)
	assert.False(t, l.IsActive())
}

func TestLicense_UnmarshalDropsBlankRemoval(t *testing.T) {
	raw := `{"id": "1", "system": "CRM", "status": "Active",
		"details": {"crm": {"hubName": "Pune"}},
		"removal_details": {"ticketId": "", "date": "", "reason": "", "remover": ""}}`

	var l License
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	assert.Nil(t, l.RemovalDetails)
	assert.Equal(t, "Pune", l.Details.Category(SystemCRM))

	_, ok := l.Field("removal_details")
	assert.False(t, ok)
}

func TestDetails_Validate(t *testing.T) {
	assert.NoError(t, Details{}.Validate(SystemDMS))
	assert.NoError(t, Details{DMS: &DMSDetails{DealerName: "A"}}.Validate(SystemDMS))
	assert.ErrorIs(t, Details{DMS: &DMSDetails{}}.Validate(SystemLSQ), ErrDetailsMismatch)
	assert.ErrorIs(t,
		Details{DMS: &DMSDetails{}, CRM: &CRMDetails{}}.Validate(SystemDMS),
		ErrDetailsMismatch)
}

func TestDetails_FieldByLowerKey(t *testing.T) {
	d := Details{ZOHO: &ZohoDetails{Role: "Manager"}}

	v, ok := d.Field("zoho")
	require.True(t, ok)
	role, ok := v.(ZohoDetails).Field("role")
	require.True(t, ok)
	assert.Equal(t, "Manager", role)

	_, ok = d.Field("dms")
	assert.False(t, ok)
	_, ok = d.Field("unknown")
	assert.False(t, ok)
}

func TestParseSystem(t *testing.T) {
	s, err := ParseSystem(" zoho ")
	require.NoError(t, err)
	assert.Equal(t, SystemZOHO, s)
	assert.Equal(t, "zoho", s.Key())

	_, err = ParseSystem("SAP")
	assert.ErrorIs(t, err, ErrUnknownSystem)
}

func TestLicenseFilter_Query(t *testing.T) {
	f := LicenseFilter{Search: " asha ", System: "DMS", DateRangeEnd: "2024-03-31"}
	q := f.Query()

	assert.Equal(t, "asha", q.Get("query"))
	assert.Equal(t, "DMS", q.Get("system"))
	assert.Equal(t, "2024-03-31", q.Get("assignment_date_end"))
	assert.False(t, q.Has("status"))
	assert.False(t, q.Has("assignment_date_start"))
	assert.True(t, LicenseFilter{}.IsZero())
}

func TestValidTicketStatus(t *testing.T) {
	for _, s := range []string{TicketStatusOpen, TicketStatusPending, TicketStatusClosed} {
		assert.True(t, ValidTicketStatus(s), s)
	}
	assert.False(t, ValidTicketStatus("closed"))
}
