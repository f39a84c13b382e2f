// Package reporting derives table pages, chart data and CSV exports from flat
// license and ticket collections. Every function is pure: callers pass plain
// records in and get plain data or text back.
package reporting

import "strings"

// Format selects the display rule applied to a projected value.
type Format int

const (
	FormatText Format = iota
	FormatDate
	FormatDateTime
)

// Column one reportable field.
type Column struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Format Format `json:"-"`
}

// Key prefixes of nested columns.
const (
	DetailsPrefix        = "details."
	RemovalDetailsPrefix = "removal_details."
)

// IsDetails reports whether the column addresses a system-specific details field.
func (c Column) IsDetails() bool {
	return strings.HasPrefix(c.Key, DetailsPrefix)
}

// IsRemoval reports whether the column addresses a removal details field.
func (c Column) IsRemoval() bool {
	return strings.HasPrefix(c.Key, RemovalDetailsPrefix)
}

// DetailsSystem returns the system segment of a details column, or "".
func (c Column) DetailsSystem() string {
	if !c.IsDetails() {
		return ""
	}
	rest := strings.TrimPrefix(c.Key, DetailsPrefix)
	system, _, found := strings.Cut(rest, ".")
	if !found {
		return ""
	}
	return system
}

// Columns ordered column list.
type Columns []Column

// Keys returns the column keys in order.
func (cs Columns) Keys() []string {
	keys := make([]string, len(cs))
	for i, c := range cs {
		keys[i] = c.Key
	}
	return keys
}

// Labels returns the column labels in order.
func (cs Columns) Labels() []string {
	labels := make([]string, len(cs))
	for i, c := range cs {
		labels[i] = c.Label
	}
	return labels
}

// Lookup finds a column by key.
func (cs Columns) Lookup(key string) (Column, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Select returns the columns named by keys, in the order given. Unknown keys are skipped.
func (cs Columns) Select(keys ...string) Columns {
	out := make(Columns, 0, len(keys))
	for _, k := range keys {
		if c, ok := cs.Lookup(k); ok {
			out = append(out, c)
		}
	}
	return out
}

// LicenseColumns is the single schema shared by every license table and export.
var LicenseColumns = Columns{
	{Key: "ticket_id", Label: "Ticket ID"},
	{Key: "system", Label: "System"},
	{Key: "status", Label: "Status"},
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email Address"},
	{Key: "mobile", Label: "Mobile Number"},
	{Key: "request_type", Label: "Request Type"},
	{Key: "requested_date", Label: "Requested Date", Format: FormatDate},
	{Key: "requestor_name", Label: "Requestor Name"},
	{Key: "assignment_date", Label: "Assignment Date", Format: FormatDate},
	{Key: "expiry_date", Label: "Expiry Date", Format: FormatDate},
	{Key: "created_at", Label: "Created At", Format: FormatDateTime},
	{Key: "updated_at", Label: "Last Modified At", Format: FormatDateTime},
	{Key: "attachment_data", Label: "Attachment"},
	{Key: "details.dms.dealerName", Label: "DMS Dealer Name"},
	{Key: "details.dms.dealerCode", Label: "DMS Code"},
	{Key: "details.dms.locationCode", Label: "DMS Loc. Code"},
	{Key: "details.dms.city", Label: "DMS City"},
	{Key: "details.dms.hubName", Label: "DMS Hub Name"},
	{Key: "details.lsq.licenseType", Label: "LSQ License Type"},
	{Key: "details.lsq.team", Label: "LSQ Team"},
	{Key: "details.lsq.salesExecutiveName", Label: "LSQ Sales Exec."},
	{Key: "details.lsq.mobileNumber", Label: "LSQ Mobile"},
	{Key: "details.lsq.hubName", Label: "LSQ Hub Name"},
	{Key: "details.lsq.city", Label: "LSQ City"},
	{Key: "details.crm.dealerName", Label: "CRM Dealer Name"},
	{Key: "details.crm.hubName", Label: "CRM Hub Name"},
	{Key: "details.crm.city", Label: "CRM City"},
	{Key: "details.zoho.firstName", Label: "ZOHO First Name"},
	{Key: "details.zoho.lastName", Label: "ZOHO Last Name"},
	{Key: "details.zoho.emailAddress", Label: "ZOHO Email"},
	{Key: "details.zoho.role", Label: "ZOHO Role"},
	{Key: "details.zoho.accountCreatedTime", Label: "ZOHO Creation Date", Format: FormatDateTime},
	{Key: "removal_details.ticketId", Label: "Removal Ticket ID"},
	{Key: "removal_details.date", Label: "Removal Date", Format: FormatDate},
	{Key: "removal_details.reason", Label: "Removal Reason"},
	{Key: "removal_details.remover", Label: "Remover Name"},
}

// RecentColumns dashboard "recently assigned" table.
var RecentColumns = LicenseColumns.Select("ticket_id", "system", "name", "assignment_date", "status")

// SearchColumns remove-license search results.
var SearchColumns = LicenseColumns.Select("ticket_id", "system", "name", "email", "mobile", "assignment_date", "status")

// TicketColumns ticket log table.
var TicketColumns = Columns{
	{Key: "ticket_id", Label: "Ticket ID"},
	{Key: "action_description", Label: "Action"},
	{Key: "timestamp", Label: "Timestamp", Format: FormatDateTime},
	{Key: "status", Label: "Status"},
	{Key: "notes", Label: "Notes"},
}
