package models

import (
	"net/url"
	"strings"
)

// LicenseFilter predicate sent to the record source.
type LicenseFilter struct {
	Search         string `json:"search"`
	System         string `json:"system"`
	Status         string `json:"status"`
	DateRangeStart string `json:"date_range_start"`
	DateRangeEnd   string `json:"date_range_end"`
}

// IsZero reports whether the filter matches everything.
func (f LicenseFilter) IsZero() bool {
	return f == LicenseFilter{}
}

// Query encodes the filter with the upstream's parameter names; blank values are omitted.
func (f LicenseFilter) Query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			q.Set(key, v)
		}
	}
	set("query", f.Search)
	set("system", f.System)
	set("status", f.Status)
	set("assignment_date_start", f.DateRangeStart)
	set("assignment_date_end", f.DateRangeEnd)
	return q
}

// CreateLicenseRequest add-license form payload.
type CreateLicenseRequest struct {
	TicketID       string  `json:"ticketId"`
	System         System  `json:"system"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Mobile         string  `json:"mobile"`
	RequestType    string  `json:"requestType"`
	RequestedDate  string  `json:"requestedDate"`
	RequestorName  string  `json:"requestorName"`
	AssignmentDate string  `json:"assignmentDate"`
	ExpiryDate     string  `json:"expiryDate"`
	Status         string  `json:"status"`
	Details        Details `json:"details"`
	AttachmentData string  `json:"attachmentData,omitempty"`
}

// RemoveLicenseRequest deactivation payload.
type RemoveLicenseRequest struct {
	RemovalDetails RemovalDetails `json:"removal_details"`
	AttachmentData string         `json:"attachmentData,omitempty"`
}

// UpdateLicenseRequest patch sent upstream.
type UpdateLicenseRequest struct {
	Status             string          `json:"status,omitempty"`
	RemovalDetailsJSON *RemovalDetails `json:"removal_details_json,omitempty"`
	AttachmentData     string          `json:"attachmentData,omitempty"`
}

// ReactivateLicenseRequest reactivation payload.
type ReactivateLicenseRequest struct {
	Reason            string `json:"reason"`
	NewAssignmentDate string `json:"newAssignmentDate"`
	AttachmentData    string `json:"attachmentData,omitempty"`
}

// CreateTicketRequest ticket log entry.
type CreateTicketRequest struct {
	TicketID  string `json:"ticketId"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateTicketRequest status and notes edit.
type UpdateTicketRequest struct {
	Status string  `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ActionResult upstream acknowledgement of a mutation.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ViewFilterRequest filter form of the reports and search views.
type ViewFilterRequest struct {
	LicenseFilter
	PageSize int `json:"page_size,omitempty"`
}
