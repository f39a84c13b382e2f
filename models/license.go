package models

import (
	"encoding/json"
	"errors"
)

// License one assignment of a named license on one system to one person.
type License struct {
	ID             string          `json:"id"`
	TicketID       string          `json:"ticket_id"`
	System         System          `json:"system"`
	Status         string          `json:"status"` // Active, Inactive
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	RequestType    string          `json:"request_type"`
	RequestorName  string          `json:"requestor_name"`
	RequestedDate  string          `json:"requested_date"`
	AssignmentDate string          `json:"assignment_date"`
	ExpiryDate     string          `json:"expiry_date"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
	Details        Details         `json:"details"`
	RemovalDetails *RemovalDetails `json:"removal_details,omitempty"`
	AttachmentData string          `json:"attachment_data,omitempty"`
}

// License status values
const (
	LicenseStatusActive   = "Active"
	LicenseStatusInactive = "Inactive"
)

// ErrDetailsMismatch is returned when the populated details variant does not match the record's system.
var ErrDetailsMismatch = errors.New("details variant does not match system")

// IsActive reports whether the license currently occupies a seat.
func (l License) IsActive() bool {
	return l.Status == LicenseStatusActive
}

// HasAttachment reports whether an encoded attachment payload is present.
func (l License) HasAttachment() bool {
	return l.AttachmentData != ""
}

// RecordID identity used by view triggers.
func (l License) RecordID() string {
	return l.ID
}

// Field resolves a top-level attribute by its wire name.
func (l License) Field(name string) (any, bool) {
	switch name {
	case "id":
		return l.ID, true
	case "ticket_id":
		return l.TicketID, true
	case "system":
		return string(l.System), true
	case "status":
		return l.Status, true
	case "name":
		return l.Name, true
	case "email":
		return l.Email, true
	case "mobile":
		return l.Mobile, true
	case "request_type":
		return l.RequestType, true
	case "requestor_name":
		return l.RequestorName, true
	case "requested_date":
		return l.RequestedDate, true
	case "assignment_date":
		return l.AssignmentDate, true
	case "expiry_date":
		return l.ExpiryDate, true
	case "created_at":
		return l.CreatedAt, true
	case "updated_at":
		return l.UpdatedAt, true
	case "attachment_data", "attachment":
		return l.AttachmentData, true
	case "details":
		return l.Details, true
	case "removal_details":
		if l.RemovalDetails == nil {
			return nil, false
		}
		return *l.RemovalDetails, true
	}
	return nil, false
}

// UnmarshalJSON accepts both the canonical keys and the upstream's
// details_json / removal_details_json spellings.
func (l *License) UnmarshalJSON(data []byte) error {
	type plain License
	aux := struct {
		*plain
		DetailsJSON        *Details        `json:"details_json"`
		RemovalDetailsJSON *RemovalDetails `json:"removal_details_json"`
	}{plain: (*plain)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.DetailsJSON != nil && l.Details.IsZero() {
		l.Details = *aux.DetailsJSON
	}
	if aux.RemovalDetailsJSON != nil && l.RemovalDetails == nil {
		l.RemovalDetails = aux.RemovalDetailsJSON
	}
	if l.RemovalDetails != nil && l.RemovalDetails.IsZero() {
		l.RemovalDetails = nil
	}
	return nil
}

// Details holds the system-specific field set. At most one variant is
// populated and it must be the one keyed by the record's System.
type Details struct {
	DMS  *DMSDetails  `json:"dms,omitempty"`
	LSQ  *LSQDetails  `json:"lsq,omitempty"`
	CRM  *CRMDetails  `json:"crm,omitempty"`
	ZOHO *ZohoDetails `json:"zoho,omitempty"`
}

// IsZero reports whether no variant is populated.
func (d Details) IsZero() bool {
	return d.DMS == nil && d.LSQ == nil && d.CRM == nil && d.ZOHO == nil
}

// Variant returns the populated variant for system, if any.
func (d Details) Variant(system System) (any, bool) {
	switch system {
	case SystemDMS:
		if d.DMS != nil {
			return *d.DMS, true
		}
	case SystemLSQ:
		if d.LSQ != nil {
			return *d.LSQ, true
		}
	case SystemCRM:
		if d.CRM != nil {
			return *d.CRM, true
		}
	case SystemZOHO:
		if d.ZOHO != nil {
			return *d.ZOHO, true
		}
	}
	return nil, false
}

// Validate enforces the single-variant invariant for a record on system.
func (d Details) Validate(system System) error {
	populated := 0
	for _, s := range Systems {
		if _, ok := d.Variant(s); ok {
			populated++
			if s != system {
				return ErrDetailsMismatch
			}
		}
	}
	if populated > 1 {
		return ErrDetailsMismatch
	}
	return nil
}

// Field resolves a variant by its lower-case system key.
func (d Details) Field(name string) (any, bool) {
	system, err := ParseSystem(name)
	if err != nil {
		return nil, false
	}
	return d.Variant(system)
}

// Category returns the distribution category of the variant matching system.
func (d Details) Category(system System) string {
	v, ok := d.Variant(system)
	if !ok {
		return ""
	}
	f, ok := v.(interface{ Field(string) (any, bool) })
	if !ok {
		return ""
	}
	val, _ := f.Field(system.CategoryField())
	s, _ := val.(string)
	return s
}

// DMSDetails dealer identity.
type DMSDetails struct {
	DealerName   string `json:"dealerName"`
	DealerCode   string `json:"dealerCode"`
	LocationCode string `json:"locationCode"`
	City         string `json:"city"`
	HubName      string `json:"hubName"`
}

func (d DMSDetails) Field(name string) (any, bool) {
	switch name {
	case "dealerName":
		return d.DealerName, true
	case "dealerCode":
		return d.DealerCode, true
	case "locationCode":
		return d.LocationCode, true
	case "city":
		return d.City, true
	case "hubName":
		return d.HubName, true
	}
	return nil, false
}

// LSQDetails team and sales executive.
type LSQDetails struct {
	LicenseType        string `json:"licenseType"`
	Team               string `json:"team"`
	SalesExecutiveName string `json:"salesExecutiveName"`
	MobileNumber       string `json:"mobileNumber"`
	HubName            string `json:"hubName"`
	City               string `json:"city"`
}

func (d LSQDetails) Field(name string) (any, bool) {
	switch name {
	case "licenseType":
		return d.LicenseType, true
	case "team":
		return d.Team, true
	case "salesExecutiveName":
		return d.SalesExecutiveName, true
	case "mobileNumber":
		return d.MobileNumber, true
	case "hubName":
		return d.HubName, true
	case "city":
		return d.City, true
	}
	return nil, false
}

// CRMDetails dealer and hub.
type CRMDetails struct {
	DealerName string `json:"dealerName"`
	HubName    string `json:"hubName"`
	City       string `json:"city"`
}

func (d CRMDetails) Field(name string) (any, bool) {
	switch name {
	case "dealerName":
		return d.DealerName, true
	case "hubName":
		return d.HubName, true
	case "city":
		return d.City, true
	}
	return nil, false
}

// ZohoDetails account owner.
type ZohoDetails struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	EmailAddress       string `json:"emailAddress"`
	Role               string `json:"role"`
	AccountCreatedTime string `json:"accountCreatedTime"`
}

func (d ZohoDetails) Field(name string) (any, bool) {
	switch name {
	case "firstName":
		return d.FirstName, true
	case "lastName":
		return d.LastName, true
	case "emailAddress":
		return d.EmailAddress, true
	case "role":
		return d.Role, true
	case "accountCreatedTime":
		return d.AccountCreatedTime, true
	}
	return nil, false
}

// RemovalDetails captured by the deactivation flow.
type RemovalDetails struct {
	TicketID string `json:"ticketId"`
	Date     string `json:"date"`
	Reason   string `json:"reason"`
	Remover  string `json:"remover"`
}

// IsZero reports whether every field is blank.
func (r RemovalDetails) IsZero() bool {
	return r == RemovalDetails{}
}

func (r RemovalDetails) Field(name string) (any, bool) {
	switch name {
	case "ticketId":
		return r.TicketID, true
	case "date":
		return r.Date, true
	case "reason":
		return r.Reason, true
	case "remover":
		return r.Remover, true
	}
	return nil, false
}
