package models

// Ticket audit entry written as a side effect of a license action.
type Ticket struct {
	TicketID          string `json:"ticket_id"`
	ActionDescription string `json:"action_description"`
	Timestamp         string `json:"timestamp"`
	Status            string `json:"status"` // Open, Pending, Closed
	Notes             string `json:"notes"`
}

// Ticket status values
const (
	TicketStatusOpen    = "Open"
	TicketStatusPending = "Pending"
	TicketStatusClosed  = "Closed"
)

// ValidTicketStatus reports whether status is one of the three ticket states.
func ValidTicketStatus(status string) bool {
	switch status {
	case TicketStatusOpen, TicketStatusPending, TicketStatusClosed:
		return true
	}
	return false
}

// RecordID identity used by view triggers.
func (t Ticket) RecordID() string {
	return t.TicketID
}

func (t Ticket) Field(name string) (any, bool) {
	switch name {
	case "ticket_id":
		return t.TicketID, true
	case "action_description":
		return t.ActionDescription, true
	case "timestamp":
		return t.Timestamp, true
	case "status":
		return t.Status, true
	case "notes":
		return t.Notes, true
	}
	return nil, false
}
