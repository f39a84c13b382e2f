package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

const ticketTimestampLayout = "2006-01-02T15:04:05.000Z"

// Invalidator is implemented by readers that cache results across mutations.
type Invalidator interface {
	Invalidate()
}

// AddLicense creates a license and logs a closed "Add License" ticket for it.
// A failed ticket write is logged and does not fail the action.
func (c *Console) AddLicense(ctx context.Context, req models.CreateLicenseRequest) (models.ActionResult, error) {
	sys, err := models.ParseSystem(string(req.System))
	if err != nil {
		return models.ActionResult{}, err
	}
	req.System = sys
	if strings.TrimSpace(req.Name) == "" {
		return models.ActionResult{}, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if err := req.Details.Validate(sys); err != nil {
		return models.ActionResult{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Status == "" {
		req.Status = models.LicenseStatusActive
	}
	if req.TicketID == "" {
		req.TicketID = newTicketID("ADD")
	}

	result, err := c.writer.CreateLicense(ctx, req)
	if err != nil {
		return result, fmt.Errorf("create license: %w", err)
	}

	c.logTicket(ctx, models.CreateTicketRequest{
		TicketID:  req.TicketID,
		Action:    fmt.Sprintf("Add License for %s (%s)", req.Name, sys),
		Status:    models.TicketStatusClosed,
		Timestamp: c.timestamp(),
		Notes:     fmt.Sprintf("License created successfully. Requestor: %s", req.RequestorName),
	})
	c.afterMutation(ctx)
	return result, nil
}

// RemoveLicense deactivates license id and logs a closed "Remove License" ticket.
func (c *Console) RemoveLicense(ctx context.Context, id string, req models.RemoveLicenseRequest) (models.ActionResult, error) {
	removal := req.RemovalDetails
	if strings.TrimSpace(removal.Reason) == "" || strings.TrimSpace(removal.Remover) == "" {
		return models.ActionResult{}, fmt.Errorf("%w: removal reason and remover are required", ErrInvalidRequest)
	}

	license, err := c.findLicense(ctx, id)
	if err != nil {
		return models.ActionResult{}, err
	}
	if removal.TicketID == "" {
		removal.TicketID = newTicketID("REMOVE")
	}
	if removal.Date == "" {
		removal.Date = c.now().In(c.formatter.Location).Format("2006-01-02")
	}

	result, err := c.writer.UpdateLicense(ctx, id, models.UpdateLicenseRequest{
		Status:             models.LicenseStatusInactive,
		RemovalDetailsJSON: &removal,
		AttachmentData:     req.AttachmentData,
	})
	if err != nil {
		return result, fmt.Errorf("remove license %s: %w", id, err)
	}

	c.logTicket(ctx, models.CreateTicketRequest{
		TicketID:  removal.TicketID,
		Action:    fmt.Sprintf("Remove License for %s (%s)", license.Name, license.System),
		Status:    models.TicketStatusClosed,
		Timestamp: c.timestamp(),
		Notes:     fmt.Sprintf("License deactivated. Reason: %s, Remover: %s", removal.Reason, removal.Remover),
	})
	c.afterMutation(ctx)
	return result, nil
}

// ReactivateLicense puts license id back into service from a new assignment
// date. The record source writes the reactivation ticket.
func (c *Console) ReactivateLicense(ctx context.Context, id string, req models.ReactivateLicenseRequest) (models.ActionResult, error) {
	if strings.TrimSpace(req.Reason) == "" || strings.TrimSpace(req.NewAssignmentDate) == "" {
		return models.ActionResult{}, fmt.Errorf("%w: reason and new assignment date are required", ErrInvalidRequest)
	}

	result, err := c.writer.ReactivateLicense(ctx, id, req)
	if err != nil {
		return result, fmt.Errorf("reactivate license %s: %w", id, err)
	}
	c.afterMutation(ctx)
	return result, nil
}

// UpdateTicket edits the status and/or notes of a ticket.
func (c *Console) UpdateTicket(ctx context.Context, ticketID string, req models.UpdateTicketRequest) (models.ActionResult, error) {
	if req.Status == "" && req.Notes == nil {
		return models.ActionResult{}, fmt.Errorf("%w: status or notes is required", ErrInvalidRequest)
	}
	if req.Status != "" && !models.ValidTicketStatus(req.Status) {
		return models.ActionResult{}, fmt.Errorf("%w: unknown ticket status %q", ErrInvalidRequest, req.Status)
	}

	result, err := c.writer.UpdateTicket(ctx, ticketID, req)
	if err != nil {
		return result, fmt.Errorf("update ticket %s: %w", ticketID, err)
	}
	if _, loaded := c.tickets.Snapshot(); loaded {
		if _, err := c.RefreshTickets(ctx, 0, 0); err != nil {
			logger.Warn("Ticket log refresh after update failed: %v", err)
		}
	}
	return result, nil
}

func (c *Console) findLicense(ctx context.Context, id string) (models.License, error) {
	for _, view := range []*View[models.License]{c.search, c.reports, c.system, c.recent} {
		records, _ := view.Snapshot()
		for _, l := range records {
			if l.ID == id {
				return l, nil
			}
		}
	}

	licenses, err := c.reader.FetchLicenses(ctx, models.LicenseFilter{})
	if err != nil {
		return models.License{}, fmt.Errorf("look up license %s: %w", id, err)
	}
	for _, l := range licenses {
		if l.ID == id {
			return l, nil
		}
	}
	return models.License{}, fmt.Errorf("%w: %s", ErrLicenseNotFound, id)
}

func (c *Console) logTicket(ctx context.Context, ticket models.CreateTicketRequest) {
	if _, err := c.writer.CreateTicket(ctx, ticket); err != nil {
		logger.WithFields(map[string]interface{}{
			"ticket_id": ticket.TicketID,
			"action":    ticket.Action,
			"error":     err.Error(),
		}).Error("Failed to log ticket")
	}
}

// afterMutation drops cached analytics and reloads every view that was already loaded.
func (c *Console) afterMutation(ctx context.Context) {
	if inv, ok := c.reader.(Invalidator); ok {
		inv.Invalidate()
	}

	if _, loaded := c.recent.Snapshot(); loaded {
		if _, err := c.RefreshDashboard(ctx, 0, 0); err != nil {
			logger.Warn("Dashboard refresh after mutation failed: %v", err)
		}
	}
	if _, loaded := c.reports.Snapshot(); loaded {
		if _, err := c.ApplyReportFilter(ctx, c.reports.State().Filter, 0); err != nil {
			logger.Warn("Reports refresh after mutation failed: %v", err)
		}
	}
	if _, loaded := c.search.Snapshot(); loaded {
		if _, err := c.Search(ctx, c.search.State().Filter, 0); err != nil {
			logger.Warn("Search refresh after mutation failed: %v", err)
		}
	}
	if sys := c.system.State().System; sys != "" {
		if _, err := c.SelectSystem(ctx, string(sys), 0); err != nil {
			logger.Warn("System %s refresh after mutation failed: %v", sys, err)
		}
	}
	if _, loaded := c.tickets.Snapshot(); loaded {
		if _, err := c.RefreshTickets(ctx, 0, 0); err != nil {
			logger.Warn("Ticket log refresh after mutation failed: %v", err)
		}
	}
}

func (c *Console) timestamp() string {
	return c.now().UTC().Format(ticketTimestampLayout)
}

func newTicketID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}
