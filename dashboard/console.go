package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
	"github.com/yuvraj-revolt-motors/license-tracker/services"
)

// Analytics modes.
const (
	AnalyticsLocal    = "local"
	AnalyticsUpstream = "upstream"
)

// Options configures a Console.
type Options struct {
	Formatter     reporting.Formatter
	Capacity      models.CapacityTable
	AnalyticsMode string
	Now           func() time.Time
}

// Console serves the dashboard, reports, search, system and ticket views
// of a single operator session.
type Console struct {
	reader    services.LicenseReader
	writer    services.LicenseWriter
	formatter reporting.Formatter
	capacity  models.CapacityTable
	analytics string
	now       func() time.Time

	recent  *View[models.License]
	reports *View[models.License]
	search  *View[models.License]
	system  *View[models.License]
	tickets *View[models.Ticket]
}

// NewConsole wires the views over reader and writer.
func NewConsole(reader services.LicenseReader, writer services.LicenseWriter, opts Options) *Console {
	if opts.Formatter.Location == nil {
		opts.Formatter = reporting.DefaultFormatter()
	}
	if opts.Capacity == nil {
		opts.Capacity = models.DefaultCapacity()
	}
	if opts.AnalyticsMode != AnalyticsUpstream {
		opts.AnalyticsMode = AnalyticsLocal
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Console{
		reader:    reader,
		writer:    writer,
		formatter: opts.Formatter,
		capacity:  opts.Capacity,
		analytics: opts.AnalyticsMode,
		now:       opts.Now,
		recent:    NewView[models.License](ViewRecent, StaticColumns(reporting.RecentColumns)),
		reports:   NewView[models.License](ViewReports, StaticColumns(reporting.LicenseColumns)),
		search:    NewView[models.License](ViewSearch, StaticColumns(reporting.SearchColumns)),
		system: NewView[models.License](ViewSystem, func(s ViewState) reporting.Columns {
			return reporting.ScopeColumns(reporting.LicenseColumns, string(s.System))
		}),
		tickets: NewView[models.Ticket](ViewTickets, StaticColumns(reporting.TicketColumns)),
	}
}

// Formatter returns the display settings shared by tables and exports.
func (c *Console) Formatter() reporting.Formatter {
	return c.formatter
}

// Dashboard capacity cards plus the recently assigned table.
type Dashboard struct {
	Capacity reporting.CapacityOverview `json:"capacity"`
	Recent   reporting.TablePage        `json:"recent"`
}

// SystemView per-system table and charts.
type SystemView struct {
	System       models.System       `json:"system"`
	Table        reporting.TablePage `json:"table"`
	Distribution reporting.Chart     `json:"distribution"`
	Trend        reporting.Chart     `json:"trend"`
}

// RefreshDashboard fetches every license, recomputes capacity and renders the
// requested page of the recent view.
func (c *Console) RefreshDashboard(ctx context.Context, page, size int) (Dashboard, error) {
	token, _ := c.recent.Begin(nil)
	licenses, err := c.reader.FetchLicenses(ctx, models.LicenseFilter{})
	if err != nil {
		c.logFetchError(ViewRecent, err)
		return Dashboard{}, fmt.Errorf("refresh dashboard: %w", err)
	}
	if err := c.recent.Commit(token, reporting.SortRecent(licenses, c.formatter.Location)); err != nil {
		return Dashboard{}, err
	}
	return c.DashboardPage(page, size)
}

// DashboardPage re-pages the recent view from the last snapshot.
func (c *Console) DashboardPage(page, size int) (Dashboard, error) {
	table, err := c.recent.Navigate(page, size, c.formatter)
	if err != nil {
		return Dashboard{}, err
	}
	licenses, _ := c.recent.Snapshot()
	return Dashboard{
		Capacity: reporting.Capacity(licenses, c.capacity),
		Recent:   table,
	}, nil
}

// ApplyReportFilter fetches the reports view for filter.
func (c *Console) ApplyReportFilter(ctx context.Context, filter models.LicenseFilter, size int) (reporting.TablePage, error) {
	return c.fetchLicenses(ctx, c.reports, filter, size)
}

// ReportsPage re-pages the reports view.
func (c *Console) ReportsPage(page, size int) (reporting.TablePage, error) {
	return c.reports.Navigate(page, size, c.formatter)
}

// Search fetches the remove-license search view.
func (c *Console) Search(ctx context.Context, filter models.LicenseFilter, size int) (reporting.TablePage, error) {
	return c.fetchLicenses(ctx, c.search, filter, size)
}

// SearchPage re-pages the search view.
func (c *Console) SearchPage(page, size int) (reporting.TablePage, error) {
	return c.search.Navigate(page, size, c.formatter)
}

func (c *Console) fetchLicenses(ctx context.Context, view *View[models.License], filter models.LicenseFilter, size int) (reporting.TablePage, error) {
	if size != 0 {
		if err := reporting.ValidatePageSize(size); err != nil {
			return reporting.TablePage{}, err
		}
	}

	token, state := view.Begin(func(s *ViewState) {
		s.Filter = filter
	})
	licenses, err := c.reader.FetchLicenses(ctx, state.Filter)
	if err != nil {
		c.logFetchError(view.Name(), err)
		return reporting.TablePage{}, fmt.Errorf("fetch %s: %w", view.Name(), err)
	}
	if err := view.Commit(token, licenses); err != nil {
		return reporting.TablePage{}, err
	}
	return view.Navigate(0, size, c.formatter)
}

// SelectSystem switches the system view to system and loads its records and charts.
func (c *Console) SelectSystem(ctx context.Context, system string, size int) (SystemView, error) {
	sys, err := models.ParseSystem(system)
	if err != nil {
		return SystemView{}, err
	}

	token, state := c.system.Begin(func(s *ViewState) {
		if s.System != sys {
			s.Page = 1
		}
		s.System = sys
		s.Filter = models.LicenseFilter{System: string(sys)}
	})
	licenses, err := c.reader.FetchLicenses(ctx, state.Filter)
	if err != nil {
		c.logFetchError(ViewSystem, err)
		return SystemView{}, fmt.Errorf("fetch system %s: %w", sys, err)
	}
	if err := c.system.Commit(token, licenses); err != nil {
		return SystemView{}, err
	}

	table, err := c.system.Navigate(0, size, c.formatter)
	if err != nil {
		return SystemView{}, err
	}
	return c.systemView(ctx, sys, table, licenses)
}

// SystemPage re-pages the system view.
func (c *Console) SystemPage(ctx context.Context, page, size int) (SystemView, error) {
	sys := c.system.State().System
	if sys == "" {
		return SystemView{}, ErrNoSystemSelected
	}
	table, err := c.system.Navigate(page, size, c.formatter)
	if err != nil {
		return SystemView{}, err
	}
	licenses, _ := c.system.Snapshot()
	return c.systemView(ctx, sys, table, licenses)
}

func (c *Console) systemView(ctx context.Context, sys models.System, table reporting.TablePage, licenses []models.License) (SystemView, error) {
	view := SystemView{System: sys, Table: table}

	if c.analytics == AnalyticsUpstream {
		analytics, err := c.reader.FetchAnalytics(ctx, sys)
		if err != nil {
			c.logFetchError(ViewSystem, err)
			return SystemView{}, fmt.Errorf("fetch %s analytics: %w", sys, err)
		}
		view.Distribution, view.Trend = reporting.ChartFromAnalytics(analytics)
		return view, nil
	}

	view.Distribution = reporting.Distribution(licenses, sys)
	view.Trend = reporting.Trend(licenses, sys, c.formatter.Location)
	return view, nil
}

// RefreshTickets fetches the ticket log and renders the requested page.
func (c *Console) RefreshTickets(ctx context.Context, page, size int) (reporting.TablePage, error) {
	token, _ := c.tickets.Begin(nil)
	tickets, err := c.reader.FetchTickets(ctx)
	if err != nil {
		c.logFetchError(ViewTickets, err)
		return reporting.TablePage{}, fmt.Errorf("fetch tickets: %w", err)
	}
	if err := c.tickets.Commit(token, tickets); err != nil {
		return reporting.TablePage{}, err
	}
	return c.tickets.Navigate(page, size, c.formatter)
}

// TicketsPage re-pages the ticket log.
func (c *Console) TicketsPage(page, size int) (reporting.TablePage, error) {
	return c.tickets.Navigate(page, size, c.formatter)
}

// State returns the state of the named view.
func (c *Console) State(name ViewName) (ViewState, error) {
	switch name {
	case ViewRecent:
		return c.recent.State(), nil
	case ViewReports:
		return c.reports.State(), nil
	case ViewSearch:
		return c.search.State(), nil
	case ViewSystem:
		return c.system.State(), nil
	case ViewTickets:
		return c.tickets.State(), nil
	}
	return ViewState{}, ErrUnknownView
}

// Export is a rendered CSV download.
type Export struct {
	Filename string
	Rows     int
	Content  []byte
}

// Export renders the records behind scope as CSV: full uses every license,
// filtered the reports view and system the system view with its scoped columns.
func (c *Console) Export(ctx context.Context, scope string) (Export, error) {
	var (
		licenses []models.License
		cols     reporting.Columns
		filename string
	)

	switch strings.ToLower(strings.TrimSpace(scope)) {
	case reporting.ScopeFull:
		records, loaded := c.recent.Snapshot()
		if !loaded {
			if _, err := c.RefreshDashboard(ctx, 0, 0); err != nil {
				return Export{}, err
			}
			records, _ = c.recent.Snapshot()
		}
		licenses, cols, filename = records, reporting.LicenseColumns, reporting.ExportFilename(reporting.ScopeFull)
	case reporting.ScopeFiltered:
		licenses, _ = c.reports.Snapshot()
		cols, filename = reporting.LicenseColumns, reporting.ExportFilename(reporting.ScopeFiltered)
	case reporting.ScopeSystem:
		sys := c.system.State().System
		if sys == "" {
			return Export{}, ErrNoSystemSelected
		}
		licenses, _ = c.system.Snapshot()
		cols, filename = c.system.Columns(), reporting.ExportFilename(string(sys))
	default:
		return Export{}, ErrUnknownView
	}

	if len(licenses) == 0 {
		return Export{}, ErrNothingToExport
	}

	var buf bytes.Buffer
	if err := reporting.WriteCSV(&buf, licenses, cols, c.formatter); err != nil {
		return Export{}, fmt.Errorf("render %s export: %w", scope, err)
	}
	return Export{Filename: filename, Rows: len(licenses), Content: buf.Bytes()}, nil
}

func (c *Console) logFetchError(view ViewName, err error) {
	logger.WithFields(map[string]interface{}{
		"view":  view,
		"error": err.Error(),
	}).Error("Record source fetch failed")
}
