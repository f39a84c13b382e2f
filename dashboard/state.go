// Package dashboard owns the operator console: one controller per table view,
// each holding its own paging state and latest fetched snapshot.
package dashboard

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

var (
	// ErrStaleFetch is returned when a newer fetch was issued for the same view
	// before this one resolved. The result is discarded.
	ErrStaleFetch = errors.New("fetch superseded by a newer request")
	// ErrUnknownView is returned for a view or export scope that does not exist.
	ErrUnknownView = errors.New("unknown view")
	// ErrNothingToExport is returned when an export would contain no records.
	ErrNothingToExport = errors.New("no data to export")
	// ErrNoSystemSelected is returned when the system view is paged before a system was chosen.
	ErrNoSystemSelected = errors.New("no system selected")
	// ErrLicenseNotFound is returned when an action names a license that is not loaded upstream.
	ErrLicenseNotFound = errors.New("license not found")
	// ErrInvalidRequest is returned when an action payload is missing required fields.
	ErrInvalidRequest = errors.New("invalid request")
)

var staleFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "license_tracker_stale_fetches_total",
		Help: "Fetch results discarded because a newer fetch was issued for the view.",
	},
	[]string{"view"},
)

// ViewName identifies a table context.
type ViewName string

const (
	ViewRecent  ViewName = "recent"
	ViewReports ViewName = "reports"
	ViewSearch  ViewName = "search"
	ViewSystem  ViewName = "system"
	ViewTickets ViewName = "tickets"
)

// ViewState paging, filter and system selection of one view.
type ViewState struct {
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Filter   models.LicenseFilter `json:"filter"`
	System   models.System        `json:"system,omitempty"`
}

// NewViewState starts on page 1 with the default page size.
func NewViewState() ViewState {
	return ViewState{Page: 1, PageSize: reporting.DefaultPageSize}
}

// Clamp keeps Page within [1, max(1, pageCount)] for total items.
func (s ViewState) Clamp(total int) ViewState {
	if s.PageSize < 1 {
		s.PageSize = reporting.DefaultPageSize
	}
	s.Page = reporting.ClampPage(s.Page, total, s.PageSize)
	return s
}

// SetPageSize switches to size and clamps the current page rather than resetting it.
func (s ViewState) SetPageSize(size, total int) (ViewState, error) {
	if err := reporting.ValidatePageSize(size); err != nil {
		return s, err
	}
	s.PageSize = size
	return s.Clamp(total), nil
}

// SetPage moves to page, clamped for total items.
func (s ViewState) SetPage(page, total int) ViewState {
	s.Page = page
	return s.Clamp(total)
}

// Navigate applies an optional page size change followed by an optional page
// change. Zero leaves the corresponding value as it is.
func (s ViewState) Navigate(page, size, total int) (ViewState, error) {
	var err error
	if size != 0 && size != s.PageSize {
		if s, err = s.SetPageSize(size, total); err != nil {
			return s, err
		}
	}
	if page != 0 {
		s = s.SetPage(page, total)
	}
	return s.Clamp(total), nil
}
