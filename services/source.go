package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

var (
	// ErrReadOnlySource는 쓰기를 지원하지 않는 레코드 소스에 변경 요청이 들어왔을 때 반환됩니다.
	ErrReadOnlySource = errors.New("record source is read-only")
	// ErrUpstream은 업스트림 API가 실패 응답을 돌려줬을 때 반환됩니다.
	ErrUpstream = errors.New("upstream request failed")
)

var sourceErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "license_tracker_source_errors_total",
		Help: "Failed calls to the license record source.",
	},
	[]string{"source", "operation"},
)

// LicenseReader는 대시보드가 소비하는 레코드 조회 계약입니다.
type LicenseReader interface {
	FetchLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error)
	FetchTickets(ctx context.Context) ([]models.Ticket, error)
	FetchAnalytics(ctx context.Context, system models.System) (models.SystemAnalytics, error)
}

// LicenseWriter는 라이선스/티켓 변경 계약입니다.
type LicenseWriter interface {
	CreateLicense(ctx context.Context, req models.CreateLicenseRequest) (models.ActionResult, error)
	UpdateLicense(ctx context.Context, id string, patch models.UpdateLicenseRequest) (models.ActionResult, error)
	ReactivateLicense(ctx context.Context, id string, req models.ReactivateLicenseRequest) (models.ActionResult, error)
	CreateTicket(ctx context.Context, req models.CreateTicketRequest) (models.ActionResult, error)
	UpdateTicket(ctx context.Context, ticketID string, patch models.UpdateTicketRequest) (models.ActionResult, error)
}

// RecordSource는 조회와 변경을 모두 제공하는 소스입니다.
type RecordSource interface {
	LicenseReader
	LicenseWriter
}

func observeSourceError(source, operation string, err error) error {
	if err != nil {
		sourceErrorsTotal.WithLabelValues(source, operation).Inc()
	}
	return err
}
