package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

const sqlSourceName = "sql"

const licenseColumns = "`id`, `ticket_id`, `system`, `name`, `mobile`, `email`, `request_type`, " +
	"`assignment_date`, `expiry_date`, `status`, `details_json`, `removal_details_json`, " +
	"`attachment_data`, `created_at`, `updated_at`, `requested_date`, `requestor_name`"

// SQLSource는 업스트림 백엔드의 licenses/tickets 테이블을 직접 읽는 읽기 전용 소스입니다.
type SQLSource struct {
	db  SQLExecutor
	loc *time.Location
}

// NewSQLSource는 SQLSource를 생성합니다. loc은 분석용 월 버킷 계산에 쓰입니다.
func NewSQLSource(db SQLExecutor, loc *time.Location) *SQLSource {
	if loc == nil {
		loc = time.UTC
	}
	return &SQLSource{db: db, loc: loc}
}

// buildLicenseQuery 필터를 WHERE 절로 변환합니다.
func buildLicenseQuery(filter models.LicenseFilter) (string, []any) {
	query := "SELECT " + licenseColumns + " FROM `licenses` WHERE 1=1"
	args := make([]any, 0)

	if v := strings.TrimSpace(filter.System); v != "" {
		query += " AND `system` = ?"
		args = append(args, v)
	}
	if v := strings.TrimSpace(filter.Status); v != "" {
		query += " AND `status` = ?"
		args = append(args, v)
	}
	if v := strings.TrimSpace(filter.Search); v != "" {
		pattern := "%" + v + "%"
		query += " AND (`name` LIKE ? OR `email` LIKE ? OR `mobile` LIKE ?)"
		args = append(args, pattern, pattern, pattern)
	}
	if v := strings.TrimSpace(filter.DateRangeStart); v != "" {
		query += " AND `assignment_date` >= ?"
		args = append(args, v)
	}
	if v := strings.TrimSpace(filter.DateRangeEnd); v != "" {
		query += " AND `assignment_date` <= ?"
		args = append(args, v)
	}

	query += " ORDER BY `assignment_date` DESC"
	return query, args
}

// FetchLicenses 필터에 맞는 라이선스를 최신 배정일 순으로 반환합니다.
func (s *SQLSource) FetchLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error) {
	query, args := buildLicenseQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, observeSourceError(sqlSourceName, "fetch_licenses", fmt.Errorf("query licenses: %w", err))
	}
	defer rows.Close()

	licenses := make([]models.License, 0)
	for rows.Next() {
		license, err := scanLicense(rows)
		if err != nil {
			return nil, observeSourceError(sqlSourceName, "fetch_licenses", fmt.Errorf("scan license: %w", err))
		}
		licenses = append(licenses, license)
	}
	if err := rows.Err(); err != nil {
		return nil, observeSourceError(sqlSourceName, "fetch_licenses", err)
	}
	return licenses, nil
}

func scanLicense(rows *sql.Rows) (models.License, error) {
	var (
		l                                         models.License
		system                                    string
		mobile, email, requestType                sql.NullString
		assignmentDate, expiryDate, requestedDate sql.NullString
		detailsJSON, removalJSON, attachment      sql.NullString
		createdAt, updatedAt, requestorName       sql.NullString
	)
	if err := rows.Scan(
		&l.ID, &l.TicketID, &system, &l.Name, &mobile, &email, &requestType,
		&assignmentDate, &expiryDate, &l.Status, &detailsJSON, &removalJSON,
		&attachment, &createdAt, &updatedAt, &requestedDate, &requestorName,
	); err != nil {
		return models.License{}, err
	}

	l.System = models.System(system)
	l.Mobile = mobile.String
	l.Email = email.String
	l.RequestType = requestType.String
	l.AssignmentDate = assignmentDate.String
	l.ExpiryDate = expiryDate.String
	l.RequestedDate = requestedDate.String
	l.RequestorName = requestorName.String
	l.CreatedAt = createdAt.String
	l.UpdatedAt = updatedAt.String
	l.AttachmentData = attachment.String

	// 깨진 JSON은 빈 값으로 취급
	if detailsJSON.Valid && detailsJSON.String != "" {
		if err := json.Unmarshal([]byte(detailsJSON.String), &l.Details); err != nil {
			logger.Warn("Could not decode details_json for license %s: %v", l.ID, err)
			l.Details = models.Details{}
		}
	}
	if removalJSON.Valid && removalJSON.String != "" {
		var removal models.RemovalDetails
		if err := json.Unmarshal([]byte(removalJSON.String), &removal); err != nil {
			logger.Warn("Could not decode removal_details_json for license %s: %v", l.ID, err)
		} else if !removal.IsZero() {
			l.RemovalDetails = &removal
		}
	}
	return l, nil
}

// FetchTickets 모든 티켓을 최신순으로 반환합니다.
func (s *SQLSource) FetchTickets(ctx context.Context) ([]models.Ticket, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT `ticket_id`, `action_description`, `timestamp`, `status`, `notes` FROM `tickets` ORDER BY `timestamp` DESC")
	if err != nil {
		return nil, observeSourceError(sqlSourceName, "fetch_tickets", fmt.Errorf("query tickets: %w", err))
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		var (
			t                models.Ticket
			timestamp, notes sql.NullString
		)
		if err := rows.Scan(&t.TicketID, &t.ActionDescription, &timestamp, &t.Status, &notes); err != nil {
			return nil, observeSourceError(sqlSourceName, "fetch_tickets", fmt.Errorf("scan ticket: %w", err))
		}
		t.Timestamp = timestamp.String
		t.Notes = notes.String
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// FetchAnalytics Active 라이선스를 읽어 분포/추이를 계산합니다.
func (s *SQLSource) FetchAnalytics(ctx context.Context, system models.System) (models.SystemAnalytics, error) {
	licenses, err := s.FetchLicenses(ctx, models.LicenseFilter{
		System: string(system),
		Status: models.LicenseStatusActive,
	})
	if err != nil {
		return models.SystemAnalytics{}, err
	}

	analytics := models.SystemAnalytics{
		Success:      true,
		Distribution: make([]models.CategoryCount, 0),
		Trend:        make([]models.MonthCount, 0),
	}
	for _, p := range reporting.Distribution(licenses, system).Points {
		analytics.Distribution = append(analytics.Distribution, models.CategoryCount{Category: p.Label, Count: p.Count})
	}
	for _, p := range reporting.Trend(licenses, system, s.loc).Points {
		analytics.Trend = append(analytics.Trend, models.MonthCount{Month: p.Label, Count: p.Count})
	}
	return analytics, nil
}

func (s *SQLSource) CreateLicense(context.Context, models.CreateLicenseRequest) (models.ActionResult, error) {
	return readOnly()
}

func (s *SQLSource) UpdateLicense(context.Context, string, models.UpdateLicenseRequest) (models.ActionResult, error) {
	return readOnly()
}

func (s *SQLSource) ReactivateLicense(context.Context, string, models.ReactivateLicenseRequest) (models.ActionResult, error) {
	return readOnly()
}

func (s *SQLSource) CreateTicket(context.Context, models.CreateTicketRequest) (models.ActionResult, error) {
	return readOnly()
}

func (s *SQLSource) UpdateTicket(context.Context, string, models.UpdateTicketRequest) (models.ActionResult, error) {
	return readOnly()
}

func readOnly() (models.ActionResult, error) {
	return models.ActionResult{Success: false, Message: ErrReadOnlySource.Error()}, ErrReadOnlySource
}
