package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

const httpSourceName = "http"

// HTTPSource는 업스트림 라이선스 REST API(/api/licenses, /api/tickets, /api/<sys>_analytics)를 호출합니다.
type HTTPSource struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPSource는 baseURL(예: http://127.0.0.1:7878/api)을 대상으로 하는 소스를 생성합니다.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// upstreamError 업스트림 오류 응답 본문
type upstreamError struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FetchLicenses GET /licenses
func (s *HTTPSource) FetchLicenses(ctx context.Context, filter models.LicenseFilter) ([]models.License, error) {
	var licenses []models.License
	err := s.do(ctx, http.MethodGet, "/licenses", filter.Query(), nil, &licenses)
	if err != nil {
		return nil, observeSourceError(httpSourceName, "fetch_licenses", fmt.Errorf("fetch licenses: %w", err))
	}
	if licenses == nil {
		licenses = []models.License{}
	}
	return licenses, nil
}

// FetchTickets GET /tickets
func (s *HTTPSource) FetchTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := s.do(ctx, http.MethodGet, "/tickets", nil, nil, &tickets); err != nil {
		return nil, observeSourceError(httpSourceName, "fetch_tickets", fmt.Errorf("fetch tickets: %w", err))
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

// FetchAnalytics GET /<system>_analytics
func (s *HTTPSource) FetchAnalytics(ctx context.Context, system models.System) (models.SystemAnalytics, error) {
	var analytics models.SystemAnalytics
	if err := s.do(ctx, http.MethodGet, "/"+system.Key()+"_analytics", nil, nil, &analytics); err != nil {
		return models.SystemAnalytics{}, observeSourceError(httpSourceName, "fetch_analytics", fmt.Errorf("fetch %s analytics: %w", system, err))
	}
	if !analytics.Success {
		return models.SystemAnalytics{}, observeSourceError(httpSourceName, "fetch_analytics", fmt.Errorf("fetch %s analytics: %w", system, ErrUpstream))
	}
	return analytics, nil
}

// createLicensePayload 업스트림은 details_json 키로 상세 정보를 읽습니다.
type createLicensePayload struct {
	models.CreateLicenseRequest
	DetailsJSON models.Details `json:"details_json"`
}

// CreateLicense POST /licenses
func (s *HTTPSource) CreateLicense(ctx context.Context, req models.CreateLicenseRequest) (models.ActionResult, error) {
	payload := createLicensePayload{CreateLicenseRequest: req, DetailsJSON: req.Details}
	return s.action(ctx, http.MethodPost, "/licenses", payload, "create_license")
}

// UpdateLicense PUT /licenses/{id}
func (s *HTTPSource) UpdateLicense(ctx context.Context, id string, patch models.UpdateLicenseRequest) (models.ActionResult, error) {
	return s.action(ctx, http.MethodPut, "/licenses/"+url.PathEscape(id), patch, "update_license")
}

// ReactivateLicense PUT /licenses/{id}/reactivate
func (s *HTTPSource) ReactivateLicense(ctx context.Context, id string, req models.ReactivateLicenseRequest) (models.ActionResult, error) {
	return s.action(ctx, http.MethodPut, "/licenses/"+url.PathEscape(id)+"/reactivate", req, "reactivate_license")
}

// CreateTicket POST /tickets
func (s *HTTPSource) CreateTicket(ctx context.Context, req models.CreateTicketRequest) (models.ActionResult, error) {
	return s.action(ctx, http.MethodPost, "/tickets", req, "create_ticket")
}

// UpdateTicket PUT /tickets/{id}
func (s *HTTPSource) UpdateTicket(ctx context.Context, ticketID string, patch models.UpdateTicketRequest) (models.ActionResult, error) {
	return s.action(ctx, http.MethodPut, "/tickets/"+url.PathEscape(ticketID), patch, "update_ticket")
}

func (s *HTTPSource) action(ctx context.Context, method, path string, body any, operation string) (models.ActionResult, error) {
	var result models.ActionResult
	if err := s.do(ctx, method, path, nil, body, &result); err != nil {
		return models.ActionResult{Success: false, Message: err.Error()}, observeSourceError(httpSourceName, operation, fmt.Errorf("%s: %w", operation, err))
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "upstream rejected the request"
		}
		return result, observeSourceError(httpSourceName, operation, fmt.Errorf("%s: %w: %s", operation, ErrUpstream, msg))
	}
	return result, nil
}

// do 요청을 보내고 2xx 응답 본문을 out으로 디코딩합니다.
func (s *HTTPSource) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := s.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var upstream upstreamError
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &upstream) == nil && upstream.Message != "" {
			msg = upstream.Message
			if upstream.Error != "" {
				msg += ": " + upstream.Error
			}
		}
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
