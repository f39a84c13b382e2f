package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yuvraj-revolt-motors/license-tracker/dashboard"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

// ConsoleHandler 대시보드 뷰/액션/내보내기 HTTP 요청을 처리한다.
type ConsoleHandler struct {
	console *dashboard.Console
}

// NewConsoleHandler 콘솔 핸들러 생성
func NewConsoleHandler(console *dashboard.Console) *ConsoleHandler {
	return &ConsoleHandler{console: console}
}

// Dashboard 대시보드 새로고침
// @Summary 대시보드 조회
// @Description 전체 라이선스를 다시 조회해 용량 카드와 최근 할당 테이블을 반환합니다
// @Tags 대시보드
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지 (기본 1)"
// @Param page_size query int false "페이지 크기 (10, 20, 50, 100, 200)"
// @Success 200 {object} models.APIResponse{data=dashboard.Dashboard} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 409 {object} models.APIResponse "더 최신 요청 진행 중"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/dashboard [get]
func (h *ConsoleHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dash, err := h.console.RefreshDashboard(r.Context(), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Dashboard refreshed", dash))
}

// RecentPage 최근 할당 테이블 페이지 이동 (재조회 없음)
// @Summary 최근 할당 페이지 이동
// @Tags 대시보드
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지"
// @Param page_size query int false "페이지 크기"
// @Success 200 {object} models.APIResponse{data=dashboard.Dashboard} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Router /api/views/recent [get]
func (h *ConsoleHandler) RecentPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	dash, err := h.console.DashboardPage(page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Recent licenses", dash))
}

// ReportsFilter 보고서 필터 적용
// @Summary 보고서 필터 적용
// @Description 필터로 라이선스를 다시 조회하고 첫 페이지를 반환합니다
// @Tags 보고서
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ViewFilterRequest true "필터"
// @Success 200 {object} models.PaginatedResponse{data=reporting.TablePage,meta=dashboard.ViewState} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/views/reports/filter [post]
func (h *ConsoleHandler) ReportsFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	req, ok := decodeFilter(w, r)
	if !ok {
		return
	}

	table, err := h.console.ApplyReportFilter(r.Context(), req.LicenseFilter, req.PageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writePage(w, r, dashboard.ViewReports, "Report filtered", table)
}

// ReportsPage 보고서 페이지 이동
// @Summary 보고서 페이지 이동
// @Tags 보고서
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지"
// @Param page_size query int false "페이지 크기"
// @Success 200 {object} models.PaginatedResponse{data=reporting.TablePage,meta=dashboard.ViewState} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Router /api/views/reports [get]
func (h *ConsoleHandler) ReportsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	table, err := h.console.ReportsPage(page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writePage(w, r, dashboard.ViewReports, "Report page", table)
}

// Search 라이선스 제거용 검색 (POST: 검색 실행, GET: 페이지 이동)
// @Summary 라이선스 검색
// @Description 이름/이메일/휴대폰 번호로 검색합니다
// @Tags 라이선스
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ViewFilterRequest true "검색 조건"
// @Success 200 {object} models.PaginatedResponse{data=reporting.TablePage,meta=dashboard.ViewState} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/views/search [post]
func (h *ConsoleHandler) Search(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		req, ok := decodeFilter(w, r)
		if !ok {
			return
		}
		table, err := h.console.Search(r.Context(), req.LicenseFilter, req.PageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.writePage(w, r, dashboard.ViewSearch, "Search results", table)
	case http.MethodGet:
		page, size, err := pageParams(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		table, err := h.console.SearchPage(page, size)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.writePage(w, r, dashboard.ViewSearch, "Search page", table)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

// SelectSystem 시스템 뷰 선택
// @Summary 시스템 뷰 선택
// @Description 시스템별 라이선스 테이블과 분포/추이 차트를 반환합니다
// @Tags 시스템
// @Produce json
// @Security BearerAuth
// @Param system path string true "시스템 (DMS, LSQ, CRM, ZOHO)"
// @Param page_size query int false "페이지 크기"
// @Success 200 {object} models.APIResponse{data=dashboard.SystemView} "조회 성공"
// @Failure 400 {object} models.APIResponse "알 수 없는 시스템"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/views/system/{system} [post]
func (h *ConsoleHandler) SelectSystem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	size, err := intParam(r, "page_size")
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.console.SelectSystem(r.Context(), r.PathValue("system"), size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("System view loaded", view))
}

// SystemPage 시스템 뷰 페이지 이동
// @Summary 시스템 뷰 페이지 이동
// @Tags 시스템
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지"
// @Param page_size query int false "페이지 크기"
// @Success 200 {object} models.APIResponse{data=dashboard.SystemView} "조회 성공"
// @Failure 409 {object} models.APIResponse "선택된 시스템 없음"
// @Router /api/views/system [get]
func (h *ConsoleHandler) SystemPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.console.SystemPage(r.Context(), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("System page", view))
}

// Tickets 티켓 로그 조회. refresh=false면 마지막 조회 결과로 페이지만 이동한다.
// @Summary 티켓 로그 조회
// @Tags 티켓
// @Produce json
// @Security BearerAuth
// @Param page query int false "페이지"
// @Param page_size query int false "페이지 크기"
// @Param refresh query bool false "다시 조회 (기본 true)"
// @Success 200 {object} models.PaginatedResponse{data=reporting.TablePage,meta=dashboard.ViewState} "조회 성공"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/views/tickets [get]
func (h *ConsoleHandler) Tickets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if boolParam(r, "refresh", true) {
		table, err := h.console.RefreshTickets(r.Context(), page, size)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.writePage(w, r, dashboard.ViewTickets, "Tickets retrieved", table)
		return
	}

	table, err := h.console.TicketsPage(page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writePage(w, r, dashboard.ViewTickets, "Ticket page", table)
}

func (h *ConsoleHandler) writePage(w http.ResponseWriter, r *http.Request, view dashboard.ViewName, message string, table interface{}) {
	state, err := h.console.State(view)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.PageResponse(message, table, state))
}

func decodeFilter(w http.ResponseWriter, r *http.Request) (models.ViewFilterRequest, bool) {
	var req models.ViewFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return req, false
	}
	return req, true
}
