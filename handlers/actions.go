package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/middleware"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

// CreateLicense 라이선스 추가
// @Summary 라이선스 추가
// @Description 라이선스를 생성하고 Closed 상태의 추가 티켓을 기록합니다
// @Tags 라이선스
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLicenseRequest true "라이선스 정보"
// @Success 201 {object} models.APIResponse{data=models.ActionResult} "생성 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 501 {object} models.APIResponse "읽기 전용 소스"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/licenses [post]
func (h *ConsoleHandler) CreateLicense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req models.CreateLicenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.console.AddLicense(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.logAction(r, "License added", map[string]interface{}{
		"system": req.System,
		"name":   req.Name,
	})
	writeJSON(w, http.StatusCreated, models.SuccessResponse("License added successfully", result))
}

// RemoveLicense 라이선스 비활성화
// @Summary 라이선스 제거 (비활성화)
// @Description 상태를 Inactive로 바꾸고 제거 정보를 저장한 뒤 제거 티켓을 기록합니다
// @Tags 라이선스
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "라이선스 ID"
// @Param request body models.RemoveLicenseRequest true "제거 정보"
// @Success 200 {object} models.APIResponse{data=models.ActionResult} "제거 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 404 {object} models.APIResponse "라이선스 없음"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/licenses/{id}/remove [put]
func (h *ConsoleHandler) RemoveLicense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, http.MethodPut)
		return
	}
	id := r.PathValue("id")
	var req models.RemoveLicenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.console.RemoveLicense(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.logAction(r, "License removed", map[string]interface{}{
		"license_id": id,
		"reason":     req.RemovalDetails.Reason,
	})
	writeJSON(w, http.StatusOK, models.SuccessResponse("License removed successfully", result))
}

// ReactivateLicense 라이선스 재활성화
// @Summary 라이선스 재활성화
// @Tags 라이선스
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "라이선스 ID"
// @Param request body models.ReactivateLicenseRequest true "재활성화 정보"
// @Success 200 {object} models.APIResponse{data=models.ActionResult} "재활성화 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/licenses/{id}/reactivate [put]
func (h *ConsoleHandler) ReactivateLicense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, http.MethodPut)
		return
	}
	id := r.PathValue("id")
	var req models.ReactivateLicenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.console.ReactivateLicense(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.logAction(r, "License reactivated", map[string]interface{}{
		"license_id":          id,
		"new_assignment_date": req.NewAssignmentDate,
	})
	writeJSON(w, http.StatusOK, models.SuccessResponse("License reactivated successfully", result))
}

// UpdateTicket 티켓 상태/메모 수정
// @Summary 티켓 수정
// @Tags 티켓
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "티켓 ID"
// @Param request body models.UpdateTicketRequest true "상태 (Open, Pending, Closed) 및 메모"
// @Success 200 {object} models.APIResponse{data=models.ActionResult} "수정 성공"
// @Failure 400 {object} models.APIResponse "잘못된 요청"
// @Failure 502 {object} models.APIResponse "레코드 소스 오류"
// @Router /api/tickets/{id} [put]
func (h *ConsoleHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, http.MethodPut)
		return
	}
	id := r.PathValue("id")
	var req models.UpdateTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.console.UpdateTicket(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.logAction(r, "Ticket updated", map[string]interface{}{
		"ticket_id": id,
		"status":    req.Status,
	})
	writeJSON(w, http.StatusOK, models.SuccessResponse("Ticket updated successfully", result))
}

func (h *ConsoleHandler) logAction(r *http.Request, message string, fields map[string]interface{}) {
	fields["request_id"] = middleware.RequestID(r.Context())
	if user := middleware.Username(r.Context()); user != "" {
		fields["operator"] = user
	}
	logger.WithFields(fields).Info("%s", message)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return false
	}
	return true
}
