package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuvraj-revolt-motors/license-tracker/dashboard"
	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/middleware"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
	"github.com/yuvraj-revolt-motors/license-tracker/services"
)

// errInvalidQuery 숫자가 아닌 page/page_size 쿼리
var errInvalidQuery = errors.New("invalid query parameter")

// statusFor 도메인 에러를 HTTP 상태 코드와 사용자 메시지로 변환
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, dashboard.ErrStaleFetch):
		return http.StatusConflict, "A newer request for this view is in progress"
	case errors.Is(err, dashboard.ErrNoSystemSelected):
		return http.StatusConflict, "No system selected"
	case errors.Is(err, reporting.ErrInvalidPageSize),
		errors.Is(err, models.ErrUnknownSystem),
		errors.Is(err, models.ErrDetailsMismatch),
		errors.Is(err, dashboard.ErrInvalidRequest),
		errors.Is(err, dashboard.ErrUnknownView),
		errors.Is(err, errInvalidQuery):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, dashboard.ErrNothingToExport):
		return http.StatusNotFound, "No data to export"
	case errors.Is(err, dashboard.ErrLicenseNotFound):
		return http.StatusNotFound, "License not found"
	case errors.Is(err, services.ErrReadOnlySource):
		return http.StatusNotImplemented, "The configured record source is read-only"
	}
	return http.StatusBadGateway, "Record source request failed"
}

// writeError 에러 응답 작성. 5xx는 ERROR, 4xx는 WARN으로 기록한다.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)

	entry := logger.WithFields(map[string]interface{}{
		"request_id": middleware.RequestID(r.Context()),
		"status":     status,
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("%s", message)
	} else {
		entry.Warn("%s", message)
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse(message, err))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse("Method not allowed", nil))
}

// pageParams page, page_size 쿼리 파싱. 없으면 0(변경 없음)
func pageParams(r *http.Request) (int, int, error) {
	page, err := intParam(r, "page")
	if err != nil {
		return 0, 0, err
	}
	size, err := intParam(r, "page_size")
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.Join(errInvalidQuery, errors.New(name+" must be a non-negative integer"))
	}
	return v, nil
}

func boolParam(r *http.Request, name string, fallback bool) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
