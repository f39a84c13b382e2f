package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/middleware"
)

// Export CSV 내보내기
// @Summary CSV 내보내기
// @Description full: 전체 라이선스, filtered: 보고서 필터 결과, system: 선택된 시스템 (시스템 관련 컬럼만)
// @Tags 내보내기
// @Produce text/csv
// @Security BearerAuth
// @Param scope path string true "내보내기 범위 (full, filtered, system)"
// @Success 200 {file} file "CSV 파일"
// @Failure 400 {object} models.APIResponse "알 수 없는 범위"
// @Failure 404 {object} models.APIResponse "내보낼 데이터 없음"
// @Failure 409 {object} models.APIResponse "선택된 시스템 없음"
// @Router /api/exports/{scope} [get]
func (h *ConsoleHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	scope := r.PathValue("scope")

	export, err := h.console.Export(r.Context(), scope)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, r, err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"request_id": middleware.RequestID(r.Context()),
		"scope":      scope,
		"rows":       export.Rows,
		"filename":   export.Filename,
	}).Info("CSV exported")

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Content)
}
