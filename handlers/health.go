package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/services"
)

// NewHealthHandler 헬스체크 핸들러 생성. pinger가 있으면 데이터베이스 연결도 확인한다.
// @Summary 헬스체크
// @Tags 시스템
// @Produce json
// @Success 200 {object} models.APIResponse "정상"
// @Failure 503 {object} models.APIResponse "데이터베이스 연결 실패"
// @Router /health [get]
func NewHealthHandler(pinger services.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse("Database unreachable", err))
				return
			}
		}
		writeJSON(w, http.StatusOK, models.SuccessResponse("Server is healthy", nil))
	}
}
