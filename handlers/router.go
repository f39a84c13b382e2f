package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yuvraj-revolt-motors/license-tracker/middleware"
)

// NewRouter 모든 API 라우트를 등록한 ServeMux 생성
func NewRouter(h *ConsoleHandler, health http.HandlerFunc, auth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// 공개 엔드포인트
	mux.HandleFunc("/health", middleware.ChainMiddleware(health, middleware.SetJSONHeader))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	api := func(handler http.HandlerFunc) http.HandlerFunc {
		return middleware.ChainMiddleware(
			handler,
			middleware.MetricsMiddleware,
			middleware.LoggingMiddleware,
			middleware.CORSMiddleware,
			auth,
			middleware.SetJSONHeader,
		)
	}

	// 뷰
	mux.HandleFunc("/api/dashboard", api(h.Dashboard))
	mux.HandleFunc("/api/views/recent", api(h.RecentPage))
	mux.HandleFunc("/api/views/reports", api(h.ReportsPage))
	mux.HandleFunc("/api/views/reports/filter", api(h.ReportsFilter))
	mux.HandleFunc("/api/views/search", api(h.Search))
	mux.HandleFunc("/api/views/system", api(h.SystemPage))
	mux.HandleFunc("/api/views/system/{system}", api(h.SelectSystem))
	mux.HandleFunc("/api/views/tickets", api(h.Tickets))

	// 내보내기
	mux.HandleFunc("/api/exports/{scope}", api(h.Export))

	// 라이선스/티켓 액션
	mux.HandleFunc("/api/licenses", api(h.CreateLicense))
	mux.HandleFunc("/api/licenses/{id}/remove", api(h.RemoveLicense))
	mux.HandleFunc("/api/licenses/{id}/reactivate", api(h.ReactivateLicense))
	mux.HandleFunc("/api/tickets/{id}", api(h.UpdateTicket))

	return mux
}
