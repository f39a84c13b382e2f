package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/yuvraj-revolt-motors/license-tracker/config"
	"github.com/yuvraj-revolt-motors/license-tracker/dashboard"
	"github.com/yuvraj-revolt-motors/license-tracker/database"
	_ "github.com/yuvraj-revolt-motors/license-tracker/docs" // Swagger 문서
	"github.com/yuvraj-revolt-motors/license-tracker/handlers"
	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/middleware"
	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
	"github.com/yuvraj-revolt-motors/license-tracker/scheduler"
	"github.com/yuvraj-revolt-motors/license-tracker/services"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

// @title License Tracker API
// @version 1.0
// @description 시스템별 라이선스 할당 추적 대시보드

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT 토큰을 입력하세요. 형식: Bearer {token}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}

	// 로거 초기화
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Fatal("Invalid log level: %v", err)
	}
	logConfig := logger.Config{
		Level:      level,
		LogDir:     cfg.Log.Dir,
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxAge:     7,                // 7일
		UseColor:   true,
		ShowCaller: false,
	}
	if err := logger.Initialize(logConfig); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}

	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Info("🚀 License Tracker Starting")
	logger.Info("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	loc := utils.LoadLocation(cfg.Display.Timezone)
	formatter := reporting.Formatter{Location: loc, DateTimeLayout: cfg.Display.DateTimeLayout}

	// 레코드 소스 선택
	var (
		source services.RecordSource
		pinger services.Pinger
	)
	switch cfg.Source.Kind {
	case config.SourceSQL:
		if err := database.Initialize(cfg.Source.DBDriver, cfg.Source.DSN); err != nil {
			logger.Fatal("Failed to initialize database: %v", err)
		}
		defer database.Close()

		sqlSource := services.NewSQLSource(database.DB, loc)
		source, pinger = sqlSource, sqlSource
		logger.Info("Record source: %s database (read-only)", cfg.Source.DBDriver)
	default:
		source = services.NewHTTPSource(cfg.Source.BaseURL, cfg.Source.Timeout)
		logger.Info("Record source: %s", cfg.Source.BaseURL)
	}

	reader := services.NewCachedAnalytics(source, cfg.Cache.Size, cfg.Cache.TTL)
	console := dashboard.NewConsole(reader, source, dashboard.Options{
		Formatter:     formatter,
		Capacity:      cfg.Capacity,
		AnalyticsMode: cfg.Source.Analytics,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 스케줄러 시작 (대시보드 주기적 새로고침)
	schedulerDone := scheduler.StartScheduler(ctx, console, cfg.Refresh.Interval)

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("LICENSE_TRACKER_JWT_SECRET is not set: API authentication is disabled")
	}
	mux := handlers.NewRouter(
		handlers.NewConsoleHandler(console),
		handlers.NewHealthHandler(pinger),
		middleware.NewAuthMiddleware(cfg.Auth.JWTSecret),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🌐 Server listening on http://%s", cfg.Server.Addr())
		logger.Info("📖 Swagger UI: http://%s/swagger/index.html", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown: %v", err)
	}
	<-schedulerDone

	logger.Info("Server stopped")
}
