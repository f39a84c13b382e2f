package scheduler

import (
	"context"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/dashboard"
	"github.com/yuvraj-revolt-motors/license-tracker/logger"
)

// Refresher 대시보드 스냅샷을 다시 조회하는 대상
type Refresher interface {
	RefreshDashboard(ctx context.Context, page, size int) (dashboard.Dashboard, error)
}

// StartScheduler 스케줄러 시작. interval이 0 이하면 아무것도 하지 않는다.
// ctx가 취소되면 고루틴이 종료되며, 반환된 채널이 닫힌다.
func StartScheduler(ctx context.Context, r Refresher, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		logger.Info("Scheduler disabled")
		close(done)
		return done
	}

	logger.Info("Scheduler started (interval %s)", interval)

	go func() {
		defer close(done)

		// 시작 직후 한 번 실행
		RefreshDashboard(ctx, r)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case <-ticker.C:
				logger.Debug("Scheduler tick: Running RefreshDashboard")
				RefreshDashboard(ctx, r)
			}
		}
	}()
	return done
}

// RefreshDashboard 대시보드 새로고침 후 시스템별 점유 현황을 기록한다.
// 용량을 초과한 시스템은 WARN으로 남긴다.
func RefreshDashboard(ctx context.Context, r Refresher) {
	dash, err := r.RefreshDashboard(ctx, 0, 0)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Scheduled dashboard refresh failed")
		return
	}

	for _, card := range dash.Capacity.Cards {
		fields := map[string]interface{}{
			"system":    card.System,
			"occupied":  card.Occupied,
			"total":     card.Total,
			"available": card.Available,
		}
		if card.Available < 0 {
			logger.WithFields(fields).Warn("License capacity exceeded")
			continue
		}
		logger.WithFields(fields).Debug("License capacity")
	}

	logger.WithFields(map[string]interface{}{
		"licenses": dash.Recent.Pagination.TotalCount,
	}).Info("Dashboard refreshed")
}
