package services

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
)

var (
	analyticsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "license_tracker_analytics_cache_hits_total",
		Help: "Analytics lookups served from the TTL cache.",
	})
	analyticsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "license_tracker_analytics_cache_misses_total",
		Help: "Analytics lookups forwarded to the record source.",
	})
)

// CachedAnalytics는 FetchAnalytics 결과를 시스템별로 TTL 동안 캐시합니다.
// 라이선스/티켓 조회는 그대로 위임합니다.
type CachedAnalytics struct {
	LicenseReader
	cache *expirable.LRU[models.System, models.SystemAnalytics]
}

// NewCachedAnalytics는 최대 size개 항목을 ttl 동안 유지하는 캐시를 생성합니다.
func NewCachedAnalytics(next LicenseReader, size int, ttl time.Duration) *CachedAnalytics {
	if size <= 0 {
		size = len(models.Systems)
	}
	return &CachedAnalytics{
		LicenseReader: next,
		cache:         expirable.NewLRU[models.System, models.SystemAnalytics](size, nil, ttl),
	}
}

// FetchAnalytics 캐시 히트 시 원본을 호출하지 않습니다. 실패 결과는 캐시하지 않습니다.
func (c *CachedAnalytics) FetchAnalytics(ctx context.Context, system models.System) (models.SystemAnalytics, error) {
	if v, ok := c.cache.Get(system); ok {
		analyticsCacheHits.Inc()
		return v, nil
	}
	analyticsCacheMisses.Inc()

	v, err := c.LicenseReader.FetchAnalytics(ctx, system)
	if err != nil {
		return models.SystemAnalytics{}, err
	}
	c.cache.Add(system, v)
	return v, nil
}

// Invalidate 변경 작업 이후 캐시를 비웁니다.
func (c *CachedAnalytics) Invalidate() {
	c.cache.Purge()
}
