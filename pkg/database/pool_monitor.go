package database

import (
	"context"
	"database/sql"
	"fmt"
	"threadboard/pkg/metrics"
	"time"
)

// PoolMonitor 定期把连接池状态写入指标，并提供健康检查
type PoolMonitor struct {
	db        *sql.DB
	collector *metrics.MetricsCollector
	interval  time.Duration
}

func NewPoolMonitor(db *sql.DB, collector *metrics.MetricsCollector, interval time.Duration) *PoolMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &PoolMonitor{db: db, collector: collector, interval: interval}
}

// Run 阻塞直到 ctx 取消
func (pm *PoolMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(pm.interval)
	defer ticker.Stop()

	pm.collect()
	for {
		select {
		case <-ticker.C:
			pm.collect()
		case <-ctx.Done():
			return
		}
	}
}

func (pm *PoolMonitor) collect() {
	stats := pm.db.Stats()
	pm.collector.UpdateDBConnections(stats.InUse, stats.Idle)
}

// HealthCheck 健康检查
func (pm *PoolMonitor) HealthCheck(ctx context.Context) error {
	if err := pm.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	return nil
}
