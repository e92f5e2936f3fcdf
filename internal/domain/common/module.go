package common

import (
	"context"
	"net/http"
	"threadboard/internal/pkg/registry"
	"threadboard/pkg/database"
	"threadboard/pkg/metrics"
	"threadboard/pkg/response"
	"time"

	_ "threadboard/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CommonModule 健康检查、指标、文档
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	sqlDB, err := ctx.DB.DB()
	if err != nil {
		return err
	}
	monitor := database.NewPoolMonitor(sqlDB, metrics.GetGlobalCollector(), 0)
	setupRoutes(ctx.Router, &healthChecker{db: monitor, redis: ctx.Redis})
	return nil
}

func setupRoutes(r *gin.Engine, h *healthChecker) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

type healthChecker struct {
	db    *database.PoolMonitor
	redis *redis.Client
}

// HealthStatus 依赖状态
type HealthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Health 健康检查
// @Summary 健康检查
// @Tags Common
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *healthChecker) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := HealthStatus{Database: "up", Redis: "disabled"}
	healthy := true

	if err := h.db.HealthCheck(ctx); err != nil {
		status.Database = "down"
		healthy = false
	}
	// Redis 只用于缓存，不可用时不影响整体状态
	if h.redis != nil {
		status.Redis = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status.Redis = "down"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:    response.ErrServerInternal,
			Message: "unhealthy",
			Data:    status,
		})
		return
	}
	response.Success(c, status)
}
