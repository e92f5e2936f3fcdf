package karma

import (
	"threadboard/internal/domain/karma/handler"
	"threadboard/internal/domain/karma/repository"
	"threadboard/internal/domain/karma/service"
	"threadboard/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// KarmaModule 积分排行榜模块
type KarmaModule struct{}

func init() {
	registry.Register(&KarmaModule{})
}

func (m *KarmaModule) Name() string {
	return "karma"
}

func (m *KarmaModule) Priority() int {
	return 10
}

func (m *KarmaModule) Init(ctx *registry.ModuleContext) error {
	cfg := ctx.Config.Karma

	// 1. 依赖注入
	kRepo := repository.NewKarmaRepository(ctx.SQLX)
	var kService service.LeaderboardService = service.NewLeaderboardService(kRepo, service.Defaults{
		Window: cfg.Window,
		Limit:  cfg.Limit,
	}, nil)
	if cfg.CacheTTL > 0 {
		kService = service.NewCachedLeaderboardService(kService, ctx.Cache, cfg.CacheTTL)
	}
	kHandler := handler.NewLeaderboardHandler(kService)

	// 2. 路由注册
	setupRoutes(ctx.Router, kHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.LeaderboardHandler) {
	g := r.Group("/api")
	g.GET("/leaderboard", h.GetLeaderboard)
	g.GET("/karma/:user", h.GetUserKarma)
}
