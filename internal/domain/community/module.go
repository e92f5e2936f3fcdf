package community

import (
	"threadboard/internal/domain/community/handler"
	"threadboard/internal/domain/community/repository"
	"threadboard/internal/domain/community/service"
	karmaRepo "threadboard/internal/domain/karma/repository"
	karmaService "threadboard/internal/domain/karma/service"
	"threadboard/internal/pkg/middleware"
	"threadboard/internal/pkg/registry"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// CommunityModule 帖子、评论、点赞模块
type CommunityModule struct{}

func init() {
	registry.Register(&CommunityModule{})
}

func (m *CommunityModule) Name() string {
	return "community"
}

func (m *CommunityModule) Priority() int {
	return 20
}

func (m *CommunityModule) Init(ctx *registry.ModuleContext) error {
	cfg := ctx.Config

	// 1. 依赖注入
	postRepo := repository.NewPostRepository(ctx.DB)
	commentRepo := repository.NewCommentRepository(ctx.DB)
	likeRepo := repository.NewLikeRepository(ctx.DB, karmaRepo.NewWriter())

	var listeners []service.KarmaListener
	if cfg.Karma.CacheTTL > 0 {
		listeners = append(listeners, karmaService.NewLeaderboardInvalidator(ctx.Cache))
	}

	commentService := service.NewCommentService(postRepo, commentRepo)
	postService := service.NewPostService(postRepo, commentService, cfg.App.FeedLimit)
	likeService := service.NewLikeService(likeRepo, listeners...)
	h := handler.NewCommunityHandler(postService, commentService, likeService)

	// 2. 路由注册
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.QPS), cfg.RateLimit.Burst)
	setupRoutes(ctx.Router, h, middleware.RateLimitMiddleware(limiter))

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommunityHandler, limit gin.HandlerFunc) {
	g := r.Group("/api")

	// 读接口
	g.GET("/posts", h.ListPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/:id/liked", h.PostLiked)
	g.GET("/comments", h.ListComments)
	g.GET("/comments/:id", h.GetComment)
	g.GET("/comments/:id/liked", h.CommentLiked)

	// 写接口按 IP 限流
	w := g.Group("")
	w.Use(limit)
	{
		w.POST("/posts", h.CreatePost)
		w.POST("/posts/:id/like", h.LikePost)
		w.POST("/posts/:id/unlike", h.UnlikePost)
		w.POST("/comments", h.CreateComment)
		w.POST("/comments/:id/like", h.LikeComment)
		w.POST("/comments/:id/unlike", h.UnlikeComment)
	}
}
