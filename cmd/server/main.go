// @title Threadboard API
// @version 1.0
// @description Threaded discussions with likes and a karma leaderboard.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	_ "threadboard/internal/domain/common"
	_ "threadboard/internal/domain/community"
	_ "threadboard/internal/domain/karma"
	"threadboard/internal/pkg/config"
	"threadboard/internal/pkg/middleware"
	"threadboard/internal/pkg/registry"
	"threadboard/pkg/cache"
	"threadboard/pkg/database"
	"threadboard/pkg/logger"
	"threadboard/pkg/metrics"
	"threadboard/pkg/snowflake"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	logger.Init(cfg.Log.Level)
	defer logger.Sync()

	if err := snowflake.Init(cfg.Snowflake.Node); err != nil {
		logger.Log.Fatal("init snowflake", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, sqlxDB, err := database.InitDatabase(cfg.Database, cfg.App.Debug)
	if err != nil {
		logger.Log.Fatal("init database", zap.Error(err))
	}
	defer sqlxDB.Close()

	// Redis 只承担排行榜缓存，不可用时退回进程内缓存
	var cacheService cache.CacheService
	rdb, err := database.InitRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		rdb = nil
		cacheService = cache.NewMemoryCache()
	} else {
		defer rdb.Close()
		cacheService = cache.NewRedisCache(rdb)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	collector := metrics.GetGlobalCollector()
	r.Use(
		gin.Recovery(),
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(collector),
		middleware.CORSMiddleware(),
	)

	if err := registry.InitModules(&registry.ModuleContext{
		DB:     db,
		SQLX:   sqlxDB,
		Redis:  rdb,
		Cache:  cacheService,
		Router: r,
		Config: &cfg,
	}); err != nil {
		logger.Log.Fatal("init modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		database.NewPoolMonitor(sqlxDB.DB, collector, 15*time.Second).Run(gctx)
		return nil
	})
	g.Go(func() error {
		logger.Log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("server stopped with error", zap.Error(err))
	}
	logger.Log.Info("server stopped")
}
