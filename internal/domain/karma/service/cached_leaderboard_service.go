package service

import (
	"context"
	"errors"
	"fmt"
	"threadboard/internal/domain/karma/model"
	"threadboard/pkg/cache"
	"threadboard/pkg/logger"
	"threadboard/pkg/metrics"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const leaderboardKeyPrefix = "leaderboard:"

func leaderboardKey(window time.Duration, limit int) string {
	return fmt.Sprintf("%s%d:%d", leaderboardKeyPrefix, int64(window/time.Second), limit)
}

// CachedLeaderboardService 排行榜读缓存，同一 key 的并发未命中只查询一次。
// 结果最多滞后 ttl，点赞变化时由 LeaderboardInvalidator 主动清除
type CachedLeaderboardService struct {
	next  LeaderboardService
	cache cache.CacheService
	ttl   time.Duration
	group singleflight.Group
}

func NewCachedLeaderboardService(next LeaderboardService, c cache.CacheService, ttl time.Duration) *CachedLeaderboardService {
	return &CachedLeaderboardService{next: next, cache: c, ttl: ttl}
}

func (s *CachedLeaderboardService) Leaderboard(ctx context.Context, window time.Duration, limit int) ([]model.Entry, error) {
	key := leaderboardKey(window, limit)

	var entries []model.Entry
	err := s.cache.Get(ctx, key, &entries)
	if err == nil {
		metrics.GetGlobalCollector().RecordCacheOperation(leaderboardKeyPrefix, true)
		return entries, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Log.Warn("leaderboard cache read failed", zap.String("key", key), zap.Error(err))
		// 无法解码的条目先删掉，避免查询失败时一直残留
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Log.Warn("leaderboard cache delete failed", zap.String("key", key), zap.Error(err))
		}
	}
	metrics.GetGlobalCollector().RecordCacheOperation(leaderboardKeyPrefix, false)

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		entries, err := s.next.Leaderboard(ctx, window, limit)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, entries, s.ttl); err != nil {
			logger.Log.Warn("leaderboard cache write failed", zap.String("key", key), zap.Error(err))
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Entry), nil
}

func (s *CachedLeaderboardService) UserKarma(ctx context.Context, user string, window time.Duration) (int64, error) {
	return s.next.UserKarma(ctx, user, window)
}

// LeaderboardInvalidator 积分变化时清除排行榜缓存
type LeaderboardInvalidator struct {
	cache cache.CacheService
}

func NewLeaderboardInvalidator(c cache.CacheService) *LeaderboardInvalidator {
	return &LeaderboardInvalidator{cache: c}
}

func (i *LeaderboardInvalidator) KarmaChanged(ctx context.Context, user string) {
	if err := i.cache.InvalidatePattern(ctx, leaderboardKeyPrefix+"*"); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.String("user", user), zap.Error(err))
	}
}
