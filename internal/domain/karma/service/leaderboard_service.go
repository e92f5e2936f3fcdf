package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"threadboard/internal/domain/karma/model"
	"threadboard/internal/domain/karma/repository"
	"threadboard/pkg/metrics"
	"time"
)

const (
	DefaultWindow = 24 * time.Hour
	DefaultLimit  = 5
	// MaxLimit 单次排行榜最多返回条数
	MaxLimit = 100
)

var (
	ErrInvalidWindow = errors.New("window must be positive")
	ErrInvalidLimit  = errors.New("limit must be positive")
	ErrInvalidUser   = errors.New("user is required")
)

// Defaults 未指定窗口或条数时使用的默认值
type Defaults struct {
	Window time.Duration
	Limit  int
}

type LeaderboardService interface {
	// Leaderboard 统计 [now-window, now] 内净积分为正的用户，按积分降序、用户名升序取前 limit 名。
	// window/limit 为 0 时使用默认值，负数返回错误
	Leaderboard(ctx context.Context, window time.Duration, limit int) ([]model.Entry, error)
	UserKarma(ctx context.Context, user string, window time.Duration) (int64, error)
}

type leaderboardService struct {
	repo     repository.KarmaRepository
	defaults Defaults
	now      func() time.Time
}

// NewLeaderboardService now 为 nil 时使用 time.Now
func NewLeaderboardService(repo repository.KarmaRepository, defaults Defaults, now func() time.Time) LeaderboardService {
	if defaults.Window <= 0 {
		defaults.Window = DefaultWindow
	}
	if defaults.Limit <= 0 {
		defaults.Limit = DefaultLimit
	}
	if now == nil {
		now = time.Now
	}
	return &leaderboardService{repo: repo, defaults: defaults, now: now}
}

func (s *leaderboardService) resolve(window time.Duration, limit int) (time.Duration, int, error) {
	switch {
	case window < 0:
		return 0, 0, ErrInvalidWindow
	case window == 0:
		window = s.defaults.Window
	}
	switch {
	case limit < 0:
		return 0, 0, ErrInvalidLimit
	case limit == 0:
		limit = s.defaults.Limit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return window, limit, nil
}

func (s *leaderboardService) Leaderboard(ctx context.Context, window time.Duration, limit int) ([]model.Entry, error) {
	window, limit, err := s.resolve(window, limit)
	if err != nil {
		return nil, err
	}
	defer metrics.NewPerformanceTracker(metrics.GetGlobalCollector(), "leaderboard").Finish()

	since := s.now().Add(-window)
	entries, err := s.repo.TopSince(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate karma since %s: %w", since.Format(time.RFC3339), err)
	}
	return rank(entries, limit), nil
}

func (s *leaderboardService) UserKarma(ctx context.Context, user string, window time.Duration) (int64, error) {
	if strings.TrimSpace(user) == "" {
		return 0, ErrInvalidUser
	}
	window, _, err := s.resolve(window, 0)
	if err != nil {
		return 0, err
	}
	sum, err := s.repo.SumForUser(ctx, user, s.now().Add(-window))
	if err != nil {
		return 0, fmt.Errorf("sum karma of %s: %w", user, err)
	}
	return sum, nil
}

// rank 过滤非正积分，按积分降序、用户名升序排序后截断并编号
func rank(entries []model.Entry, limit int) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Karma > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Karma != out[j].Karma {
			return out[i].Karma > out[j].Karma
		}
		return out[i].User < out[j].User
	})
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
