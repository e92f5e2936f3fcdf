package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"threadboard/internal/domain/karma/model"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKarmaRepo 内存积分流水，聚合语义与 SQL 查询一致
type memKarmaRepo struct {
	mu    sync.Mutex
	txs   []model.Transaction
	calls int
	err   error
}

func (r *memKarmaRepo) add(user string, points int, at time.Time) {
	r.txs = append(r.txs, model.Transaction{User: user, Points: points, CreatedAt: at})
}

func (r *memKarmaRepo) TopSince(_ context.Context, since time.Time, limit int) ([]model.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}

	sums := make(map[string]int64)
	for _, tx := range r.txs {
		if !tx.CreatedAt.Before(since) {
			sums[tx.User] += int64(tx.Points)
		}
	}
	var out []model.Entry
	for user, karma := range sums {
		if karma > 0 {
			out = append(out, model.Entry{User: user, Karma: karma})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Karma != out[j].Karma {
			return out[i].Karma > out[j].Karma
		}
		return out[i].User < out[j].User
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memKarmaRepo) SumForUser(_ context.Context, user string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, tx := range r.txs {
		if tx.User == user && !tx.CreatedAt.Before(since) {
			sum += int64(tx.Points)
		}
	}
	return sum, nil
}

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestLeaderboardWindow(t *testing.T) {
	ctx := context.Background()
	repo := &memKarmaRepo{}
	repo.add("alice", 5, testNow.Add(-1*time.Hour))
	repo.add("alice", 5, testNow.Add(-3*time.Hour))
	repo.add("alice", 1, testNow.Add(-25*time.Hour))
	svc := NewLeaderboardService(repo, Defaults{}, fixedClock)

	entries, err := svc.Leaderboard(ctx, 24*time.Hour, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.Entry{User: "alice", Karma: 10, Rank: 1}, entries[0])

	total, err := svc.UserKarma(ctx, "alice", 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
}

func TestLeaderboardBoundaryIsInclusive(t *testing.T) {
	repo := &memKarmaRepo{}
	repo.add("bob", 1, testNow.Add(-24*time.Hour))
	svc := NewLeaderboardService(repo, Defaults{}, fixedClock)

	entries, err := svc.Leaderboard(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].User)
}

func TestLeaderboardOrderingAndLimit(t *testing.T) {
	repo := &memKarmaRepo{}
	at := testNow.Add(-time.Minute)
	repo.add("dave", 3, at)
	repo.add("carol", 5, at)
	repo.add("bob", 5, at)
	repo.add("erin", 1, at)
	repo.add("frank", 2, at)
	repo.add("gina", 4, at)
	// 净积分为 0 和负数的用户不上榜
	repo.add("zero", 5, at)
	repo.add("zero", -5, at)
	repo.add("neg", -1, at)
	svc := NewLeaderboardService(repo, Defaults{}, fixedClock)

	entries, err := svc.Leaderboard(context.Background(), 0, 0)
	require.NoError(t, err)

	var users []string
	for i, e := range entries {
		users = append(users, e.User)
		assert.Equal(t, i+1, e.Rank)
	}
	assert.Equal(t, []string{"bob", "carol", "gina", "dave", "frank"}, users)
}

func TestLeaderboardArguments(t *testing.T) {
	ctx := context.Background()
	repo := &memKarmaRepo{}
	svc := NewLeaderboardService(repo, Defaults{Window: time.Hour, Limit: 3}, fixedClock)

	_, err := svc.Leaderboard(ctx, -time.Hour, 5)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	_, err = svc.Leaderboard(ctx, time.Hour, -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
	_, err = svc.UserKarma(ctx, " ", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidUser)
	assert.Equal(t, 0, repo.calls)

	entries, err := svc.Leaderboard(ctx, 0, 1000)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardEmptyLogAndRepoError(t *testing.T) {
	ctx := context.Background()

	entries, err := NewLeaderboardService(&memKarmaRepo{}, Defaults{}, fixedClock).Leaderboard(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	boom := errors.New("connection refused")
	_, err = NewLeaderboardService(&memKarmaRepo{err: boom}, Defaults{}, fixedClock).Leaderboard(ctx, 0, 0)
	assert.ErrorIs(t, err, boom)
}

func TestRank(t *testing.T) {
	in := []model.Entry{
		{User: "b", Karma: 2},
		{User: "a", Karma: 2},
		{User: "c", Karma: 0},
		{User: "d", Karma: 9},
	}
	out := rank(in, 2)
	require.Len(t, out, 2)
	assert.Equal(t, model.Entry{User: "d", Karma: 9, Rank: 1}, out[0])
	assert.Equal(t, model.Entry{User: "a", Karma: 2, Rank: 2}, out[1])
}

func TestLeaderboardTieRankStableAcrossLimits(t *testing.T) {
	repo := &memKarmaRepo{}
	repo.add("alice", 5, testNow.Add(-time.Hour))
	repo.add("Bob", 5, testNow.Add(-time.Hour))
	svc := NewLeaderboardService(repo, Defaults{}, fixedClock)

	top1, err := svc.Leaderboard(context.Background(), 0, 1)
	require.NoError(t, err)
	top2, err := svc.Leaderboard(context.Background(), 0, 2)
	require.NoError(t, err)

	require.Len(t, top1, 1)
	require.Len(t, top2, 2)
	assert.Equal(t, top1[0], top2[0])
	assert.Equal(t, "Bob", top2[0].User)
	assert.Equal(t, "alice", top2[1].User)
}
